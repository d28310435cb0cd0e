package worker

// notificacion_worker.go
// Processes order notification jobs from QueueNotificaciones: publishes the
// settlement event on a Redis channel for live dashboards and, when SMTP is
// configured, mails the composed order message to the operator.

import (
	"context"
	"encoding/json"
	"fmt"

	"onyxshop/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// CanalPedidos is the pub/sub channel carrying settled-order events.
const CanalPedidos = "pedidos:eventos"

type NotificacionWorker struct {
	rdb          *redis.Client
	mailer       *infra.Mailer
	operatorMail string
}

func NewNotificacionWorker(rdb *redis.Client, mailer *infra.Mailer, operatorMail string) *NotificacionWorker {
	return &NotificacionWorker{rdb: rdb, mailer: mailer, operatorMail: operatorMail}
}

func (w *NotificacionWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload NotificacionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notificacion_worker: invalid payload")
		return nil // malformed jobs are not retryable
	}

	if err := w.rdb.Publish(ctx, CanalPedidos, raw).Err(); err != nil {
		return fmt.Errorf("publicar evento de pedido: %w", err)
	}

	if w.mailer != nil && w.mailer.Habilitado() && w.operatorMail != "" {
		asunto := fmt.Sprintf("Nuevo pedido %s (%s)", payload.Codigo, payload.Estado)
		if err := w.mailer.Enviar(w.operatorMail, asunto, payload.Mensaje); err != nil {
			// The pub/sub event already went out; mail failure is logged, not retried.
			log.Error().Err(err).Str("pedido", payload.Codigo).Msg("notificacion_worker: no se pudo enviar el correo")
		}
	}

	log.Info().Str("pedido", payload.Codigo).Msg("notificacion_worker: evento publicado")
	return nil
}
