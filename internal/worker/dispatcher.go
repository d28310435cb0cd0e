package worker

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

const (
	QueueNotificaciones = "jobs:notificaciones"
	QueueLimpieza       = "jobs:limpieza"
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// NotificacionPayload is the job envelope sent to QueueNotificaciones after a
// settlement commits.
type NotificacionPayload struct {
	PedidoID   string `json:"pedido_id"`
	Codigo     string `json:"codigo"`
	Estado     string `json:"estado"`
	TotalTexto string `json:"total_texto"`
	Mensaje    string `json:"mensaje"`
}

// LimpiezaPayload asks the cleanup worker to drop stored receipts under a
// storage prefix, typically after a bulk order purge.
type LimpiezaPayload struct {
	Bucket  string `json:"bucket"`
	Prefijo string `json:"prefijo"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueNotificacion pushes an order notification job to Redis.
func (d *Dispatcher) EnqueueNotificacion(ctx context.Context, payload interface{}) error {
	return d.enqueue(ctx, QueueNotificaciones, "notificacion", payload)
}

// EnqueueLimpieza pushes a receipt cleanup job to Redis.
func (d *Dispatcher) EnqueueLimpieza(ctx context.Context, payload interface{}) error {
	return d.enqueue(ctx, QueueLimpieza, "limpieza", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}
