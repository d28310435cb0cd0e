package worker

// limpieza_worker.go
// Processes receipt cleanup jobs from QueueLimpieza. Runs after a bulk order
// purge so the storage backend does not accumulate orphaned receipt images.

import (
	"context"
	"encoding/json"
	"fmt"

	"onyxshop/internal/infra"

	"github.com/rs/zerolog/log"
)

type LimpiezaWorker struct {
	storage infra.Storage
}

func NewLimpiezaWorker(storage infra.Storage) *LimpiezaWorker {
	return &LimpiezaWorker{storage: storage}
}

func (w *LimpiezaWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload LimpiezaPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("limpieza_worker: invalid payload")
		return nil
	}
	if payload.Bucket == "" {
		log.Warn().Msg("limpieza_worker: bucket vacío — skipping")
		return nil
	}

	if err := w.storage.VaciarPrefijo(ctx, payload.Bucket, payload.Prefijo); err != nil {
		return fmt.Errorf("vaciar %s/%s: %w", payload.Bucket, payload.Prefijo, err)
	}
	log.Info().Str("bucket", payload.Bucket).Str("prefijo", payload.Prefijo).Msg("limpieza_worker: comprobantes eliminados")
	return nil
}
