package worker

// dlq.go
// Jobs whose handler keeps failing are parked under dlq:<cola> (one Redis
// list per source queue: dlq:jobs:notificaciones, dlq:jobs:limpieza) for
// manual replay. Nothing consumes these lists automatically.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const DLQPrefix = "dlq:"

// EntradaDLQ preserves the failed job plus enough context to replay it by
// hand: which queue it came from, why the handler gave up and when.
type EntradaDLQ struct {
	ColaOrigen string          `json:"cola_origen"`
	Tipo       string          `json:"tipo"`
	Payload    json.RawMessage `json:"payload"`
	Motivo     string          `json:"motivo"`
	FallidoEn  string          `json:"fallido_en"` // RFC 3339
	Intentos   int             `json:"intentos"`
}

// MoverADLQ parks a failed job. Best effort: a Redis error here is logged and
// the job is lost, the worker loop must keep draining either way.
func MoverADLQ(ctx context.Context, rdb *redis.Client, cola, tipo string, payload json.RawMessage, motivo string, intentos int) {
	entrada := EntradaDLQ{
		ColaOrigen: cola,
		Tipo:       tipo,
		Payload:    payload,
		Motivo:     motivo,
		FallidoEn:  time.Now().UTC().Format(time.RFC3339),
		Intentos:   intentos,
	}

	data, err := json.Marshal(entrada)
	if err != nil {
		log.Error().Err(err).Str("cola", cola).Msg("dlq: no se pudo serializar la entrada")
		return
	}

	if err := rdb.LPush(ctx, DLQPrefix+cola, data).Err(); err != nil {
		log.Error().Err(err).Str("cola", DLQPrefix+cola).Msg("dlq: no se pudo encolar la entrada")
		return
	}

	log.Warn().
		Str("cola", cola).
		Str("tipo", tipo).
		Str("motivo", motivo).
		Int("intentos", intentos).
		Msg("dlq: job apartado para revisión manual")
}

// LongitudDLQ reports how many jobs sit parked for a queue.
func LongitudDLQ(ctx context.Context, rdb *redis.Client, cola string) (int64, error) {
	return rdb.LLen(ctx, DLQPrefix+cola).Result()
}
