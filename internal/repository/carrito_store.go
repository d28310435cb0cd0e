package repository

import (
	"context"
	"encoding/json"
	"time"

	"onyxshop/internal/model"

	"github.com/redis/go-redis/v9"
)

const (
	carritoKeyPrefix = "cart:"
	carritoTTL       = 30 * 24 * time.Hour
)

// CarritoStore persists the full cart line list per client session. Every
// mutating cart operation writes the whole list back synchronously before
// returning.
type CarritoStore interface {
	Cargar(ctx context.Context, sessionID string) ([]model.LineaCarrito, error)
	Guardar(ctx context.Context, sessionID string, lineas []model.LineaCarrito) error
	Vaciar(ctx context.Context, sessionID string) error
}

type carritoStore struct{ rdb *redis.Client }

func NewCarritoStore(rdb *redis.Client) CarritoStore { return &carritoStore{rdb: rdb} }

// Cargar restores the persisted cart. A missing key or malformed payload is
// treated as an empty cart, never as an error.
func (s *carritoStore) Cargar(ctx context.Context, sessionID string) ([]model.LineaCarrito, error) {
	raw, err := s.rdb.Get(ctx, carritoKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var lineas []model.LineaCarrito
	if err := json.Unmarshal([]byte(raw), &lineas); err != nil {
		return nil, nil
	}
	return lineas, nil
}

func (s *carritoStore) Guardar(ctx context.Context, sessionID string, lineas []model.LineaCarrito) error {
	data, err := json.Marshal(lineas)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, carritoKeyPrefix+sessionID, data, carritoTTL).Err()
}

func (s *carritoStore) Vaciar(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, carritoKeyPrefix+sessionID).Err()
}
