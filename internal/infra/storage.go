package infra

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Storage is the narrow object-storage contract the core depends on: save a
// binary under a bucket-scoped path, get back a public reference, delete by
// path or by prefix. The disk implementation serves files under /uploads via
// the router's static route.
type Storage interface {
	Guardar(ctx context.Context, bucket, ruta string, datos []byte) (string, error)
	Eliminar(ctx context.Context, bucket, ruta string) error
	// VaciarPrefijo removes every object whose path starts with prefijo,
	// e.g. all receipts under orders/ after the admin clears history.
	VaciarPrefijo(ctx context.Context, bucket, prefijo string) error
}

type discoStorage struct {
	base       string // filesystem root
	publicBase string // URL root, e.g. http://localhost:8000
}

// NewDiscoStorage creates a local-disk Storage rooted at base.
func NewDiscoStorage(base, publicBase string) (Storage, error) {
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create root: %w", err)
	}
	return &discoStorage{base: base, publicBase: strings.TrimRight(publicBase, "/")}, nil
}

func (s *discoStorage) Guardar(_ context.Context, bucket, ruta string, datos []byte) (string, error) {
	limpio, err := s.rutaSegura(bucket, ruta)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(limpio), 0o755); err != nil {
		return "", fmt.Errorf("storage: create dir: %w", err)
	}
	if err := os.WriteFile(limpio, datos, 0o644); err != nil {
		return "", fmt.Errorf("storage: write: %w", err)
	}
	return fmt.Sprintf("%s/uploads/%s/%s", s.publicBase, bucket, ruta), nil
}

func (s *discoStorage) Eliminar(_ context.Context, bucket, ruta string) error {
	limpio, err := s.rutaSegura(bucket, ruta)
	if err != nil {
		return err
	}
	if err := os.Remove(limpio); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: remove: %w", err)
	}
	return nil
}

func (s *discoStorage) VaciarPrefijo(_ context.Context, bucket, prefijo string) error {
	limpio, err := s.rutaSegura(bucket, prefijo)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(limpio); err != nil {
		return fmt.Errorf("storage: remove prefix: %w", err)
	}
	return nil
}

// rutaSegura joins and validates the path, rejecting traversal out of the
// storage root.
func (s *discoStorage) rutaSegura(bucket, ruta string) (string, error) {
	full := filepath.Join(s.base, bucket, filepath.FromSlash(ruta))
	if !strings.HasPrefix(full, filepath.Clean(s.base)+string(os.PathSeparator)) {
		return "", fmt.Errorf("storage: invalid path %q", ruta)
	}
	return full, nil
}
