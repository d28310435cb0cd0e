package repository

import (
	"context"

	"onyxshop/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MetodoPagoRepository defines data access for payment methods.
type MetodoPagoRepository interface {
	Crear(ctx context.Context, m *model.MetodoPago) error
	// Listar returns every method in creation order, as the admin panel shows them.
	Listar(ctx context.Context) ([]model.MetodoPago, error)
	// ListarActivos returns only active methods, for the storefront selector.
	ListarActivos(ctx context.Context) ([]model.MetodoPago, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.MetodoPago, error)
	ObtenerPorCodigo(ctx context.Context, codigo string) (*model.MetodoPago, error)
	Actualizar(ctx context.Context, m *model.MetodoPago) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type metodoPagoRepo struct{ db *gorm.DB }

func NewMetodoPagoRepository(db *gorm.DB) MetodoPagoRepository { return &metodoPagoRepo{db: db} }

func (r *metodoPagoRepo) Crear(ctx context.Context, m *model.MetodoPago) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *metodoPagoRepo) Listar(ctx context.Context) ([]model.MetodoPago, error) {
	var metodos []model.MetodoPago
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&metodos).Error
	return metodos, err
}

func (r *metodoPagoRepo) ListarActivos(ctx context.Context) ([]model.MetodoPago, error) {
	var metodos []model.MetodoPago
	err := r.db.WithContext(ctx).Where("activo = true").Order("created_at ASC").Find(&metodos).Error
	return metodos, err
}

func (r *metodoPagoRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.MetodoPago, error) {
	var m model.MetodoPago
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *metodoPagoRepo) ObtenerPorCodigo(ctx context.Context, codigo string) (*model.MetodoPago, error) {
	var m model.MetodoPago
	if err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *metodoPagoRepo) Actualizar(ctx context.Context, m *model.MetodoPago) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *metodoPagoRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MetodoPago{}, id).Error
}
