package repository

import (
	"context"

	"onyxshop/internal/dto"
	"onyxshop/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PedidoRepository defines data access for orders. Orders are written once at
// settlement and read or bulk-deleted by the admin surface.
type PedidoRepository interface {
	Create(ctx context.Context, tx *gorm.DB, p *model.Pedido) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	// FindByClaveIdempotencia resolves a retried submission to the order it
	// already created.
	FindByClaveIdempotencia(ctx context.Context, clave string) (*model.Pedido, error)
	List(ctx context.Context, filter dto.PedidoFilter) ([]model.Pedido, int64, error)
	ListCompletados(ctx context.Context) ([]model.Pedido, error)
	DeleteAll(ctx context.Context) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Pedido) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(p).Error
}

func (r *pedidoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).Preload("Items").First(&p, id).Error
	return &p, err
}

func (r *pedidoRepo) FindByClaveIdempotencia(ctx context.Context, clave string) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).Preload("Items").
		Where("clave_idempotencia = ?", clave).First(&p).Error
	if err != nil {
		// Callers gate the idempotent-replay branch on a non-nil order, so a
		// miss must never hand back a zero-valued row alongside the error.
		return nil, err
	}
	return &p, nil
}

func (r *pedidoRepo) List(ctx context.Context, filter dto.PedidoFilter) ([]model.Pedido, int64, error) {
	var pedidos []model.Pedido
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Pedido{})
	switch filter.Estado {
	case "", "all":
		// no filter
	default:
		q = q.Where("estado = ?", filter.Estado)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Items").Order("created_at DESC").
		Limit(filter.Limit).Offset(offset).Find(&pedidos).Error
	return pedidos, total, err
}

func (r *pedidoRepo) ListCompletados(ctx context.Context) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).Where("estado = ?", model.PedidoCompletado).Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.PedidoItem{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&model.Pedido{}).Error
	})
}

func (r *pedidoRepo) DB() *gorm.DB { return r.db }
