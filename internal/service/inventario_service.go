package service

import (
	"context"
	"errors"
	"fmt"

	"onyxshop/internal/model"
	"onyxshop/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrStockInsuficiente aborts a settlement attempt before any order is
// persisted; the cart stays intact for retry.
var ErrStockInsuficiente = errors.New("Se agotó el stock de un producto")

// InventarioService reserves inventory for a checkout. The reservation is one
// transactional batch over all cart lines: either every line is validated and
// decremented or none is. Individual decrements clamp at zero so the stored
// stock can never go negative, even if a concurrent buyer depleted the row
// between validation and write.
type InventarioService interface {
	ReservarStock(ctx context.Context, lineas []model.LineaCarrito) (map[uuid.UUID]model.Producto, error)
}

type inventarioService struct {
	productos repository.ProductoRepository
}

func NewInventarioService(productos repository.ProductoRepository) InventarioService {
	return &inventarioService{productos: productos}
}

// ReservarStock validates and decrements every line inside one transaction
// and returns the live rows as read before the decrement, so the caller can
// total with live prices.
func (s *inventarioService) ReservarStock(ctx context.Context, lineas []model.LineaCarrito) (map[uuid.UUID]model.Producto, error) {
	vivos := make(map[uuid.UUID]model.Producto, len(lineas))

	txErr := runTx(ctx, s.productos.DB(), func(tx *gorm.DB) error {
		for _, l := range lineas {
			p, err := s.productos.FindByIDTx(tx, l.ProductoID)
			if err != nil {
				return fmt.Errorf("producto %s no encontrado: %w", l.Nombre, ErrStockInsuficiente)
			}
			if !p.Activo || p.Stock < l.Cantidad {
				return fmt.Errorf("%s: %w", p.Nombre, ErrStockInsuficiente)
			}
			if err := s.productos.DescontarStockTx(tx, l.ProductoID, l.Cantidad); err != nil {
				return err
			}
			vivos[p.ID] = *p
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return vivos, nil
}
