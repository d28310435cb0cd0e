package service

import (
	"context"
	"errors"
	"time"

	"onyxshop/internal/dto"
	"onyxshop/internal/infra"
	"onyxshop/internal/model"
	"onyxshop/internal/repository"
	"onyxshop/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrPedidoNoEncontrado = errors.New("Pedido no encontrado")

// DespachadorLimpieza is the slice of the async dispatcher the order purge
// needs.
type DespachadorLimpieza interface {
	EnqueueLimpieza(ctx context.Context, payload interface{}) error
}

// PedidoService is the admin read/purge surface over settled orders. Orders
// are immutable: there is no update path, only listing, PDF rendering and the
// bulk purge.
type PedidoService interface {
	Listar(ctx context.Context, filter dto.PedidoFilter) (dto.PedidoListResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (dto.PedidoResponse, error)
	GenerarPDF(ctx context.Context, id uuid.UUID) ([]byte, string, error)
	// EliminarTodos wipes the whole order history and enqueues the receipt
	// cleanup job.
	EliminarTodos(ctx context.Context) error
}

type pedidoService struct {
	repo       repository.PedidoRepository
	dispatcher DespachadorLimpieza
	tienda     string
}

func NewPedidoService(repo repository.PedidoRepository, dispatcher DespachadorLimpieza, tienda string) PedidoService {
	return &pedidoService{repo: repo, dispatcher: dispatcher, tienda: tienda}
}

func mapPedido(p model.Pedido) dto.PedidoResponse {
	items := make([]dto.PedidoItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.PedidoItemResponse{
			ProductoID:     it.ProductoID.String(),
			Nombre:         it.Nombre,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			PrecioTexto:    it.PrecioTexto,
		})
	}
	return dto.PedidoResponse{
		ID:            p.ID.String(),
		Codigo:        p.Codigo,
		ClienteNombre: p.ClienteNombre,
		Telefono:      p.Telefono,
		Direccion:     p.Direccion,
		Referencia:    p.Referencia,
		Items:         items,
		TotalTexto:    p.TotalTexto,
		MetodoPago:    p.MetodoPago,
		ReciboURL:     p.ReciboURL,
		Estado:        p.Estado,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}

func (s *pedidoService) Listar(ctx context.Context, filter dto.PedidoFilter) (dto.PedidoListResponse, error) {
	pedidos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return dto.PedidoListResponse{}, err
	}
	data := make([]dto.PedidoResponse, 0, len(pedidos))
	for _, p := range pedidos {
		data = append(data, mapPedido(p))
	}
	return dto.PedidoListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *pedidoService) Obtener(ctx context.Context, id uuid.UUID) (dto.PedidoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if notFound(err) {
			return dto.PedidoResponse{}, ErrPedidoNoEncontrado
		}
		return dto.PedidoResponse{}, err
	}
	return mapPedido(*p), nil
}

func (s *pedidoService) GenerarPDF(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if notFound(err) {
			return nil, "", ErrPedidoNoEncontrado
		}
		return nil, "", err
	}
	data, err := infra.GenerarPedidoPDF(p, s.tienda)
	if err != nil {
		return nil, "", err
	}
	return data, p.Codigo + ".pdf", nil
}

func (s *pedidoService) EliminarTodos(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return err
	}
	log.Warn().Msg("historial de pedidos eliminado")

	if s.dispatcher != nil {
		payload := worker.LimpiezaPayload{Bucket: "comprobantes", Prefijo: "orders"}
		if err := s.dispatcher.EnqueueLimpieza(ctx, payload); err != nil {
			// The rows are gone either way; orphaned receipts are only noise.
			log.Warn().Err(err).Msg("no se pudo encolar la limpieza de comprobantes")
		}
	}
	return nil
}
