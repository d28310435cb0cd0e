package service

import (
	"context"
	"errors"

	"onyxshop/internal/dto"
	"onyxshop/internal/model"
	"onyxshop/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrMetodoDuplicado    = errors.New("Ya existe un método de pago con ese código")
	ErrMetodoNoEncontrado = errors.New("Método de pago no encontrado")
)

// MetodoPagoService manages the buyer-selectable pricing configurations.
type MetodoPagoService interface {
	Crear(ctx context.Context, req dto.CrearMetodoPagoRequest) (dto.MetodoPagoResponse, error)
	Listar(ctx context.Context) ([]dto.MetodoPagoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMetodoPagoRequest) (dto.MetodoPagoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type metodoPagoService struct {
	repo repository.MetodoPagoRepository
}

func NewMetodoPagoService(repo repository.MetodoPagoRepository) MetodoPagoService {
	return &metodoPagoService{repo: repo}
}

func mapMetodoPago(m model.MetodoPago) dto.MetodoPagoResponse {
	return dto.MetodoPagoResponse{
		ID:     m.ID.String(),
		Nombre: m.Nombre,
		Codigo: m.Codigo,
		Modo:   m.Modo,
		Valor:  m.Valor,
		Activo: m.Activo,
	}
}

func (s *metodoPagoService) Crear(ctx context.Context, req dto.CrearMetodoPagoRequest) (dto.MetodoPagoResponse, error) {
	existing, err := s.repo.ObtenerPorCodigo(ctx, req.Codigo)
	if err != nil && !notFound(err) {
		return dto.MetodoPagoResponse{}, err
	}
	if existing != nil {
		return dto.MetodoPagoResponse{}, ErrMetodoDuplicado
	}

	m := &model.MetodoPago{
		Nombre: req.Nombre,
		Codigo: req.Codigo,
		Modo:   req.Modo,
		Valor:  req.Valor,
		Activo: true,
	}
	if err := s.repo.Crear(ctx, m); err != nil {
		return dto.MetodoPagoResponse{}, err
	}
	return mapMetodoPago(*m), nil
}

func (s *metodoPagoService) Listar(ctx context.Context) ([]dto.MetodoPagoResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MetodoPagoResponse, 0, len(list))
	for _, m := range list {
		result = append(result, mapMetodoPago(m))
	}
	return result, nil
}

func (s *metodoPagoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMetodoPagoRequest) (dto.MetodoPagoResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if notFound(err) {
			return dto.MetodoPagoResponse{}, ErrMetodoNoEncontrado
		}
		return dto.MetodoPagoResponse{}, err
	}

	// Codigo is immutable: order codes and settlement branching key off it.
	if req.Nombre != nil {
		m.Nombre = *req.Nombre
	}
	if req.Modo != nil {
		m.Modo = *req.Modo
	}
	if req.Valor != nil {
		m.Valor = *req.Valor
	}
	if req.Activo != nil {
		m.Activo = *req.Activo
	}

	if err := s.repo.Actualizar(ctx, m); err != nil {
		return dto.MetodoPagoResponse{}, err
	}
	return mapMetodoPago(*m), nil
}

func (s *metodoPagoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		if notFound(err) {
			return ErrMetodoNoEncontrado
		}
		return err
	}
	return s.repo.Eliminar(ctx, id)
}
