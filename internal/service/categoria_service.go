package service

import (
	"context"
	"errors"

	"onyxshop/internal/dto"
	"onyxshop/internal/model"
	"onyxshop/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrCategoriaDuplicada = errors.New("Ya existe una categoría con ese nombre")
var ErrCategoriaNoEncontrada = errors.New("Categoría no encontrada")

// CategoriaService defines business operations for product categories.
type CategoriaService interface {
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (dto.CategoriaResponse, error)
	Listar(ctx context.Context) ([]dto.CategoriaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (dto.CategoriaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	// AjustarPrecios applies a percentage change to every product of the
	// category in a single statement; returns how many rows changed.
	AjustarPrecios(ctx context.Context, id uuid.UUID, req dto.AjusteMasivoRequest) (int64, error)
}

type categoriaService struct {
	repo      repository.CategoriaRepository
	productos repository.ProductoRepository
}

func NewCategoriaService(repo repository.CategoriaRepository, productos repository.ProductoRepository) CategoriaService {
	return &categoriaService{repo: repo, productos: productos}
}

// mapCategoria converts a model to a DTO response.
func mapCategoria(c model.Categoria) dto.CategoriaResponse {
	return dto.CategoriaResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		ImagenURL: c.ImagenURL,
		Activo:    c.Activo,
	}
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (dto.CategoriaResponse, error) {
	// Check for duplicate name
	existing, err := s.repo.ObtenerPorNombre(ctx, req.Nombre)
	if err != nil && !notFound(err) {
		return dto.CategoriaResponse{}, err
	}
	if existing != nil {
		return dto.CategoriaResponse{}, ErrCategoriaDuplicada
	}

	c := &model.Categoria{
		Nombre:    req.Nombre,
		ImagenURL: req.ImagenURL,
		Activo:    true,
	}
	if err := s.repo.Crear(ctx, c); err != nil {
		return dto.CategoriaResponse{}, err
	}
	return mapCategoria(*c), nil
}

func (s *categoriaService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCategoria(c))
	}
	return result, nil
}

func (s *categoriaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (dto.CategoriaResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if notFound(err) {
			return dto.CategoriaResponse{}, ErrCategoriaNoEncontrada
		}
		return dto.CategoriaResponse{}, err
	}

	if req.Nombre != nil {
		// Check uniqueness if name is changing
		if *req.Nombre != c.Nombre {
			existing, err := s.repo.ObtenerPorNombre(ctx, *req.Nombre)
			if err != nil && !notFound(err) {
				return dto.CategoriaResponse{}, err
			}
			if existing != nil && existing.ID != id {
				return dto.CategoriaResponse{}, ErrCategoriaDuplicada
			}
		}
		c.Nombre = *req.Nombre
	}
	if req.ImagenURL != nil {
		c.ImagenURL = req.ImagenURL
	}
	if req.Activo != nil {
		c.Activo = *req.Activo
	}

	if err := s.repo.Actualizar(ctx, c); err != nil {
		return dto.CategoriaResponse{}, err
	}
	return mapCategoria(*c), nil
}

func (s *categoriaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		if notFound(err) {
			return ErrCategoriaNoEncontrada
		}
		return err
	}
	return s.repo.Eliminar(ctx, id)
}

func (s *categoriaService) AjustarPrecios(ctx context.Context, id uuid.UUID, req dto.AjusteMasivoRequest) (int64, error) {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		if notFound(err) {
			return 0, ErrCategoriaNoEncontrada
		}
		return 0, err
	}
	afectados, err := s.productos.AjustarPreciosPorCategoria(ctx, id, req.Porcentaje)
	if err != nil {
		return 0, err
	}
	log.Info().
		Str("categoria", id.String()).
		Float64("porcentaje", req.Porcentaje).
		Int64("productos", afectados).
		Msg("ajuste masivo de precios aplicado")
	return afectados, nil
}
