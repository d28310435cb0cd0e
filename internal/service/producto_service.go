package service

import (
	"context"
	"errors"
	"time"

	"onyxshop/internal/dto"
	"onyxshop/internal/model"
	"onyxshop/internal/repository"

	"github.com/google/uuid"
)

var ErrProductoNoEncontrado = errors.New("Producto no encontrado")

// ProductoService covers the admin-side catalog CRUD. The public storefront
// reads through CatalogoService instead, which hides cost and inactive rows.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (dto.ProductoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) (dto.ProductoListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type productoService struct {
	repo       repository.ProductoRepository
	categorias repository.CategoriaRepository
}

func NewProductoService(repo repository.ProductoRepository, categorias repository.CategoriaRepository) ProductoService {
	return &productoService{repo: repo, categorias: categorias}
}

// mapProductoAdmin always includes cost and quotes the display price under
// the base method.
func mapProductoAdmin(p model.Producto) dto.ProductoResponse {
	costo := p.Costo
	return dto.ProductoResponse{
		ID:          p.ID.String(),
		Nombre:      p.Nombre,
		Precio:      p.Precio,
		Stock:       p.Stock,
		CategoriaID: p.CategoriaID.String(),
		ImagenURL:   p.ImagenURL,
		Activo:      p.Activo,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		PrecioTexto: CotizarPrecio(p.Precio, model.MetodoEfectivo()).Texto,
		Costo:       &costo,
	}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (dto.ProductoResponse, error) {
	categoriaID, err := uuid.Parse(req.CategoriaID)
	if err != nil {
		return dto.ProductoResponse{}, ErrCategoriaNoEncontrada
	}
	if _, err := s.categorias.ObtenerPorID(ctx, categoriaID); err != nil {
		if notFound(err) {
			return dto.ProductoResponse{}, ErrCategoriaNoEncontrada
		}
		return dto.ProductoResponse{}, err
	}

	p := &model.Producto{
		Nombre:      req.Nombre,
		Precio:      req.Precio,
		Costo:       req.Costo,
		Stock:       req.Stock,
		CategoriaID: categoriaID,
		ImagenURL:   req.ImagenURL,
		Activo:      true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return dto.ProductoResponse{}, err
	}
	return mapProductoAdmin(*p), nil
}

func (s *productoService) Obtener(ctx context.Context, id uuid.UUID) (dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if notFound(err) {
			return dto.ProductoResponse{}, ErrProductoNoEncontrado
		}
		return dto.ProductoResponse{}, err
	}
	return mapProductoAdmin(*p), nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) (dto.ProductoListResponse, error) {
	productos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return dto.ProductoListResponse{}, err
	}
	data := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		data = append(data, mapProductoAdmin(p))
	}
	return dto.ProductoListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if notFound(err) {
			return dto.ProductoResponse{}, ErrProductoNoEncontrado
		}
		return dto.ProductoResponse{}, err
	}

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Precio != nil {
		p.Precio = *req.Precio
	}
	if req.Costo != nil {
		p.Costo = *req.Costo
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.ImagenURL != nil {
		p.ImagenURL = req.ImagenURL
	}
	if req.Activo != nil {
		p.Activo = *req.Activo
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return dto.ProductoResponse{}, err
	}
	return mapProductoAdmin(*p), nil
}

func (s *productoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if notFound(err) {
			return ErrProductoNoEncontrado
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
