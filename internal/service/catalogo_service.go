package service

import (
	"context"
	"time"

	"onyxshop/internal/dto"
	"onyxshop/internal/model"
	"onyxshop/internal/repository"
)

// CatalogoService is the public storefront read surface. Every price it
// returns is quoted under the payment method the shopper selected, so a
// method change re-renders the whole listing.
type CatalogoService interface {
	ListarProductos(ctx context.Context, filter dto.ProductoFilter, moneda string) (dto.ProductoListResponse, error)
	ListarCategorias(ctx context.Context) ([]dto.CategoriaResponse, error)
	ListarMetodosPago(ctx context.Context) ([]dto.MetodoPagoResponse, error)
}

type catalogoService struct {
	productos  repository.ProductoRepository
	categorias repository.CategoriaRepository
	metodos    repository.MetodoPagoRepository
}

func NewCatalogoService(
	productos repository.ProductoRepository,
	categorias repository.CategoriaRepository,
	metodos repository.MetodoPagoRepository,
) CatalogoService {
	return &catalogoService{productos: productos, categorias: categorias, metodos: metodos}
}

// mapProductoPublico quotes the price under the given method and never
// exposes cost.
func mapProductoPublico(p model.Producto, metodo model.MetodoPago) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:          p.ID.String(),
		Nombre:      p.Nombre,
		Precio:      p.Precio,
		Stock:       p.Stock,
		CategoriaID: p.CategoriaID.String(),
		ImagenURL:   p.ImagenURL,
		Activo:      p.Activo,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		PrecioTexto: CotizarPrecio(p.Precio, metodo).Texto,
	}
}

func (s *catalogoService) ListarProductos(ctx context.Context, filter dto.ProductoFilter, moneda string) (dto.ProductoListResponse, error) {
	// The storefront only ever sees active products.
	filter.Activo = ""
	productos, total, err := s.productos.List(ctx, filter)
	if err != nil {
		return dto.ProductoListResponse{}, err
	}

	metodo := ResolverMetodo(ctx, s.metodos, moneda)
	data := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		data = append(data, mapProductoPublico(p, metodo))
	}
	return dto.ProductoListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *catalogoService) ListarCategorias(ctx context.Context) ([]dto.CategoriaResponse, error) {
	list, err := s.categorias.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		if !c.Activo {
			continue
		}
		result = append(result, mapCategoria(c))
	}
	return result, nil
}

func (s *catalogoService) ListarMetodosPago(ctx context.Context) ([]dto.MetodoPagoResponse, error) {
	list, err := s.metodos.ListarActivos(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MetodoPagoResponse, 0, len(list))
	for _, m := range list {
		result = append(result, mapMetodoPago(m))
	}
	return result, nil
}
