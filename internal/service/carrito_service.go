package service

import (
	"context"
	"errors"

	"onyxshop/internal/dto"
	"onyxshop/internal/model"
	"onyxshop/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User-facing cart errors, reported as toasts by the client.
var (
	ErrProductoNoDisponible = errors.New("Producto no disponible")
	ErrStockMaximo          = errors.New("Stock máximo alcanzado")
	ErrLimiteStock          = errors.New("Límite de stock alcanzado")
	ErrLineaInexistente     = errors.New("La línea del carrito no existe")
)

// CarritoService owns the per-session cart state. Quantities are always
// positive, no two lines reference the same product, and every ceiling is
// checked against the live catalog row at the moment of the mutation.
type CarritoService interface {
	Obtener(ctx context.Context, sessionID, moneda string) (*dto.CarritoResponse, error)
	AgregarItem(ctx context.Context, sessionID string, productoID uuid.UUID, moneda string) (*dto.CarritoResponse, error)
	CambiarCantidad(ctx context.Context, sessionID string, index, delta int, moneda string) (*dto.CarritoResponse, error)
	QuitarLinea(ctx context.Context, sessionID string, index int, moneda string) (*dto.CarritoResponse, error)
	Vaciar(ctx context.Context, sessionID string) error
	// Lineas exposes the raw snapshot list for settlement.
	Lineas(ctx context.Context, sessionID string) ([]model.LineaCarrito, error)
}

type carritoService struct {
	store     repository.CarritoStore
	productos repository.ProductoRepository
	metodos   repository.MetodoPagoRepository
}

func NewCarritoService(store repository.CarritoStore, productos repository.ProductoRepository, metodos repository.MetodoPagoRepository) CarritoService {
	return &carritoService{store: store, productos: productos, metodos: metodos}
}

func (s *carritoService) Obtener(ctx context.Context, sessionID, moneda string) (*dto.CarritoResponse, error) {
	lineas, err := s.store.Cargar(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.armarResumen(ctx, lineas, moneda), nil
}

func (s *carritoService) AgregarItem(ctx context.Context, sessionID string, productoID uuid.UUID, moneda string) (*dto.CarritoResponse, error) {
	p, err := s.productos.FindByID(ctx, productoID)
	if err != nil || !p.Disponible() {
		return nil, ErrProductoNoDisponible
	}

	lineas, err := s.store.Cargar(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if idx := buscarLinea(lineas, productoID); idx >= 0 {
		if lineas[idx].Cantidad >= p.Stock {
			return nil, ErrStockMaximo
		}
		lineas[idx].Cantidad++
	} else {
		lineas = append(lineas, model.LineaCarrito{
			ProductoID: p.ID,
			Nombre:     p.Nombre,
			Precio:     p.Precio,
			ImagenURL:  p.ImagenURL,
			Cantidad:   1,
		})
	}

	if err := s.store.Guardar(ctx, sessionID, lineas); err != nil {
		return nil, err
	}
	return s.armarResumen(ctx, lineas, moneda), nil
}

func (s *carritoService) CambiarCantidad(ctx context.Context, sessionID string, index, delta int, moneda string) (*dto.CarritoResponse, error) {
	lineas, err := s.store.Cargar(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(lineas) {
		return nil, ErrLineaInexistente
	}

	if delta > 0 {
		// Increasing beyond live stock is rejected with no mutation.
		p, err := s.productos.FindByID(ctx, lineas[index].ProductoID)
		if err != nil {
			return nil, ErrProductoNoDisponible
		}
		if lineas[index].Cantidad+delta > p.Stock {
			return nil, ErrLimiteStock
		}
	}

	lineas[index].Cantidad += delta
	if lineas[index].Cantidad <= 0 {
		lineas = append(lineas[:index], lineas[index+1:]...)
	}

	if err := s.store.Guardar(ctx, sessionID, lineas); err != nil {
		return nil, err
	}
	return s.armarResumen(ctx, lineas, moneda), nil
}

func (s *carritoService) QuitarLinea(ctx context.Context, sessionID string, index int, moneda string) (*dto.CarritoResponse, error) {
	lineas, err := s.store.Cargar(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(lineas) {
		return nil, ErrLineaInexistente
	}
	lineas = append(lineas[:index], lineas[index+1:]...)

	if err := s.store.Guardar(ctx, sessionID, lineas); err != nil {
		return nil, err
	}
	return s.armarResumen(ctx, lineas, moneda), nil
}

func (s *carritoService) Vaciar(ctx context.Context, sessionID string) error {
	return s.store.Vaciar(ctx, sessionID)
}

func (s *carritoService) Lineas(ctx context.Context, sessionID string) ([]model.LineaCarrito, error) {
	return s.store.Cargar(ctx, sessionID)
}

// armarResumen recomputes the dependent cart state: per-line display prices,
// item count and the formatted total under the requested method. The live
// product price wins over the add-time snapshot whenever the row still
// exists.
func (s *carritoService) armarResumen(ctx context.Context, lineas []model.LineaCarrito, moneda string) *dto.CarritoResponse {
	metodo := ResolverMetodo(ctx, s.metodos, moneda)

	resp := &dto.CarritoResponse{Items: make([]dto.LineaCarritoResponse, 0, len(lineas))}
	totalBase := decimal.Zero

	for _, l := range lineas {
		precio := l.Precio
		nombre := l.Nombre
		imagen := l.ImagenURL
		if vivo, err := s.productos.FindByID(ctx, l.ProductoID); err == nil {
			precio = vivo.Precio
			nombre = vivo.Nombre
			imagen = vivo.ImagenURL
		}
		totalBase = totalBase.Add(precio.Mul(decimal.NewFromInt(int64(l.Cantidad))))
		resp.Items = append(resp.Items, dto.LineaCarritoResponse{
			ProductoID:  l.ProductoID.String(),
			Nombre:      nombre,
			Cantidad:    l.Cantidad,
			Precio:      precio,
			PrecioTexto: CotizarPrecio(precio, metodo).Texto,
			ImagenURL:   imagen,
		})
		resp.Cantidad += l.Cantidad
	}

	resp.TotalBase = totalBase
	resp.TotalTexto = CotizarPrecio(totalBase, metodo).Texto
	return resp
}

func buscarLinea(lineas []model.LineaCarrito, productoID uuid.UUID) int {
	for i, l := range lineas {
		if l.ProductoID == productoID {
			return i
		}
	}
	return -1
}
