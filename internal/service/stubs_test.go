package service

// stubs_test.go — in-memory repository stubs shared by the service tests.
// They honor the same contracts as the GORM implementations, minus the
// transaction boundary: runTx falls through with a nil *gorm.DB.

import (
	"context"
	"sync"

	"onyxshop/internal/dto"
	"onyxshop/internal/model"
	"onyxshop/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── ProductoRepository stub ──────────────────────────────────────────────────

type stubProductoRepo struct {
	mu        sync.Mutex
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo(productos ...*model.Producto) *stubProductoRepo {
	r := &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
	for _, p := range productos {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.productos[p.ID] = p
	}
	return r
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clon := *p
	r.productos[p.ID] = &clon
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clon := *p
	return &clon, nil
}

func (r *stubProductoRepo) List(_ context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Producto
	for _, p := range r.productos {
		if filter.Activo == "" && !p.Activo {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductoRepo) ListAll(_ context.Context) ([]model.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clon := *p
	r.productos[p.ID] = &clon
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.productos, id)
	return nil
}

func (r *stubProductoRepo) DescontarStockTx(_ *gorm.DB, id uuid.UUID, cantidad int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Stock -= cantidad
	if p.Stock < 0 {
		p.Stock = 0 // same clamp as GREATEST(stock - ?, 0)
	}
	return nil
}

func (r *stubProductoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubProductoRepo) AjustarPreciosPorCategoria(_ context.Context, categoriaID uuid.UUID, porcentaje float64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	factor := 1 + porcentaje/100
	for _, p := range r.productos {
		if p.CategoriaID != categoriaID {
			continue
		}
		p.Precio = p.Precio.Mul(decimal.NewFromFloat(factor)).Round(2)
		n++
	}
	return n, nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── MetodoPagoRepository stub ────────────────────────────────────────────────

type stubMetodoRepo struct {
	metodos map[string]*model.MetodoPago // by codigo
}

func newStubMetodoRepo(metodos ...*model.MetodoPago) *stubMetodoRepo {
	r := &stubMetodoRepo{metodos: make(map[string]*model.MetodoPago)}
	for _, m := range metodos {
		if m.ID == uuid.Nil {
			m.ID = uuid.New()
		}
		r.metodos[m.Codigo] = m
	}
	return r
}

func (r *stubMetodoRepo) Crear(_ context.Context, m *model.MetodoPago) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.metodos[m.Codigo] = m
	return nil
}

func (r *stubMetodoRepo) Listar(_ context.Context) ([]model.MetodoPago, error) {
	out := make([]model.MetodoPago, 0, len(r.metodos))
	for _, m := range r.metodos {
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMetodoRepo) ListarActivos(_ context.Context) ([]model.MetodoPago, error) {
	var out []model.MetodoPago
	for _, m := range r.metodos {
		if m.Activo {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMetodoRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.MetodoPago, error) {
	for _, m := range r.metodos {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubMetodoRepo) ObtenerPorCodigo(_ context.Context, codigo string) (*model.MetodoPago, error) {
	m, ok := r.metodos[codigo]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *stubMetodoRepo) Actualizar(_ context.Context, m *model.MetodoPago) error {
	r.metodos[m.Codigo] = m
	return nil
}

func (r *stubMetodoRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	for codigo, m := range r.metodos {
		if m.ID == id {
			delete(r.metodos, codigo)
		}
	}
	return nil
}

var _ repository.MetodoPagoRepository = (*stubMetodoRepo)(nil)

// ── CarritoStore stub ────────────────────────────────────────────────────────

type stubCarritoStore struct {
	carritos map[string][]model.LineaCarrito
}

func newStubCarritoStore() *stubCarritoStore {
	return &stubCarritoStore{carritos: make(map[string][]model.LineaCarrito)}
}

func (s *stubCarritoStore) Cargar(_ context.Context, sessionID string) ([]model.LineaCarrito, error) {
	return append([]model.LineaCarrito(nil), s.carritos[sessionID]...), nil
}

func (s *stubCarritoStore) Guardar(_ context.Context, sessionID string, lineas []model.LineaCarrito) error {
	s.carritos[sessionID] = append([]model.LineaCarrito(nil), lineas...)
	return nil
}

func (s *stubCarritoStore) Vaciar(_ context.Context, sessionID string) error {
	delete(s.carritos, sessionID)
	return nil
}

var _ repository.CarritoStore = (*stubCarritoStore)(nil)

// ── PedidoRepository stub ────────────────────────────────────────────────────

type stubPedidoRepo struct {
	pedidos []*model.Pedido
}

func newStubPedidoRepo() *stubPedidoRepo { return &stubPedidoRepo{} }

func (r *stubPedidoRepo) Create(_ context.Context, _ *gorm.DB, p *model.Pedido) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	clon := *p
	r.pedidos = append(r.pedidos, &clon)
	return nil
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Pedido, error) {
	for _, p := range r.pedidos {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPedidoRepo) FindByClaveIdempotencia(_ context.Context, clave string) (*model.Pedido, error) {
	for _, p := range r.pedidos {
		if p.ClaveIdempotencia != nil && *p.ClaveIdempotencia == clave {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPedidoRepo) List(_ context.Context, filter dto.PedidoFilter) ([]model.Pedido, int64, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		if filter.Estado != "" && filter.Estado != "all" && p.Estado != filter.Estado {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubPedidoRepo) ListCompletados(_ context.Context) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		if p.Estado == model.PedidoCompletado {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPedidoRepo) DeleteAll(_ context.Context) error {
	r.pedidos = nil
	return nil
}

func (r *stubPedidoRepo) DB() *gorm.DB { return nil }

var _ repository.PedidoRepository = (*stubPedidoRepo)(nil)

// ── ConfiguracionRepository stub ─────────────────────────────────────────────

type stubConfigRepo struct {
	valores map[string]string
}

func newStubConfigRepo() *stubConfigRepo { return &stubConfigRepo{valores: make(map[string]string)} }

func (r *stubConfigRepo) Obtener(_ context.Context, clave string) (string, error) {
	v, ok := r.valores[clave]
	if !ok {
		return "", gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubConfigRepo) Guardar(_ context.Context, clave, valor string) error {
	r.valores[clave] = valor
	return nil
}

var _ repository.ConfiguracionRepository = (*stubConfigRepo)(nil)

// ── Storage stub ─────────────────────────────────────────────────────────────

type stubStorage struct {
	guardados map[string][]byte // "bucket/ruta" → datos
}

func newStubStorage() *stubStorage { return &stubStorage{guardados: make(map[string][]byte)} }

func (s *stubStorage) Guardar(_ context.Context, bucket, ruta string, datos []byte) (string, error) {
	s.guardados[bucket+"/"+ruta] = datos
	return "http://localhost/uploads/" + bucket + "/" + ruta, nil
}

func (s *stubStorage) Eliminar(_ context.Context, bucket, ruta string) error {
	delete(s.guardados, bucket+"/"+ruta)
	return nil
}

func (s *stubStorage) VaciarPrefijo(_ context.Context, bucket, prefijo string) error {
	for k := range s.guardados {
		if len(k) >= len(bucket) && k[:len(bucket)] == bucket {
			delete(s.guardados, k)
		}
	}
	return nil
}

// ── Dispatcher stub ──────────────────────────────────────────────────────────

type stubDispatcher struct {
	notificaciones []interface{}
	limpiezas      []interface{}
}

func (d *stubDispatcher) EnqueueNotificacion(_ context.Context, payload interface{}) error {
	d.notificaciones = append(d.notificaciones, payload)
	return nil
}

func (d *stubDispatcher) EnqueueLimpieza(_ context.Context, payload interface{}) error {
	d.limpiezas = append(d.limpiezas, payload)
	return nil
}
