package worker

// catalog_sync.go
// Periodic catalog diff. Each tick re-reads the full product list, compares
// it against the set of already-known IDs and announces every product seen
// for the first time. The first successful tick only seeds the known set —
// a fresh process must not re-announce the whole catalog.

import (
	"context"
	"encoding/json"
	"fmt"

	"onyxshop/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// CanalNovedades carries new-arrival announcements for storefront clients.
const CanalNovedades = "catalogo:novedades"

// NovedadCatalogo is one new-arrival announcement.
type NovedadCatalogo struct {
	ProductoID string `json:"producto_id"`
	Nombre     string `json:"nombre"`
	Categoria  string `json:"categoria"`
}

// PublicadorNovedades abstracts the announcement sink so the diff logic can be
// exercised without Redis.
type PublicadorNovedades interface {
	Publicar(ctx context.Context, novedad NovedadCatalogo) error
}

type publicadorRedis struct{ rdb *redis.Client }

func NewPublicadorRedis(rdb *redis.Client) PublicadorNovedades {
	return &publicadorRedis{rdb: rdb}
}

func (p *publicadorRedis) Publicar(ctx context.Context, novedad NovedadCatalogo) error {
	data, err := json.Marshal(novedad)
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, CanalNovedades, data).Err()
}

// CatalogSync owns the known-ID set between ticks.
type CatalogSync struct {
	productos  repository.ProductoRepository
	categorias repository.CategoriaRepository
	publicador PublicadorNovedades

	conocidos map[uuid.UUID]struct{}
	sembrado  bool
}

func NewCatalogSync(productos repository.ProductoRepository, categorias repository.CategoriaRepository, publicador PublicadorNovedades) *CatalogSync {
	return &CatalogSync{
		productos:  productos,
		categorias: categorias,
		publicador: publicador,
		conocidos:  make(map[uuid.UUID]struct{}),
	}
}

// Tick runs one poll cycle and returns how many new arrivals were announced.
func (s *CatalogSync) Tick(ctx context.Context) (int, error) {
	productos, err := s.productos.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("catalog_sync: listar productos: %w", err)
	}

	// The known set is replaced wholesale each tick, so deletions stop
	// occupying memory and a deleted-then-recreated product announces again.
	actuales := make(map[uuid.UUID]struct{}, len(productos))
	for _, p := range productos {
		actuales[p.ID] = struct{}{}
	}

	if !s.sembrado {
		s.conocidos = actuales
		s.sembrado = true
		log.Info().Int("productos", len(actuales)).Msg("catalog_sync: conjunto inicial sembrado")
		return 0, nil
	}

	nombres := s.nombresCategorias(ctx)

	anunciados := 0
	for _, p := range productos {
		if _, visto := s.conocidos[p.ID]; visto {
			continue
		}
		novedad := NovedadCatalogo{
			ProductoID: p.ID.String(),
			Nombre:     p.Nombre,
			Categoria:  nombres[p.CategoriaID],
		}
		if err := s.publicador.Publicar(ctx, novedad); err != nil {
			// Announce failure leaves the ID out of the known set so the next
			// tick retries it.
			log.Error().Err(err).Str("producto", p.Nombre).Msg("catalog_sync: no se pudo publicar la novedad")
			delete(actuales, p.ID)
			continue
		}
		anunciados++
		log.Info().Str("producto", p.Nombre).Str("categoria", novedad.Categoria).Msg("catalog_sync: nuevo producto anunciado")
	}

	s.conocidos = actuales
	return anunciados, nil
}

func (s *CatalogSync) nombresCategorias(ctx context.Context) map[uuid.UUID]string {
	nombres := make(map[uuid.UUID]string)
	categorias, err := s.categorias.Listar(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("catalog_sync: no se pudieron cargar las categorías")
		return nombres
	}
	for _, c := range categorias {
		nombres[c.ID] = c.Nombre
	}
	return nombres
}

// StartCron schedules the sync under a cron spec with a seconds field.
// SkipIfStillRunning guarantees a single in-flight poll: a slow tick makes
// the next one a no-op instead of stacking.
func (s *CatalogSync) StartCron(ctx context.Context, spec string) (*cron.Cron, error) {
	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
	_, err := c.AddFunc(spec, func() {
		if _, err := s.Tick(ctx); err != nil {
			log.Error().Err(err).Msg("catalog_sync: tick falló")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("catalog_sync: spec inválido %q: %w", spec, err)
	}
	c.Start()
	log.Info().Str("spec", spec).Msg("catalog_sync: programado")
	return c, nil
}
