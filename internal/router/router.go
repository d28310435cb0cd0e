package router

import (
	"time"

	"onyxshop/internal/config"
	"onyxshop/internal/handler"
	"onyxshop/internal/infra"
	"onyxshop/internal/middleware"
	"onyxshop/internal/repository"
	"onyxshop/internal/service"
	"onyxshop/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, storage infra.Storage) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	productoRepo := repository.NewProductoRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	metodoRepo := repository.NewMetodoPagoRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	configRepo := repository.NewConfiguracionRepository(db)
	adminRepo := repository.NewAdminUsuarioRepository(db)
	carritoStore := repository.NewCarritoStore(rdb)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(adminRepo, cfg)
	catalogoSvc := service.NewCatalogoService(productoRepo, categoriaRepo, metodoRepo)
	productoSvc := service.NewProductoService(productoRepo, categoriaRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo, productoRepo)
	metodoSvc := service.NewMetodoPagoService(metodoRepo)
	carritoSvc := service.NewCarritoService(carritoStore, productoRepo, metodoRepo)
	inventarioSvc := service.NewInventarioService(productoRepo)
	checkoutSvc := service.NewCheckoutService(cfg, carritoSvc, inventarioSvc, metodoRepo, pedidoRepo, storage, dispatcher)
	pedidoSvc := service.NewPedidoService(pedidoRepo, dispatcher, cfg.StoreName)
	reporteSvc := service.NewReporteService(pedidoRepo, productoRepo, configRepo)
	configSvc := service.NewConfiguracionService(configRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	tiendaH := handler.NewTiendaHandler(catalogoSvc)
	carritoH := handler.NewCarritoHandler(carritoSvc)
	checkoutH := handler.NewCheckoutHandler(checkoutSvc, cfg.MaxReceiptSizeMB)
	productosH := handler.NewProductosHandler(productoSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	metodosH := handler.NewMetodosPagoHandler(metodoSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)
	configH := handler.NewConfiguracionHandler(configSvc)
	uploadsH := handler.NewUploadsHandler(storage)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	// Receipt and catalog images are served straight off disk.
	r.Static("/uploads", cfg.UploadStoragePath)

	// Public storefront
	tienda := r.Group("/v1/tienda")
	{
		tienda.GET("/productos", tiendaH.Productos)
		tienda.GET("/categorias", tiendaH.Categorias)
		tienda.GET("/metodos-pago", tiendaH.MetodosPago)
	}

	// Session cart + checkout — anonymous, keyed by X-Session-ID
	sesion := middleware.RequireSession()
	carrito := r.Group("/v1/carrito", sesion)
	{
		carrito.GET("", carritoH.Obtener)
		carrito.POST("/items", carritoH.AgregarItem)
		carrito.PUT("/items/:index", carritoH.CambiarCantidad)
		carrito.DELETE("/items/:index", carritoH.QuitarLinea)
		carrito.DELETE("", carritoH.Vaciar)
	}
	r.POST("/v1/checkout", sesion, middleware.RateLimiter(10, time.Minute), checkoutH.Checkout)

	// Admin auth (public)
	auth := r.Group("/v1/admin/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Admin surface — JWT protected
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	admin := r.Group("/v1/admin", jwtMW)
	{
		// Reads: any authenticated operator
		admin.GET("/productos", middleware.RequireRole("admin", "staff"), productosH.Listar)
		admin.GET("/productos/:id", middleware.RequireRole("admin", "staff"), productosH.Obtener)
		admin.GET("/categorias", middleware.RequireRole("admin", "staff"), categoriasH.Listar)
		admin.GET("/metodos-pago", middleware.RequireRole("admin", "staff"), metodosH.Listar)
		admin.GET("/pedidos", middleware.RequireRole("admin", "staff"), pedidosH.Listar)
		admin.GET("/pedidos/:id", middleware.RequireRole("admin", "staff"), pedidosH.Obtener)
		admin.GET("/pedidos/:id/pdf", middleware.RequireRole("admin", "staff"), pedidosH.PDF)

		// Writes: admin only
		prods := admin.Group("/productos", middleware.RequireRole("admin"))
		{
			prods.POST("", productosH.Crear)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Eliminar)
		}

		categorias := admin.Group("/categorias", middleware.RequireRole("admin"))
		{
			categorias.POST("", categoriasH.Crear)
			categorias.PUT("/:id", categoriasH.Actualizar)
			categorias.DELETE("/:id", categoriasH.Eliminar)
			categorias.POST("/:id/ajustar-precios", categoriasH.AjustarPrecios)
		}

		metodos := admin.Group("/metodos-pago", middleware.RequireRole("admin"))
		{
			metodos.POST("", metodosH.Crear)
			metodos.PUT("/:id", metodosH.Actualizar)
			metodos.DELETE("/:id", metodosH.Eliminar)
		}

		admin.DELETE("/pedidos", middleware.RequireRole("admin"), pedidosH.EliminarTodos)

		reportes := admin.Group("/reportes", middleware.RequireRole("admin"))
		{
			reportes.GET("/resumen", reportesH.Resumen)
			reportes.GET("/inversion", reportesH.Inversion)
		}

		configuracion := admin.Group("/configuracion", middleware.RequireRole("admin"))
		{
			configuracion.GET("/deduccion", configH.ObtenerDeduccion)
			configuracion.PUT("/deduccion", configH.GuardarDeduccion)
		}

		admin.POST("/uploads/imagenes", middleware.RequireRole("admin", "staff"), uploadsH.SubirImagen)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
