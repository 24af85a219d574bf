package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/salonvale/salon-system/internal/api/handler"
	"github.com/salonvale/salon-system/internal/api/middleware"
	"github.com/salonvale/salon-system/internal/core/domain"
	"github.com/salonvale/salon-system/internal/core/service"
	mongoinfra "github.com/salonvale/salon-system/internal/infrastructure/db/mongo"
	redisinfra "github.com/salonvale/salon-system/internal/infrastructure/db/redis"
	"github.com/salonvale/salon-system/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Middleware order matters: CORS runs before routing and before auth so
// credentialed preflights succeed without touching business logic.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("salon"))
	e.Use(corsMiddleware(cfg.CORSOrigins))

	// --- Dependencies ---
	usuarioRepo := mongoinfra.NewUsuarioRepository(db)
	servicioRepo := mongoinfra.NewServicioRepository(db)
	citaRepo := mongoinfra.NewCitaRepository(db)
	facturaRepo := mongoinfra.NewFacturaRepository(db)

	usuarioService := service.NewUsuarioService(usuarioRepo, logger)
	servicioService := service.NewServicioService(servicioRepo, logger)
	citaService := service.NewCitaService(citaRepo, usuarioRepo, servicioRepo, logger)
	facturaService := service.NewFacturaService(facturaRepo, citaRepo, logger)
	reporteService := service.NewReporteService(usuarioRepo, servicioRepo, citaRepo, facturaRepo, logger)
	authService := service.NewAuthService(usuarioRepo, cfg.JWTSecret, cfg.TokenTTL)

	usuarioHandler := handler.NewUsuarioHandler(usuarioService)
	servicioHandler := handler.NewServicioHandler(servicioService)
	citaHandler := handler.NewCitaHandler(citaService)
	facturaHandler := handler.NewFacturaHandler(facturaService)
	reporteHandler := handler.NewReporteHandler(reporteService)
	authHandler := handler.NewAuthHandler(authService)

	authMW := middleware.Auth(cfg.JWTSecret)
	adminMW := middleware.RBAC(domain.RolAdministrador)
	cacheMW := middleware.Cache(redisinfra.NewResponseCache(rdb, cfg.Redis.CacheTTL), logger)

	// --- Auth ---
	e.POST("/api/auth/login", authHandler.Login)

	// --- Entity routes (admin only) ---
	api := e.Group("/api", authMW, adminMW)

	registerCRUD(api, "/usuarios", crudHandlers{usuarioHandler.List, usuarioHandler.Get, usuarioHandler.Create, usuarioHandler.Update, usuarioHandler.Delete}, cacheMW)
	registerCRUD(api, "/servicios", crudHandlers{servicioHandler.List, servicioHandler.Get, servicioHandler.Create, servicioHandler.Update, servicioHandler.Delete}, cacheMW)
	registerCRUD(api, "/citas", crudHandlers{citaHandler.List, citaHandler.Get, citaHandler.Create, citaHandler.Update, citaHandler.Delete}, cacheMW)
	registerCRUD(api, "/facturas", crudHandlers{facturaHandler.List, facturaHandler.Get, facturaHandler.Create, facturaHandler.Update, facturaHandler.Delete}, cacheMW)

	api.GET("/reportes/diario", reporteHandler.Diario)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	if cfg.IsDevelopment() {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	return e
}

// corsMiddleware builds the credentialed origin gate. AllowHeaders is left
// empty on purpose: with credentials a literal "*" is not treated as a
// wildcard by browsers, while an empty list makes echo reflect the preflight's
// Access-Control-Request-Headers, which is what "any header" means for
// credentialed requests.
func corsMiddleware(origins []string) echo.MiddlewareFunc {
	return echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions, http.MethodPatch},
		AllowCredentials: true,
	})
}

type crudHandlers struct {
	list   echo.HandlerFunc
	get    echo.HandlerFunc
	create echo.HandlerFunc
	update echo.HandlerFunc
	delete echo.HandlerFunc
}

// registerCRUD wires the uniform entity contract: cached full-collection GET,
// GET by id, POST, PUT and DELETE.
func registerCRUD(g *echo.Group, prefix string, h crudHandlers, cacheMW echo.MiddlewareFunc) {
	g.GET(prefix, h.list, cacheMW)
	g.GET(prefix+"/:id", h.get)
	g.POST(prefix, h.create)
	g.PUT(prefix+"/:id", h.update)
	g.DELETE(prefix+"/:id", h.delete)
}
