package api

import (
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fullstack-app/catalog-api/internal/api/handler"
	"github.com/fullstack-app/catalog-api/internal/api/middleware"
	"github.com/fullstack-app/catalog-api/internal/core/service"
	"github.com/fullstack-app/catalog-api/internal/infrastructure/config"
	mongorepo "github.com/fullstack-app/catalog-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/fullstack-app/catalog-api/internal/infrastructure/db/redis"
)

// bodyLimit caps request body size; no endpoint accepts more than a small
// JSON credential payload.
const bodyLimit = "1M"

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))
	e.Use(echomiddleware.BodyLimit(bodyLimit))
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// Health probes and metrics are exempt from throttling.
	limiter := redisinfra.NewLimiter(rdb, cfg.RateLimit.Limit, cfg.RateLimit.Window)
	e.Use(middleware.RateLimit(limiter, func(c echo.Context) bool {
		p := c.Request().URL.Path
		return strings.HasPrefix(p, "/health") || p == "/metrics"
	}, log))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	itemRepo := mongorepo.NewItemRepository(db)

	tokenService := service.NewTokenService(jwtSecret, cfg.JWTTTL)
	authService := service.NewAuthService(userRepo, tokenService, log)
	itemService := service.NewItemService(itemRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	itemHandler := handler.NewItemHandler(itemService)
	authMiddleware := middleware.Auth(tokenService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/validate", authHandler.Validate, authMiddleware)

	// --- Catalog routes (bearer token required) ---
	e.GET("/items", itemHandler.List, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
