package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/restaurant-api/internal/api/handler"
	"github.com/bistroboss/restaurant-api/internal/api/middleware"
	"github.com/bistroboss/restaurant-api/internal/core/domain"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
	"github.com/bistroboss/restaurant-api/internal/core/service"
	mongodb "github.com/bistroboss/restaurant-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bistroboss/restaurant-api/internal/infrastructure/db/redis"
	"github.com/bistroboss/restaurant-api/internal/infrastructure/http/handlers"
)

const tokenTTL = 5 * time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
// Gate profiles per route: public reads stay open, every mutating or
// privileged operation runs authentication and, where required, the admin
// role check against the live directory.
func NewRouter(db *mongo.Database, rdb *redis.Client, provider ports.PaymentProvider, jwtSecret, currency string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bistro"))

	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	menuRepo := mongodb.NewMenuRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	cartRepo := mongodb.NewCartRepository(db)

	tokenService := service.NewTokenService(jwtSecret, tokenTTL)
	userService := service.NewUserService(userRepo, log)
	menuService := service.NewMenuService(menuRepo, log)
	reviewService := service.NewReviewService(reviewRepo, log)
	cartService := service.NewCartService(cartRepo, log)
	statsService := service.NewStatsService(userRepo, menuRepo)
	paymentService := service.NewPaymentService(provider, redisdb.NewIntentCache(rdb), currency, log)

	tokenHandler := handler.NewTokenHandler(tokenService)
	userHandler := handler.NewUserHandler(userService)
	menuHandler := handler.NewMenuHandler(menuService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	cartHandler := handler.NewCartHandler(cartService)
	statsHandler := handler.NewStatsHandler(statsService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	authenticated := middleware.Auth(tokenService)
	adminOnly := middleware.RequireRole(userRepo, domain.RoleAdmin)

	// --- Menu ---
	e.GET("/menu", menuHandler.List)
	e.POST("/menu", menuHandler.Create, authenticated, adminOnly)
	e.DELETE("/menu/:id", menuHandler.Delete, authenticated, adminOnly)

	// --- Reviews ---
	e.GET("/review", reviewHandler.List)
	e.POST("/review", reviewHandler.Create)

	// --- Carts ---
	e.POST("/carts", cartHandler.Add)
	e.GET("/carts", cartHandler.List)
	e.DELETE("/carts/:id", cartHandler.Delete)

	// --- Tokens / users ---
	e.POST("/jwt", tokenHandler.Issue)
	e.POST("/users", userHandler.Register)
	e.GET("/users", userHandler.List, authenticated, adminOnly)
	e.GET("/users/admin/:email", userHandler.AdminStatus, authenticated)
	e.PATCH("/users/admin/:id", userHandler.Promote, authenticated, adminOnly)
	e.DELETE("/users/:id", userHandler.Delete, authenticated, adminOnly)

	// --- Payments ---
	e.POST("/create-payment-intent", paymentHandler.CreateIntent, authenticated)

	// --- Admin stats ---
	e.GET("/admin-stats", statsHandler.Stats, authenticated, adminOnly)

	// --- Probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
