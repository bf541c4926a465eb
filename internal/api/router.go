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

	_ "github.com/brightcart/storefront-api/docs"
	"github.com/brightcart/storefront-api/internal/api/handler"
	"github.com/brightcart/storefront-api/internal/api/middleware"
	"github.com/brightcart/storefront-api/internal/api/session"
	"github.com/brightcart/storefront-api/internal/core/domain"
	"github.com/brightcart/storefront-api/internal/core/ports"
	"github.com/brightcart/storefront-api/internal/core/service"
	mongostore "github.com/brightcart/storefront-api/internal/infrastructure/db/mongo"
	redisstore "github.com/brightcart/storefront-api/internal/infrastructure/db/redis"
	"github.com/brightcart/storefront-api/internal/pkg/config"
)

// Deps carries the externally constructed dependencies the router wires
// together.
type Deps struct {
	DB     *mongo.Database
	Redis  *redis.Client
	Audit  service.AuthEventSink
	Config *config.Config
	Log    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	carrier := session.NewCarrier(d.Config.Cookie.Secure, d.Config.Cookie.SameSiteMode(), d.Config.TokenTTL)
	tokenService := service.NewTokenService(d.Config.JWTSecret, d.Config.TokenTTL)

	accountRepo := mongostore.NewAccountRepository(d.DB)
	var throttle ports.LoginThrottle
	if d.Redis != nil {
		throttle = redisstore.NewLoginThrottle(d.Redis, d.Config.Throttle.MaxFailures, d.Config.Throttle.Window)
	}
	authService := service.NewAuthService(accountRepo, tokenService, throttle, d.Audit, d.Log)
	authHandler := handler.NewAuthHandler(authService, carrier)

	orderService := service.NewOrderService(mongostore.NewOrderRepository(d.DB), d.Log)
	orderHandler := handler.NewOrderHandler(orderService)

	productService := service.NewProductService(mongostore.NewProductRepository(d.DB), d.Log)
	productHandler := handler.NewProductHandler(productService)

	authn := middleware.Authenticate(carrier, tokenService)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello from the storefront API")
	})
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.GET("/products", productHandler.List)

	// --- Authenticated routes ---
	e.POST("/orders", orderHandler.Create, authn)
	e.GET("/orders", orderHandler.ListByEmail, authn)

	// --- Admin routes (authenticate, then authorize) ---
	e.GET("/ordersA", orderHandler.ListAll, authn, adminOnly)
	e.GET("/admin/orders", orderHandler.ListAll, authn, adminOnly)
	e.POST("/products", productHandler.Create, authn, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	if d.Redis != nil {
		readiness := handler.NewReadinessHandler(d.DB, d.Redis)
		e.GET("/health/ready", readiness.Readiness)
	}

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
