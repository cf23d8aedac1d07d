// Package http - маршрутизация и жизненный цикл HTTP сервера.
//
// Router собирает handlers и middleware в единую точку входа.
// Все зависимости приходят снаружи, handlers получают только нужные
// им use cases.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Maxxvall/BarskieHoromi/internal/adapters/http/common"
	"github.com/Maxxvall/BarskieHoromi/internal/adapters/http/handlers"
	"github.com/Maxxvall/BarskieHoromi/internal/adapters/http/middleware"
	"github.com/Maxxvall/BarskieHoromi/internal/application/ports"
)

// ============================================
// Router Configuration
// ============================================

// RouterConfig - конфигурация роутера.
type RouterConfig struct {
	// Logger для middleware
	Logger *slog.Logger
	// Store для readiness probe
	Store ports.PromoStore
	// Archive для readiness probe (nil когда не настроен)
	Archive ports.OrderArchive
	// Version приложения
	Version string
	// Environment (development, production)
	Environment string
	// AllowedOrigins для CORS; пусто = разрешить все
	AllowedOrigins []string
}

// ============================================
// Use Case Providers
// ============================================

// PromoUseCases - provider для промокода и видимости.
type PromoUseCases struct {
	GetCode        handlers.GetPromoCodeUseCase
	RegenerateCode handlers.RegeneratePromoCodeUseCase
	GetVisibility  handlers.GetVisibilityUseCase
	Toggle         handlers.ToggleVisibilityUseCase
}

// OrderUseCases - provider для заказов.
type OrderUseCases struct {
	Submit handlers.SubmitOrderUseCase
	List   handlers.ListRecentOrdersUseCase
}

// ============================================
// Router Builder
// ============================================

// RouterBuilder пошагово собирает сконфигурированный gin.Engine.
type RouterBuilder struct {
	config *RouterConfig
	promo  *PromoUseCases
	orders *OrderUseCases
}

// NewRouterBuilder создаёт новый builder.
func NewRouterBuilder(config *RouterConfig) *RouterBuilder {
	if config == nil {
		config = &RouterConfig{Logger: slog.Default(), Version: "dev", Environment: "development"}
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &RouterBuilder{config: config}
}

// WithPromoUseCases добавляет use cases промокода.
func (b *RouterBuilder) WithPromoUseCases(useCases *PromoUseCases) *RouterBuilder {
	b.promo = useCases
	return b
}

// WithOrderUseCases добавляет use cases заказов.
func (b *RouterBuilder) WithOrderUseCases(useCases *OrderUseCases) *RouterBuilder {
	b.orders = useCases
	return b
}

// Build создаёт сконфигурированный Gin Engine.
func (b *RouterBuilder) Build() *gin.Engine {
	if b.config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Клиент различает 404 и 405, поэтому method not allowed включён.
	router.HandleMethodNotAllowed = true

	handlers.SetupValidator()

	// ============================================
	// Global Middleware
	// ============================================

	router.Use(middleware.Recovery(b.config.Logger))
	router.Use(middleware.RequestID())

	corsConfig := middleware.DefaultCORSConfig()
	if len(b.config.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = b.config.AllowedOrigins
	}
	router.Use(middleware.CORS(corsConfig))

	router.Use(middleware.Logging(&middleware.LoggingConfig{
		Logger:    b.config.Logger,
		SkipPaths: []string{"/health", "/ready", "/metrics"},
	}))
	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
	router.Use(middleware.Metrics())

	// ============================================
	// Metrics + Health
	// ============================================

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if b.config.Store != nil {
		healthHandler := handlers.NewHealthHandler(b.config.Store, b.config.Archive, b.config.Version)
		healthHandler.RegisterRoutes(router)
	}

	// ============================================
	// API Routes
	// ============================================

	api := router.Group("/api")
	{
		if b.promo != nil {
			promoHandler := handlers.NewPromoHandler(
				b.promo.GetCode,
				b.promo.RegenerateCode,
				b.promo.GetVisibility,
				b.promo.Toggle,
			)
			api.GET("/promo-code", promoHandler.GetPromoCode)
			api.POST("/promo-code", promoHandler.RegeneratePromoCode)
			api.GET("/secret-section-visibility", promoHandler.GetVisibility)
			api.POST("/secret-section-visibility", promoHandler.ToggleVisibility)
		}

		if b.orders != nil {
			orderHandler := handlers.NewOrderHandler(b.orders.Submit, b.orders.List)
			api.POST("/send-order", middleware.OrderRateLimit(), orderHandler.SendOrder)
			api.POST("/admin/orders", orderHandler.ListOrders)
		}
	}

	// ============================================
	// 404 / 405
	// ============================================

	router.NoRoute(func(c *gin.Context) {
		common.Fail(c, http.StatusNotFound, "Not found")
	})

	router.NoMethod(func(c *gin.Context) {
		common.Fail(c, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return router
}
