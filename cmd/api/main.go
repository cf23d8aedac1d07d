package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	httpadapter "github.com/Maxxvall/BarskieHoromi/internal/adapters/http"
	"github.com/Maxxvall/BarskieHoromi/internal/application/ports"
	"github.com/Maxxvall/BarskieHoromi/internal/application/usecases/order"
	"github.com/Maxxvall/BarskieHoromi/internal/application/usecases/promo"
	"github.com/Maxxvall/BarskieHoromi/internal/config"
	"github.com/Maxxvall/BarskieHoromi/internal/infrastructure/persistence/postgres"
	"github.com/Maxxvall/BarskieHoromi/internal/infrastructure/promostore"
	"github.com/Maxxvall/BarskieHoromi/internal/infrastructure/telegram"
	"github.com/Maxxvall/BarskieHoromi/internal/pkg/logger"
)

func main() {
	// .env удобен в разработке; в продакшене переменные приходят из окружения.
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// 2. Logger
	logger.Setup(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	appLogger := slog.Default()

	appLogger.Info("🚀 Starting Barskie Horomi API Server...",
		slog.String("version", cfg.App.Version),
		slog.String("environment", cfg.App.Environment),
	)

	ctx := context.Background()

	// 3. Promo Store (Redis или in-memory fallback)
	var store ports.PromoStore
	if cfg.Redis.Addr != "" {
		redisStore, err := promostore.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		defer redisStore.Close()
		store = redisStore
		appLogger.Info("✅ Redis connected successfully", slog.String("addr", cfg.Redis.Addr))
	} else {
		store = promostore.NewMemoryStore()
		appLogger.Warn("⚠️ Redis is not configured, promo state is in-memory and resets on restart")
	}

	// 4. Order Archive (опционально)
	var archive ports.OrderArchive
	if cfg.Database.URL != "" {
		pool, err := postgres.NewConnectionPool(ctx, cfg.Database.URL)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer pool.Close()

		archive = postgres.NewOrderRepository(pool)
		appLogger.Info("✅ Database connected successfully")
	} else {
		appLogger.Info("Order archive disabled: DATABASE_URL is not set")
	}

	// 5. Telegram Notifier (опционально)
	var notifier ports.OrderNotifier
	if cfg.Telegram.Configured() {
		tgNotifier, err := telegram.NewNotifier(cfg.Telegram.BotToken, cfg.Telegram.AdminChatID, appLogger)
		if err != nil {
			log.Fatal("Failed to initialize Telegram bot:", err)
		}
		notifier = tgNotifier
	} else {
		appLogger.Warn("⚠️ Telegram relay is not configured, send-order will return a configuration error")
	}

	// 6. Use Cases
	adminID := cfg.Telegram.AdminChatID

	getCodeUC := promo.NewGetCodeUseCase(store)
	regenerateCodeUC := promo.NewRegenerateCodeUseCase(store, adminID)
	getVisibilityUC := promo.NewGetVisibilityUseCase(store)
	toggleVisibilityUC := promo.NewToggleVisibilityUseCase(store, adminID)

	submitOrderUC := order.NewSubmitOrderUseCase(notifier, archive, appLogger)
	listOrdersUC := order.NewListRecentOrdersUseCase(archive, adminID)

	appLogger.Info("✅ Use cases initialized")

	// 7. Router Configuration
	router := httpadapter.NewRouterBuilder(&httpadapter.RouterConfig{
		Logger:         appLogger,
		Store:          store,
		Archive:        archive,
		Version:        cfg.App.Version,
		Environment:    cfg.App.Environment,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}).
		WithPromoUseCases(&httpadapter.PromoUseCases{
			GetCode:        getCodeUC,
			RegenerateCode: regenerateCodeUC,
			GetVisibility:  getVisibilityUC,
			Toggle:         toggleVisibilityUC,
		}).
		WithOrderUseCases(&httpadapter.OrderUseCases{
			Submit: submitOrderUC,
			List:   listOrdersUC,
		}).
		Build()

	appLogger.Info("✅ HTTP router configured")

	// 8. HTTP Server
	serverConfig := &httpadapter.ServerConfig{
		Host:            cfg.Server.Host,
		Port:            strconv.Itoa(cfg.Server.Port),
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		IdleTimeout:     cfg.Server.IdleTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Logger:          appLogger,
	}

	server := httpadapter.NewServer(serverConfig, router)

	// 9. Start Server
	appLogger.Info(fmt.Sprintf("🌍 Server starting on http://%s:%s", serverConfig.Host, serverConfig.Port))
	appLogger.Info("Press Ctrl+C to stop")

	if err := server.Run(); err != nil {
		appLogger.Error("Server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	appLogger.Info("👋 Server stopped gracefully")
}
