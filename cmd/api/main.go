package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/application/service"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/config"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/infrastructure/database"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/infrastructure/repository"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/presentation/http/handler"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/presentation/http/routes"
	"github.com/mo-alkubaish/POSitiveflow-sub000/pkg/settingscache"
	"github.com/mo-alkubaish/POSitiveflow-sub000/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize settings cache
	var cache settingscache.Cache = settingscache.NewMemoryCache()
	if cfg.Redis.Enabled {
		redisCache := settingscache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Ping(context.Background()); err != nil {
			log.Printf("Warning: Redis unavailable, falling back to in-memory settings cache: %v", err)
		} else {
			cache = redisCache
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	itemRepo := repository.NewItemRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	loyaltyRepo := repository.NewLoyaltyRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	settingsService := service.NewSettingsService(settingsRepo, cache, cfg.Redis.SettingsTTL)
	cartService := service.NewCartService(cartRepo, itemRepo, discountRepo, customerRepo, loyaltyRepo, settingsService)
	itemService := service.NewItemService(itemRepo, settingsService)
	discountService := service.NewDiscountService(discountRepo)
	customerService := service.NewCustomerService(customerRepo, loyaltyRepo)
	feedbackService := service.NewFeedbackService(feedbackRepo, customerRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Cart:     handler.NewCartHandler(cartService),
		Item:     handler.NewItemHandler(itemService),
		Discount: handler.NewDiscountHandler(discountService),
		Customer: handler.NewCustomerHandler(customerService),
		Settings: handler.NewSettingsHandler(settingsService),
		Feedback: handler.NewFeedbackHandler(feedbackService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
