package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/config"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/entity"
	domainRepo "github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/repository"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/presentation/http/handler"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/presentation/http/middleware"
	"github.com/mo-alkubaish/POSitiveflow-sub000/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Cart     *handler.CartHandler
	Item     *handler.ItemHandler
	Discount *handler.DiscountHandler
	Customer *handler.CustomerHandler
	Settings *handler.SettingsHandler
	Feedback *handler.FeedbackHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile
	protected.GET("/profile", h.Auth.Me)

	// Settings
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", middleware.RequireRole(entity.RoleAdmin), h.Settings.Update)

	registerCartRoutes(protected, h, deps)
	registerItemRoutes(protected, h)
	registerDiscountRoutes(protected, h)
	registerCustomerRoutes(protected, h)
	registerFeedbackRoutes(protected, h)
}

func registerCartRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	carts := protected.Group("/carts")
	{
		carts.GET("", h.Cart.List)
		carts.POST("", h.Cart.Create)
		carts.GET("/:id", h.Cart.Get)
		carts.PUT("/:id/items", h.Cart.SetItems)
		carts.PUT("/:id/customer", h.Cart.SetCustomer)
		carts.POST("/:id/discounts", h.Cart.ApplyDiscount)
		carts.DELETE("/:id/discounts/:discountId", h.Cart.RemoveDiscount)
		carts.PUT("/:id/points", h.Cart.RedeemPoints)
		// Checkout replays the cached response on a duplicate Idempotency-Key
		carts.POST("/:id/checkout", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Cart.Checkout)
		carts.POST("/:id/confirm", h.Cart.Confirm)
	}
}

func registerItemRoutes(protected *gin.RouterGroup, h *Handlers) {
	items := protected.Group("/items")
	{
		items.GET("", h.Item.List)
		items.GET("/low-stock", h.Item.ListLowStock)
		items.GET("/barcode/:barcode", h.Item.GetByBarcode)
		items.GET("/:id", h.Item.Get)

		admin := items.Group("")
		admin.Use(middleware.RequireRole(entity.RoleAdmin))
		{
			admin.POST("", h.Item.Create)
			admin.PUT("/:id", h.Item.Update)
			admin.DELETE("/:id", h.Item.Delete)
		}
	}
}

func registerDiscountRoutes(protected *gin.RouterGroup, h *Handlers) {
	discounts := protected.Group("/discounts")
	{
		discounts.GET("", h.Discount.List)
		discounts.GET("/:id", h.Discount.Get)

		admin := discounts.Group("")
		admin.Use(middleware.RequireRole(entity.RoleAdmin))
		{
			admin.POST("", h.Discount.Create)
			admin.PUT("/:id", h.Discount.Update)
			admin.DELETE("/:id", h.Discount.Delete)
		}
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Customer.Delete)
		customers.GET("/:id/loyalty", h.Customer.GetLoyalty)
		customers.POST("/:id/loyalty/grant", middleware.RequireRole(entity.RoleAdmin), h.Customer.GrantPoints)
	}
}

func registerFeedbackRoutes(protected *gin.RouterGroup, h *Handlers) {
	feedback := protected.Group("/feedback")
	{
		feedback.GET("", h.Feedback.List)
		feedback.POST("", h.Feedback.Create)
		feedback.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Feedback.Delete)
	}
}
