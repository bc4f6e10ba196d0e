package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"storefront-backend/internal/background"
	"storefront-backend/internal/cart"
	"storefront-backend/internal/config"
	"storefront-backend/internal/handlers"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/models"
	"storefront-backend/internal/repository"
	"storefront-backend/internal/sections"
	"storefront-backend/internal/seed"
	"storefront-backend/internal/service"
	"storefront-backend/internal/theme"
	"storefront-backend/internal/webhook"
	"storefront-backend/pkg/cache"
	"storefront-backend/pkg/logger"
	"storefront-backend/pkg/validator"
)

const eventDispatchInterval = 30 * time.Second

type Application struct {
	cfg *config.Config

	db    *gorm.DB
	cache *cache.Cache

	registry  *sections.Registry
	cartStore *cart.Store
	scheduler *background.Scheduler
	limiter   *middleware.RateLimitManager

	repositories repositoryContainer
	services     serviceContainer
	handlers     handlerContainer

	router *gin.Engine
	server *http.Server
}

type repositoryContainer struct {
	User      repository.UserRepository
	Product   repository.ProductRepository
	Category  repository.CategoryRepository
	Page      repository.PageRepository
	Order     repository.OrderRepository
	Coupon    repository.CouponRepository
	Inventory repository.InventoryRepository
	Setting   repository.SettingRepository
	Template  repository.TemplateRepository
	Event     repository.EventRepository
}

type serviceContainer struct {
	Auth    *service.AuthService
	Catalog *service.CatalogService
	Page    *service.PageService
	Theme   *service.ThemeService
	Order   *service.OrderService
	Coupon  *service.CouponService
	Setting *service.SettingService
	Event   *service.EventService
}

type handlerContainer struct {
	Auth       *handlers.AuthHandler
	Product    *handlers.ProductHandler
	Category   *handlers.CategoryHandler
	Page       *handlers.PageHandler
	Order      *handlers.OrderHandler
	Coupon     *handlers.CouponHandler
	Inventory  *handlers.InventoryHandler
	Setting    *handlers.SettingHandler
	Theme      *handlers.ThemeHandler
	Storefront *handlers.StorefrontHandler
	Cart       *handlers.CartHandler
	Webhook    *handlers.WebhookHandler
}

func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	app := &Application{cfg: cfg}

	validator.Init()

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.runMigrations(); err != nil {
		return nil, err
	}

	if err := app.createIndexes(); err != nil {
		return nil, err
	}

	app.initCache()
	app.initRepositories()
	app.initServices()

	if cfg.EnableSeed {
		app.seedDefaults()
	}

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := app.services.Auth.EnsureAdminUser(cfg.AdminEmail, cfg.AdminPassword); err != nil {
			return nil, fmt.Errorf("failed to ensure admin user: %w", err)
		}
	}

	app.initHandlers()
	app.initRouter()
	app.startBackground(ctx)

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.scheduler != nil {
		if err := a.scheduler.Shutdown(ctx); err != nil {
			logger.Error(err, "Failed to stop background scheduler", nil)
		}
	}

	if a.limiter != nil {
		a.limiter.Shutdown()
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) initDatabase() error {
	logger.Info("Connecting to database", nil)

	db, err := gorm.Open(postgres.Open(a.cfg.DatabaseURL), &gorm.Config{
		Logger: logger.NewGormLogger(),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	a.db = db
	return nil
}

func (a *Application) runMigrations() error {
	if a.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	logger.Info("Running database migrations", nil)

	if err := a.db.AutoMigrate(
		&models.AdminUser{},
		&models.Category{},
		&models.Product{},
		&models.Page{},
		&models.Order{},
		&models.OrderItem{},
		&models.Coupon{},
		&models.InventoryLog{},
		&models.ServerEvent{},
		&models.Setting{},
		&models.ThemeTemplate{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database migration completed", nil)
	return nil
}

func (a *Application) createIndexes() error {
	if a.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_active ON products(active) WHERE active = true",
		"CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id)",
		"CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)",
		"CREATE INDEX IF NOT EXISTS idx_server_events_pending ON server_events(created_at ASC) WHERE status = 'pending'",
		"CREATE INDEX IF NOT EXISTS idx_inventory_logs_product ON inventory_logs(product_id, created_at DESC)",
	}

	for _, stmt := range statements {
		if err := a.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

func (a *Application) initCache() {
	if a.cfg.EnableCache && a.cfg.EnableRedis {
		c, err := cache.NewCache(a.cfg.RedisURL, true)
		if err != nil {
			logger.Warn("Redis unavailable, caching disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			a.cache = c
			return
		}
	}

	a.cache, _ = cache.NewCache("", false)
}

func (a *Application) initRepositories() {
	a.repositories = repositoryContainer{
		User:      repository.NewUserRepository(a.db),
		Product:   repository.NewProductRepository(a.db),
		Category:  repository.NewCategoryRepository(a.db),
		Page:      repository.NewPageRepository(a.db),
		Order:     repository.NewOrderRepository(a.db),
		Coupon:    repository.NewCouponRepository(a.db),
		Inventory: repository.NewInventoryRepository(a.db),
		Setting:   repository.NewSettingRepository(a.db),
		Template:  repository.NewTemplateRepository(a.db),
		Event:     repository.NewEventRepository(a.db),
	}
}

func (a *Application) initServices() {
	a.registry = sections.Default()

	mode := theme.ModeProduction
	if a.cfg.IsDevelopment() {
		mode = theme.ModeDevelopment
	}
	renderer := theme.NewRenderer(a.registry, mode)

	catalog := service.NewCatalogService(
		a.repositories.Product,
		a.repositories.Category,
		a.repositories.Inventory,
		a.cache,
	)

	a.services = serviceContainer{
		Auth:    service.NewAuthService(a.repositories.User, a.cfg.JWTSecret),
		Catalog: catalog,
		Page:    service.NewPageService(a.repositories.Page, a.cache),
		Theme:   service.NewThemeService(a.repositories.Template, a.registry, renderer, catalog),
		Order: service.NewOrderService(
			a.repositories.Order,
			a.repositories.Product,
			a.repositories.Inventory,
			a.repositories.Event,
		),
		Coupon:  service.NewCouponService(a.repositories.Coupon),
		Setting: service.NewSettingService(a.repositories.Setting, a.cache),
		Event:   service.NewEventService(a.repositories.Event, a.cfg.ConversionsEndpoint, a.cfg.ConversionsAccessToken),
	}

	var storage cart.Storage
	if a.cache != nil && a.cache.Enabled() {
		storage = cart.NewCacheStorage(a.cache)
	} else {
		storage = cart.NewMemoryStorage()
	}
	a.cartStore = cart.NewStore(storage)
}

func (a *Application) seedDefaults() {
	seed.EnsureCategories(a.repositories.Category)
	seed.EnsureProducts(a.repositories.Product, a.repositories.Category)
	seed.EnsurePages(a.repositories.Page)
	seed.EnsureHomeTemplate(a.repositories.Template, service.HomeTemplateKey)
}

func (a *Application) initHandlers() {
	a.handlers = handlerContainer{
		Auth:       handlers.NewAuthHandler(a.services.Auth),
		Product:    handlers.NewProductHandler(a.services.Catalog),
		Category:   handlers.NewCategoryHandler(a.services.Catalog),
		Page:       handlers.NewPageHandler(a.services.Page),
		Order:      handlers.NewOrderHandler(a.services.Order),
		Coupon:     handlers.NewCouponHandler(a.services.Coupon),
		Inventory:  handlers.NewInventoryHandler(a.services.Catalog),
		Setting:    handlers.NewSettingHandler(a.services.Setting),
		Theme:      handlers.NewThemeHandler(a.services.Theme),
		Storefront: handlers.NewStorefrontHandler(a.services.Catalog, a.services.Theme),
		Cart:       handlers.NewCartHandler(a.cartStore, a.services.Catalog),
		Webhook:    handlers.NewWebhookHandler(webhook.NewVerifier(a.cfg.WebhookSecret), a.services.Order),
	}
}

func (a *Application) startBackground(ctx context.Context) {
	a.limiter = middleware.NewRateLimitManager(ctx)

	a.scheduler = background.NewScheduler(background.SchedulerConfig{})
	a.scheduler.Start(ctx)

	if err := a.scheduler.ScheduleEvery(eventDispatchInterval, background.Job{
		Name:    "dispatch-conversion-events",
		Timeout: 25 * time.Second,
		Run: func(jobCtx context.Context) error {
			return a.services.Event.DispatchPending(jobCtx)
		},
	}); err != nil {
		logger.Error(err, "Failed to schedule event dispatch", nil)
	}
}

func (a *Application) initRouter() {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinLogger())
	if a.cfg.EnableMetrics {
		router.Use(middleware.MetricsMiddleware())
	}
	router.Use(middleware.RateLimitMiddleware(a.cfg, a.limiter))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", handlers.CartTokenHeader},
		ExposeHeaders:    []string{"Content-Length", handlers.CartTokenHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := router.Group("/api")
	{
		public := api.Group("")
		{
			public.POST("/auth/login", a.handlers.Auth.Login)

			public.GET("/storefront/resolve", a.handlers.Storefront.Resolve)
			public.GET("/storefront/home", a.handlers.Storefront.Home)

			public.GET("/products", a.handlers.Product.List)
			public.GET("/products/:handle", a.handlers.Product.GetByHandle)
			public.GET("/categories", a.handlers.Category.List)
			public.GET("/pages/:type", a.handlers.Page.GetByType)
			public.GET("/settings", a.handlers.Setting.Public)

			public.GET("/cart", a.handlers.Cart.Get)
			public.POST("/cart/items", a.handlers.Cart.AddItem)
			public.DELETE("/cart/items/:index", a.handlers.Cart.RemoveItem)
			public.DELETE("/cart", a.handlers.Cart.Clear)
			public.GET("/cart/checkout", a.handlers.Cart.CheckoutURL)

			public.POST("/coupons/validate", a.handlers.Coupon.Validate)

			public.POST("/webhooks/orders", a.handlers.Webhook.HandleOrder)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(a.cfg.JWTSecret))
		admin.Use(middleware.AdminMiddleware())
		{
			admin.GET("/me", a.handlers.Auth.Me)

			admin.GET("/products", a.handlers.Product.AdminList)
			admin.GET("/products/:id", a.handlers.Product.GetByID)
			admin.POST("/products", a.handlers.Product.Create)
			admin.PUT("/products/:id", a.handlers.Product.Update)
			admin.DELETE("/products/:id", a.handlers.Product.Delete)

			admin.POST("/categories", a.handlers.Category.Create)
			admin.PUT("/categories/:id", a.handlers.Category.Update)
			admin.DELETE("/categories/:id", a.handlers.Category.Delete)

			admin.GET("/pages", a.handlers.Page.AdminList)
			admin.POST("/pages", a.handlers.Page.Create)
			admin.PUT("/pages/:id", a.handlers.Page.Update)
			admin.DELETE("/pages/:id", a.handlers.Page.Delete)

			admin.GET("/orders", a.handlers.Order.List)
			admin.GET("/orders/:id", a.handlers.Order.GetByID)
			admin.PUT("/orders/:id/tracking", a.handlers.Order.UpdateTracking)

			admin.GET("/coupons", a.handlers.Coupon.List)
			admin.POST("/coupons", a.handlers.Coupon.Create)
			admin.PUT("/coupons/:id", a.handlers.Coupon.Update)
			admin.DELETE("/coupons/:id", a.handlers.Coupon.Delete)

			admin.POST("/inventory/adjustments", a.handlers.Inventory.Adjust)
			admin.GET("/inventory/logs", a.handlers.Inventory.Logs)

			admin.GET("/settings", a.handlers.Setting.All)
			admin.PUT("/settings", a.handlers.Setting.Update)

			admin.GET("/theme/sections", a.handlers.Theme.Sections)
			admin.GET("/theme/templates/:key", a.handlers.Theme.GetTemplate)
			admin.PUT("/theme/templates/:key", a.handlers.Theme.SaveTemplate)
			admin.POST("/theme/preview", a.handlers.Theme.Preview)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "route not found",
			"path":  c.Request.URL.Path,
		})
	})

	a.router = router
}
