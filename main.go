// @title Strevo Store API
// @version 1.0
// @description Storefront catalog, search and checkout plus the admin CMS
// @host localhost:8081
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/cache"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/config"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers/cms/activity_controller"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers/cms/discount_controller"
	cms_order "github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers/cms/order_controller"
	cms_product "github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers/cms/product_controller"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers/cms/review_controller"
	store_order "github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers/ecommerce/order_controller"
	store_product "github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers/ecommerce/product_controller"
	store_search "github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers/ecommerce/search_controller"
	_ "github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/docs"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/middleware"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/routes/cms_routes"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/routes/ecommerce_routes"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/services"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/store"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	adminRateLimit  = 100
	adminRateWindow = time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	config.InitLogger(cfg.Server.Env)

	if err := config.InitDB(cfg.Database, cfg.IsProduction()); err != nil {
		log.Fatal().Err(err).Msg("database unavailable")
	}
	defer config.CloseDB()

	// suggestions and the rate limiter degrade without Redis
	if err := config.ConnectRedis(cfg.Redis); err != nil {
		if config.RedisClient == nil {
			log.Fatal().Err(err).Msg("redis misconfigured")
		}
		log.Warn().Err(err).Str("component", "redis").Msg("starting without a reachable Redis")
	}
	defer config.CloseRedis()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	verifier, err := buildVerifier(ctx, cfg.Auth)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up token verification")
	}

	// ── stores ──
	productStore := store.NewProductStore(config.DB)
	catalogStore := store.NewCatalogStore(config.Gorm)
	orderStore := store.NewOrderStore(config.Gorm)
	discountStore := store.NewDiscountStore(config.Gorm)
	reviewStore := store.NewReviewStore(config.Gorm)
	profileStore := store.NewProfileStore(config.Gorm)
	activityStore := store.NewActivityStore(config.Gorm)

	// ── services ──
	prefetch := cache.NewPrefetchCache(cfg.Cache.PrefetchSize, cfg.Cache.PrefetchTTL)
	filterService := services.NewProductFilterService(productStore, prefetch)
	suggestService := services.NewSuggestService(productStore, cache.NewSuggestCache(config.RedisClient, cfg.Cache.SuggestVersion))
	checkoutService := services.NewCheckoutService(orderStore.DB(), cfg.Shop)
	activityService := services.NewActivityLogService(activityStore)

	imageStorage, err := services.NewImageStorage(ctx, cfg.Storage)
	if err != nil {
		log.Error().Err(err).Str("component", "storage").Msg("image uploads disabled")
	}

	store_product.Init(filterService, catalogStore, reviewStore)
	store_search.Init(suggestService)
	store_order.Init(checkoutService, orderStore)
	cms_product.Init(catalogStore, imageStorage, filterService, suggestService)
	cms_order.Init(orderStore, cfg.Shop.Name)
	discount_controller.Init(discountStore)
	review_controller.Init(reviewStore)
	activity_controller.Init(activityStore)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.RegisterValidators()
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length", "Server-Timing", "X-Cache-Status", "X-Prefetch-Cache", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", healthCheck)

	api := router.Group("/api")
	shopperAuth := middleware.AuthMiddleware(verifier)
	ecommerce_routes.SetupStorefrontRoutes(api, shopperAuth)
	ecommerce_routes.SetupOrderRoutes(api, shopperAuth)

	admin := api.Group("/admin")
	admin.Use(middleware.RateLimiter(config.RedisClient, adminRateLimit, adminRateWindow))
	admin.Use(middleware.AdminAuthMiddleware(verifier, profileStore))
	admin.Use(middleware.ActivityLoggingMiddleware(activityService))
	cms_routes.SetupProductRoutes(admin)
	cms_routes.SetupOrderRoutes(admin)
	cms_routes.SetupDiscountRoutes(admin)
	cms_routes.SetupReviewRoutes(admin)
	cms_routes.SetupActivityRoutes(admin)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("🚀 server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := config.WithCustomTimeout(15 * time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// buildVerifier accepts tokens signed with JWT_SECRET and, when configured,
// ID tokens from the OIDC issuer.
func buildVerifier(ctx context.Context, auth config.AuthConfig) (middleware.TokenVerifier, error) {
	var chain services.ChainVerifier
	if auth.JWTSecret != "" {
		jwtService, err := services.NewJWTService(auth.JWTSecret, auth.JWTIssuer)
		if err != nil {
			return nil, err
		}
		chain = append(chain, jwtService)
	}
	if auth.OIDCIssuer != "" {
		oidcVerifier, err := services.NewOIDCVerifier(ctx, auth.OIDCIssuer, auth.OIDCClientID)
		if err != nil {
			return nil, err
		}
		chain = append(chain, oidcVerifier)
	}
	return chain, nil
}

// healthCheck godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	ctx, cancel := config.WithCustomTimeout(2 * time.Second)
	defer cancel()

	status := gin.H{"status": "ok", "database": "ok", "redis": "ok"}
	code := http.StatusOK
	if err := config.PingDB(ctx); err != nil {
		status["database"] = err.Error()
		status["status"] = "degraded"
		code = http.StatusServiceUnavailable
	}
	if err := config.PingRedis(ctx); err != nil {
		status["redis"] = err.Error()
		status["status"] = "degraded"
	}
	c.JSON(code, status)
}
