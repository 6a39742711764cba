package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"

	"shopcart-backend/config"
	"shopcart-backend/internal/delivery/http/middleware"
	v1 "shopcart-backend/internal/delivery/http/v1"
	"shopcart-backend/internal/domain"
	"shopcart-backend/internal/infrastructure/cache"
	"shopcart-backend/internal/repository/cartstore"
	"shopcart-backend/internal/repository/pgxrepo"
	"shopcart-backend/internal/repository/remote"
	"shopcart-backend/internal/repository/static"
	"shopcart-backend/internal/usecase"
	"shopcart-backend/pkg/logger"
	"shopcart-backend/pkg/storage"
	"shopcart-backend/pkg/utils"
)

func main() {
	cfg := config.LoadConfig()
	utils.SetSecret(cfg.JWTSecret)

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Catalog source: postgres by default, or a one-shot fetch from an
	// upstream products endpoint.
	var productRepo domain.ProductRepository
	switch cfg.CatalogSource {
	case config.CatalogSourceRemote:
		remoteRepo := remote.NewCatalogRepository(cfg.CatalogURL)
		if err := remoteRepo.Load(context.Background()); err != nil {
			// Serve an empty catalog rather than refusing to start; ops can
			// restart once the upstream is back.
			log.Error().Err(err).Str("url", cfg.CatalogURL).Msg("Failed to load remote catalog")
		} else {
			log.Info().Str("url", cfg.CatalogURL).Msg("Remote catalog loaded")
		}
		productRepo = remoteRepo
	default:
		pgxPool, err := pgxrepo.NewPgxPool(context.Background(), cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer pgxPool.Close()
		log.Info().Msg("Successfully connected to PostgreSQL via pgx")
		productRepo = pgxrepo.NewProductRepository(pgxPool)
	}

	couponRepo := static.NewCouponRepository()

	// Initialize Cache (In-Memory)
	// Default expiration 30m, cleanup every 60m
	memCache := cache.NewMemoryCache(30*time.Minute, 60*time.Minute)

	// Set up Router
	mux := http.NewServeMux()

	// --- Modules Initialization ---

	// Auth Module (single config-backed admin identity)
	authUC := usecase.NewAuthUsecase(cfg.AdminEmail, cfg.AdminPassword, cfg.AccessTokenExpiry)
	authHandler := v1.NewAuthHandler(authUC, cfg.AccessTokenExpiry)

	// Catalog Module
	catalogUC := usecase.NewCatalogUsecase(productRepo, memCache, cfg)
	catalogHandler := v1.NewCatalogHandler(catalogUC)
	adminCatalogHandler := v1.NewAdminCatalogHandler(catalogUC)

	// Cart Module
	cartStore := cartstore.NewCartStore(memCache, cfg.CartTTL)
	cartUC := usecase.NewCartUsecase(cartStore, catalogUC, couponRepo, cfg.MaxCartQuantity)
	cartHandler := v1.NewCartHandler(cartUC)

	// Quote Module (stateless cost calculation)
	quoteUC := usecase.NewQuoteUsecase(catalogUC, couponRepo)
	quoteHandler := v1.NewQuoteHandler(quoteUC)

	// Coupon Module
	couponUC := usecase.NewCouponUsecase(couponRepo)
	couponHandler := v1.NewCouponHandler(couponUC)

	// Catalog (Public)
	mux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts)
	mux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProductByID)
	mux.HandleFunc("GET /api/v1/categories", catalogHandler.GetCategories)
	mux.HandleFunc("GET /api/v1/coupons", couponHandler.ListCoupons)

	// Cart (Public, session-scoped by cart id)
	mux.HandleFunc("POST /api/v1/carts", cartHandler.CreateCart)
	mux.HandleFunc("GET /api/v1/carts/{id}", cartHandler.GetCart)
	mux.HandleFunc("GET /api/v1/carts/{id}/summary", cartHandler.GetSummary)
	mux.HandleFunc("POST /api/v1/carts/{id}/items", cartHandler.AddItem)
	mux.HandleFunc("PUT /api/v1/carts/{id}/items/{productId}", cartHandler.SetItem)
	mux.HandleFunc("DELETE /api/v1/carts/{id}/items/{productId}", cartHandler.RemoveItem)
	mux.HandleFunc("POST /api/v1/carts/{id}/coupon", cartHandler.ApplyCoupon)
	mux.HandleFunc("DELETE /api/v1/carts/{id}/coupon", cartHandler.RemoveCoupon)

	// Stateless quote, mirrors the cart summary math
	mux.HandleFunc("POST /api/v1/cart/calculate", quoteHandler.CalculateCost)

	// Auth
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/logout", authHandler.Logout)

	// Admin (Protected)
	adminMiddleware := func(h http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(middleware.AdminMiddleware(h))
	}

	mux.Handle("POST /api/v1/admin/products", adminMiddleware(adminCatalogHandler.CreateProduct))
	mux.Handle("PUT /api/v1/admin/products/{id}", adminMiddleware(adminCatalogHandler.UpdateProduct))
	mux.Handle("DELETE /api/v1/admin/products/{id}", adminMiddleware(adminCatalogHandler.DeleteProduct))

	// --- Storage Module (R2 product images, optional) ---
	if cfg.R2AccountID != "" {
		r2Storage, err := storage.NewR2Storage(
			context.Background(),
			cfg.R2AccountID,
			cfg.R2AccessKeyID,
			cfg.R2AccessKeySecret,
			cfg.R2BucketName,
			cfg.R2PublicURL,
			cfg.R2UploadTimeout,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize R2 Storage")
		}
		uploadHandler := v1.NewUploadHandler(r2Storage, cfg.MaxUploadSizeMB)
		mux.Handle("POST /api/v1/admin/upload", adminMiddleware(uploadHandler.UploadFile))
	} else {
		log.Warn().Msg("R2 not configured, image upload endpoint disabled")
	}

	// Health Check
	healthHandler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	}
	mux.HandleFunc("GET /api/v1/health", healthHandler)
	mux.HandleFunc("GET /health", healthHandler)

	addr := fmt.Sprintf(":%s", cfg.Port)

	// Rate Limiter with lifecycle management
	// 50 req/s, burst 100, cleanup every minute, TTL 3 minutes
	rateLimiter := middleware.NewRateLimiter(
		context.Background(),
		50,
		100,
		time.Minute,
		3*time.Minute,
	)

	// Apply CORS (with config injection), Request Logger, Rate Limit, and Gzip
	handler := middleware.NewCORSMiddleware(cfg)(mux)
	handler = middleware.RequestLogger(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	log.Info().Msgf("Server starting on %s", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	rateLimiter.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
