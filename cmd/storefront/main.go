package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hometex-storefront/config"
	"hometex-storefront/internal/apiclient"
	"hometex-storefront/internal/delivery/http/middleware"
	v1 "hometex-storefront/internal/delivery/http/v1"
	"hometex-storefront/internal/infrastructure/cache"
	"hometex-storefront/internal/infrastructure/nominatim"
	"hometex-storefront/internal/infrastructure/packzy"
	"hometex-storefront/internal/infrastructure/state"
	"hometex-storefront/internal/service"
	"hometex-storefront/internal/session"
	"hometex-storefront/internal/usecase"
	"hometex-storefront/pkg/logger"
	"hometex-storefront/pkg/utils"

	"github.com/NYTimes/gziphandler"
	"golang.org/x/time/rate"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Cookie-backed stores come from the request; the memory store serves
	// callers without one.
	tokens := session.NewTokens(state.NewMemoryStore(10 * time.Minute))

	var limiter *rate.Limiter
	if cfg.APIRateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.APIRateLimit), cfg.APIRateBurst)
	}

	client := apiclient.New(apiclient.Options{
		BaseURL:      cfg.APIBaseURL,
		LocalURL:     cfg.APILocalURL,
		Mode:         apiclient.Mode(cfg.APIMode),
		LocalTimeout: cfg.APILocalTimeout,
		HTTPClient:   &http.Client{Timeout: 30 * time.Second},
		Tokens:       tokens,
		Limiter:      limiter,
	})
	log.Info().Str("api", client.BaseURL()).Str("mode", cfg.APIMode).Msg("Storefront API client ready")

	// Cleanup every 60m
	memCache := cache.NewMemoryCache(cfg.CacheProductTTL, 60*time.Minute)

	// --- Services ---
	productService := service.NewProductService(client)
	cartService := service.NewCartService(client)
	wishlistService := service.NewWishlistService(client)
	orderService := service.NewOrderService(client)
	authService := service.NewAuthService(client)
	alertService := service.NewAlertService(client)
	reviewService := service.NewReviewService(client)
	userService := service.NewUserService(client)
	paymentService := service.NewPaymentService(client)
	giftService := service.NewGiftService(client)
	contactService := service.NewContactService(client)
	locationService := service.NewLocationService(client)

	// --- Usecases ---
	recentUC := usecase.NewRecentlyViewedUsecase()
	catalogUC := usecase.NewCatalogUsecase(productService, memCache, recentUC, cfg)
	cartUC := usecase.NewCartUsecase(cartService, tokens, cfg.MaxCartQuantity)
	wishlistUC := usecase.NewWishlistUsecase(wishlistService, tokens)
	offerUC := usecase.NewOfferUsecase(alertService)
	locationUC := usecase.NewLocationUsecase(nominatim.NewClient(cfg.NominatimURL, cfg.NominatimUserAgent))
	trackingUC := usecase.NewTrackingUsecase(orderService, packzy.NewClient(cfg.PackzyURL, cfg.PackzyAPIKey, cfg.PackzySecretKey))
	authUC := usecase.NewAuthUsecase(authService, tokens)

	mux := http.NewServeMux()
	v1.Register(mux, v1.Handlers{
		Auth:     v1.NewAuthHandler(authUC),
		Catalog:  v1.NewCatalogHandler(catalogUC),
		Cart:     v1.NewCartHandler(cartUC, catalogUC),
		Wishlist: v1.NewWishlistHandler(wishlistUC, catalogUC),
		Recent:   v1.NewRecentlyViewedHandler(recentUC),
		Offer:    v1.NewOfferHandler(offerUC),
		Location: v1.NewLocationHandler(locationUC, locationService),
		Order:    v1.NewOrderHandler(trackingUC, orderService),
		Review:   v1.NewReviewHandler(reviewService, cfg.MaxUploadSizeMB),
		Account:  v1.NewAccountHandler(userService, authService),
		Payment:  v1.NewPaymentHandler(paymentService),
		Gift:     v1.NewGiftHandler(giftService),
		Contact:  v1.NewContactHandler(contactService),
		Alert:    v1.NewAlertHandler(alertService),
	}, middleware.RequireAuth(tokens))

	healthHandler := func(w http.ResponseWriter, r *http.Request) {
		utils.WriteData(w, http.StatusOK, map[string]any{
			"status":      "ok",
			"api":         client.BaseURL(),
			"cache_items": memCache.ItemCount(),
		})
	}
	mux.HandleFunc("GET /api/v1/health", healthHandler)
	mux.HandleFunc("GET /health", healthHandler)

	// sweep every minute, forget clients idle for 3 minutes
	rateLimiter := middleware.NewRateLimiter(
		context.Background(),
		rate.Limit(cfg.RateLimitRPS),
		cfg.RateLimitBurst,
		time.Minute,
		3*time.Minute,
		"/health", "/api/v1/health",
	)

	// Session must wrap RequestLogger so the log line can name the visitor.
	handler := middleware.RequestLogger(mux)
	handler = middleware.Session(state.CookieOptions{
		Domain: cfg.CookieDomain,
		Secure: cfg.CookieSecure,
	})(handler)
	handler = middleware.NewCORSMiddleware(cfg)(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	logger.ServiceStart("storefront", version, cfg.Port)

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

	logger.ServiceStop("storefront")
}
