package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codecrest-backend/internal/cache"
	"codecrest-backend/internal/casestudies"
	"codecrest-backend/internal/config"
	"codecrest-backend/internal/contacts"
	"codecrest-backend/internal/db"
	"codecrest-backend/internal/httpx"
	"codecrest-backend/internal/middleware"
	"codecrest-backend/internal/notifications"
	"codecrest-backend/internal/reviews"
	"codecrest-backend/internal/uploads"
	"codecrest-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mongo connected")
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		logger.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		cacheStore = redisCache
	}

	mailer := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.ContactRecipient, cfg.BrevoSandbox)
	var notifier contacts.Notifier
	if mailer == nil {
		logger.Info("brevo mailer disabled")
	} else {
		logger.Info("brevo mailer enabled", slog.String("sender", cfg.BrevoSenderEmail), slog.Bool("sandbox", cfg.BrevoSandbox))
		notifier = mailer
	}

	imageHost := uploads.NewHostClient(cfg.ImageHostAPIKey, cfg.ImageHostEndpoint)
	if imageHost == nil {
		logger.Info("image host disabled")
	}

	val := validation.New()
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	contactsRepo := contacts.NewRepository(cols.Contacts)
	contactsService := contacts.NewService(contactsRepo, cfg.Timezone, notifier)
	contactsHandler := contacts.NewHandler(contactsService, val, logger)

	caseStudiesRepo := casestudies.NewRepository(cols.CaseStudies)
	caseStudiesService := casestudies.NewService(caseStudiesRepo, cfg.Timezone)
	caseStudiesHandler := casestudies.NewHandler(caseStudiesService, val, logger, cacheStore, cacheTTL)

	reviewsRepo := reviews.NewRepository(cols.Reviews)
	reviewsService := reviews.NewService(reviewsRepo, cfg.Timezone)
	reviewsHandler := reviews.NewHandler(reviewsService, val, logger, cacheStore, cacheTTL)

	uploadsHandler := uploads.NewHandler(imageHost, logger)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigin))
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	contactLimiter := middleware.NewRateLimiter(cfg.RateLimitContact, time.Duration(cfg.RateLimitWindowSec)*time.Second)
	reviewsLimiter := middleware.NewRateLimiter(cfg.RateLimitReviews, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	r.With(contactLimiter.Middleware).HandleFunc("/contact-submit", httpx.Method(http.MethodPost, contactsHandler.Submit))
	r.HandleFunc("/contacts/list", httpx.Method(http.MethodGet, contactsHandler.List))
	r.HandleFunc("/contacts/mark-read", httpx.Method(http.MethodPut, contactsHandler.MarkRead))
	r.HandleFunc("/contacts/update-status", httpx.Method(http.MethodPut, contactsHandler.UpdateStatus))
	r.HandleFunc("/contacts/delete", httpx.Method(http.MethodDelete, contactsHandler.Delete))

	r.HandleFunc("/case-studies/create", httpx.Method(http.MethodPost, caseStudiesHandler.Create))
	r.HandleFunc("/case-studies/list", httpx.Method(http.MethodGet, caseStudiesHandler.List))
	r.HandleFunc("/case-studies/update", httpx.Method(http.MethodPut, caseStudiesHandler.Update))
	r.HandleFunc("/case-studies/delete", httpx.Method(http.MethodDelete, caseStudiesHandler.Delete))
	r.HandleFunc("/case-studies/seed", httpx.Method(http.MethodPost, caseStudiesHandler.Seed))

	r.With(reviewsLimiter.Middleware).HandleFunc("/reviews/create", httpx.Method(http.MethodPost, reviewsHandler.Create))
	r.HandleFunc("/reviews/list", httpx.Method(http.MethodGet, reviewsHandler.List))
	r.HandleFunc("/reviews/update-status", httpx.Method(http.MethodPut, reviewsHandler.UpdateStatus))
	r.HandleFunc("/reviews/delete", httpx.Method(http.MethodDelete, reviewsHandler.Delete))

	r.HandleFunc("/upload/image", httpx.Method(http.MethodPost, uploadsHandler.UploadImage))

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
