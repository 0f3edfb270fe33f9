package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mobosolo/jdr/internal/auth"
	"github.com/mobosolo/jdr/internal/config"
	"github.com/mobosolo/jdr/internal/database"
	"github.com/mobosolo/jdr/internal/handler"
	"github.com/mobosolo/jdr/internal/imagehost"
	"github.com/mobosolo/jdr/internal/middleware"
	"github.com/mobosolo/jdr/internal/redis"
	"github.com/mobosolo/jdr/internal/repository"
	"github.com/mobosolo/jdr/internal/service"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	setLogLevel(cfg.LogLevel)

	isProduction := os.Getenv("APP_ENV") == "production"
	if err := cfg.Validate(isProduction); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), config.DBPingTimeout)
	if err := db.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}
	cancel()
	log.Info().Msg("database connected")

	// Redis is optional: without it the login limiter falls back to
	// per-process state.
	var loginLimiter middleware.LoginLimiter = middleware.NewMemoryLoginLimiter()
	if cfg.RedisURL != "" {
		redisClient, err := redis.NewClient(cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, using in-memory login limiter")
		} else {
			defer redisClient.Close()
			loginLimiter = middleware.NewRedisLoginLimiter(redisClient.Client)
			log.Info().Msg("redis connected")
		}
	}

	var imageHost imagehost.Deleter = imagehost.Disabled{}
	if cfg.CloudinaryConfigured() {
		imageHost = imagehost.NewCloudinary(
			cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret,
		)
		log.Info().Msg("image host cleanup enabled")
	}

	newsRepo := repository.NewNewsRepository(db.DB)
	showRepo := repository.NewShowRepository(db.DB)
	imageRepo := repository.NewImageRepository(db.DB)
	mediaRepo := repository.NewMediaPhotoRepository(db.DB)
	contactRepo := repository.NewContactMessageRepository(db.DB)

	newsService := service.NewNewsService(db, newsRepo, imageRepo, imageHost)
	showService := service.NewShowService(db, showRepo, imageRepo, imageHost)
	mediaService := service.NewMediaService(mediaRepo, imageHost)
	contactService := service.NewContactService(contactRepo)

	creds := auth.Credentials{
		Username:     cfg.AdminUser,
		Password:     cfg.AdminPassword,
		PasswordHash: cfg.AdminPasswordHash,
		TokenSecret:  cfg.AdminTokenSecret,
	}
	if !creds.Configured() {
		log.Warn().Msg("admin credentials incomplete: back office login disabled")
	}

	guard := middleware.NewAdminGuard(cfg.AdminTokenSecret)
	loginLimit := middleware.NewLoginRateLimitMiddleware(loginLimiter)
	csrfMiddleware := middleware.NewCSRFMiddleware(isProduction)
	bodyLimitMiddleware := middleware.NewBodyLimitMiddleware(0)
	securityHeadersMiddleware := middleware.NewSecurityHeadersMiddleware(isProduction)

	newsHandler := handler.NewNewsHandler(newsService)
	showHandler := handler.NewShowHandler(showService)
	mediaHandler := handler.NewMediaHandler(mediaService)
	contactHandler := handler.NewContactHandler(contactService)
	adminHandler := handler.NewAdminHandler(
		creds, newsHandler, showHandler, mediaHandler, contactHandler,
		guard.Handler, loginLimit.Handler, isProduction,
	)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(config.ServerRequestTimeout))
	r.Use(bodyLimitMiddleware.Handler)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Alias for load balancer probes.
	r.Get("/health", handler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handler.Health)
		r.Get("/news", newsHandler.List)
		r.Get("/news/{id}", newsHandler.Get)
		r.Get("/shows", showHandler.List)
		r.Get("/shows/{id}", showHandler.Get)
		r.Get("/media/photos", mediaHandler.List)
		r.Post("/contact", contactHandler.Create)

		r.Route("/admin", func(r chi.Router) {
			r.Use(securityHeadersMiddleware.Handler)
			r.Use(csrfMiddleware.Handler)
			r.Mount("/", adminHandler.Routes())
		})
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: 0,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.ServerShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
