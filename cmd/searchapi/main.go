package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/competia/searchapi/internal/config"
	logpkg "github.com/competia/searchapi/internal/logger"
	"github.com/competia/searchapi/internal/metrics"
	"github.com/competia/searchapi/internal/repository"
	"github.com/competia/searchapi/internal/repository/cache"
	"github.com/competia/searchapi/internal/store"
	"github.com/competia/searchapi/internal/strategy"
	chiTransport "github.com/competia/searchapi/internal/transport/chi"
	healthuc "github.com/competia/searchapi/internal/usecase/health"
	searchuc "github.com/competia/searchapi/internal/usecase/search"
	"github.com/competia/searchapi/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting search API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_path", cfg.Database.Path),
	)

	// Open the entity database and apply migrations
	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() { _ = st.Close() }()
	logger.Info("Connected to database")

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Repositories
	db := st.DB()
	users := repository.NewUsers(db)
	courses := repository.NewCourses(db)
	lessons := repository.NewLessons(db)
	standards := repository.NewStandards(db)
	enrollments := repository.NewEnrollments(db)
	certifications := repository.NewCertifications(db)
	simulations := repository.NewSimulations(db)
	documents := repository.NewDocuments(db)
	renecStandards := repository.NewRenecStandards(db)
	certifiers := repository.NewCertifiers(db)
	centers := repository.NewCenters(db)

	// Strategy registry. Registration order is the tie-break order.
	registry := strategy.NewRegistry(
		strategy.NewUser(users),
		strategy.NewCourse(courses),
		strategy.NewLesson(lessons),
		strategy.NewStandard(standards),
		strategy.NewEnrollment(enrollments),
		strategy.NewCertification(certifications),
		strategy.NewSimulation(simulations),
		strategy.NewDocument(documents),
		strategy.NewRenecStandard(renecStandards),
		strategy.NewCertifier(certifiers),
		strategy.NewCenter(centers),
	)

	// Optional facet cache
	var facetCache *cache.Cache
	if len(cfg.Cache.Addrs) > 0 {
		facetCache, err = cache.New(cache.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
			TTL:      time.Duration(cfg.Cache.TTLSec) * time.Second,
		})
		if err != nil {
			logger.Fatal("Failed to create facet cache", zap.Error(err))
		}
		defer facetCache.Close()
		logger.Info("Facet cache enabled", zap.Strings("addrs", cfg.Cache.Addrs))
	}

	// Use case services
	searchSvc := searchuc.New(registry, standards).
		WithLimits(cfg.Search.FacetLimit, cfg.Search.AutocompleteLimit).
		WithFanout(
			time.Duration(cfg.Search.StrategyTimeoutMS)*time.Millisecond,
			cfg.Search.MaxConcurrentFanout,
		)

	// Pass nil interface (not typed nil pointer!) if the cache is disabled.
	var cachePinger healthuc.CachePinger
	if facetCache != nil {
		searchSvc = searchSvc.WithFacetCache(facetCache)
		cachePinger = facetCache
	}

	healthSvc := healthuc.New(st, cachePinger)

	// Create chi server
	server := chiTransport.NewServer(searchSvc, healthSvc, logger).
		WithPageSizes(cfg.Search.DefaultPageSize, cfg.Search.MaxPageSize)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
