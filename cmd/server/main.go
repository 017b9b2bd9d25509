package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/diewo77/factures/internal/config"
	"github.com/diewo77/factures/internal/pdf"
	"github.com/diewo77/factures/internal/store"
	"github.com/diewo77/factures/pkg/logger"
)

var migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")

func main() {
	flag.Parse()

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Must(logger.New())
	defer log.Sync()

	st, err := store.Open(cfg.DatabasePath, logger.Named(log, "store"))
	if err != nil {
		log.Fatal("open store", zap.Error(err))
	}

	if *migrateOnlyFlag {
		log.Info("migrations completed")
		return
	}

	renderer := pdf.NewRenderer(cfg.Company.Name, cfg.Company.Address, cfg.Company.Phone)
	app := NewApp(st, renderer, logger.Named(log, "http"))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      withLogging(app, logger.Named(log, "access")),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting",
			zap.String("port", cfg.Port),
			zap.String("database", cfg.DatabasePath),
			zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("error during shutdown", zap.Error(err))
	}
	log.Info("server stopped gracefully")
}

// withLogging adds request logging middleware.
func withLogging(next http.Handler, log *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}
