//	@title			Rent Management API
//	@version		1.0
//	@description	A Go backend for rental-property management: properties, the tenants occupying their units, and the rent payments tenants make, over PostgreSQL.

//	@license.name	MIT
//	@license.url	http://opensource.org/licenses/MIT

//	@host		localhost:8080
//	@BasePath	/

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/masindes/Rent-Management-app/internal/api"
	"github.com/masindes/Rent-Management-app/internal/config"
	"github.com/masindes/Rent-Management-app/internal/metrics"
	"github.com/masindes/Rent-Management-app/internal/repository"
)

func main() {
	seed := flag.Bool("seed", false, "insert sample data and exit")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting rent management backend")

	// Initialize database (runs migrations)
	db, err := repository.NewDatabase(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	propertyRepo := repository.NewPropertyRepository(db.Pool(), logger)
	tenantRepo := repository.NewTenantRepository(db.Pool(), logger)
	paymentRepo := repository.NewPaymentRepository(db.Pool(), logger)

	if *seed {
		if err := runSeed(context.Background(), propertyRepo, tenantRepo, paymentRepo); err != nil {
			logger.Fatal("Failed to seed database", zap.Error(err))
		}
		logger.Info("Database seeded successfully")
		return
	}

	// Initialize API server
	server := api.NewServer(cfg, propertyRepo, tenantRepo, paymentRepo, logger)
	server.SetupRoutes()

	// Export connection pool gauges
	if cfg.Metrics.Enabled {
		go reportPoolStats(db)
	}

	// Start HTTP server
	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: server.GetRouter(),
	}

	go func() {
		logger.Info("Server starting", zap.String("address", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Create shutdown context
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

func initLogger(level string) (*zap.Logger, error) {
	var zapConfig zap.Config

	if gin.Mode() == gin.DebugMode {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	switch level {
	case "debug":
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapConfig.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapConfig.Build()
}

func reportPoolStats(db *repository.Database) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		stat := db.Pool().Stat()
		metrics.UpdateDatabaseConnections("active", float64(stat.AcquiredConns()))
		metrics.UpdateDatabaseConnections("idle", float64(stat.IdleConns()))
		metrics.UpdateDatabaseConnections("waiting", float64(stat.EmptyAcquireCount()))
	}
}
