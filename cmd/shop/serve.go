package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yashrajoria/classroom-shop/cart"
	"github.com/yashrajoria/classroom-shop/config"
	"github.com/yashrajoria/classroom-shop/database"
	"github.com/yashrajoria/classroom-shop/logger"
	"github.com/yashrajoria/classroom-shop/routes"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP service",
	Long: `Starts the pages and JSON API. Configuration comes from the environment
(or a .env file): PORT, REDIS_URL, CART_TTL, JWT_SECRET, DISCOUNTS_FILE,
PRODUCTS_SEED, PRODUCTS_COUNT, LOGIN_RATE_PER_MINUTE.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides PORT)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Load environment configuration
	cfg := config.Load()
	if servePort != "" {
		cfg.Port = servePort
	}

	logger.Initialize(cfg.AppEnv)
	defer func() { _ = logger.Log.Sync() }()
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	repo, closeRepo, err := openCartRepository(cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	discounts, err := loadDiscounts(cfg.DiscountsFile)
	if err != nil {
		return err
	}

	router, err := routes.NewRouter(cfg, repo, discounts, logger.Log)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	// Start HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Shop service is running", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-stop:
	}

	logger.Log.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Log.Info("Server shutdown complete")
	return nil
}

// openCartRepository uses redis when REDIS_URL is set and memory otherwise.
func openCartRepository(cfg config.Config) (database.CartRepository, func(), error) {
	if cfg.RedisURL == "" {
		logger.Log.Warn("REDIS_URL not set, carts are kept in memory")
		return database.NewMemoryCartRepository(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := database.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Log.Info("Connected to Redis", zap.Duration("cart_ttl", cfg.CartTTL))
	return database.NewRedisCartRepository(client, cfg.CartTTL), func() { _ = client.Close() }, nil
}

func loadDiscounts(path string) (cart.Discounts, error) {
	if path == "" {
		return cart.DefaultDiscounts, nil
	}
	discounts, err := cart.LoadDiscounts(path)
	if err != nil {
		return nil, fmt.Errorf("load discounts: %w", err)
	}
	logger.Log.Info("Loaded discount codes", zap.String("file", path), zap.Int("codes", len(discounts)))
	return discounts, nil
}
