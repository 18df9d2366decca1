package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/app"
	"github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/config"
	"github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/docs"
	"github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/handler"
	"github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/metrics"
	internalRedis "github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/redis"
	"github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/repository"
	"github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/repository/postgres"
	"github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/service"
)

// Version is set at build time.
var Version = "1.0.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		port       string
		configFile string
	)

	cmd := &cobra.Command{
		Use:           "ecommerce-api",
		Short:         "Ecommerce QA API - products, orders and payments in memory",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "HTTP port (overrides PORT)")
	cmd.Flags().StringVar(&configFile, "config", os.Getenv("CONFIG_FILE"), "path to a YAML config file")

	return cmd
}

func run(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic first so the database and Redis clients can be instrumented.
	var nrApp *newrelic.Application
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		var err error
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	var db *sql.DB
	if cfg.Database.Enabled {
		var err error
		db, err = app.NewDatabase(ctx, cfg.Database, nrApp)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		log.Println("Ledger journal connected to PostgreSQL")
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		var err error
		redisClient, err = app.NewRedisClient(ctx, cfg.Redis, nrApp)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer redisClient.Close()
		log.Println("Idempotent replay enabled via Redis")
	}

	server, err := wireServer(ctx, db, redisClient, nrApp, cfg)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server running on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	if nrApp != nil {
		nrApp.Shutdown(5 * time.Second)
	}

	log.Println("Server exited")
	return nil
}

// wireServer wires all dependencies and returns the HTTP server.
// db and redisClient are nil when their integrations are disabled.
func wireServer(ctx context.Context, db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) (*http.Server, error) {
	m := metrics.New()

	var journal repository.JournalRepository
	if db != nil {
		journalRepo := postgres.NewJournalRepository(db)
		if err := journalRepo.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		journal = journalRepo
	}

	var responseStore internalRedis.ResponseStoreInterface
	if redisClient != nil {
		responseStore = internalRedis.NewResponseStore(redisClient)
	}

	ledger := service.NewLedger(service.DefaultCatalog(), journal, m)

	router := app.NewRouter(app.RouterDeps{
		ProductHandler: handler.NewProductHandler(ledger),
		OrderHandler:   handler.NewOrderHandler(ledger),
		PaymentHandler: handler.NewPaymentHandler(ledger),
		DocsHandler:    handler.NewDocsHandler(docs.New(Version)),
		Metrics:        m,
		ResponseStore:  responseStore,
		NewRelicApp:    nrApp,
	})

	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, nil
}
