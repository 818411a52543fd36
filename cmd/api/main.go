package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/artledger/content-registry/internal/adapter"
	"github.com/artledger/content-registry/internal/api/middleware"
	"github.com/artledger/content-registry/internal/api/server"
	"github.com/artledger/content-registry/internal/config"
	"github.com/artledger/content-registry/internal/domain"
	"github.com/artledger/content-registry/internal/logger"
	"github.com/artledger/content-registry/internal/providers/jetstream"
	"github.com/artledger/content-registry/internal/registry"
	"github.com/artledger/content-registry/internal/roles"
	"github.com/artledger/content-registry/internal/settlement"
	"github.com/artledger/content-registry/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Content Registry API")

	// Connect to database. TranslateError maps driver duplicate-key
	// failures onto gorm.ErrDuplicatedKey, which the store relies on.
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Run schema migrations
	if err := store.AutoMigrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to run migrations", zap.Error(err))
	}

	// Initialize store and adapters
	dataStore := store.NewPGStore(db)
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	// Connect to NATS JetStream
	publisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))

	// Resolve the settlement principals
	escrow, err := domain.NewPrincipal(cfg.Registry.EscrowAccount)
	if err != nil {
		logger.FatalCtx(ctx, "Invalid escrow account", zap.Error(err))
	}
	settlementAdmin, err := domain.NewPrincipal(cfg.Registry.SettlementAdmin)
	if err != nil {
		logger.FatalCtx(ctx, "Invalid settlement admin", zap.Error(err))
	}
	defaultFeeRecipient := domain.ZeroPrincipal
	if cfg.Registry.DefaultFeeRecipient != "" {
		defaultFeeRecipient, err = domain.NewPrincipal(cfg.Registry.DefaultFeeRecipient)
		if err != nil {
			logger.FatalCtx(ctx, "Invalid default fee recipient", zap.Error(err))
		}
	}

	// Seed the configured admin principals
	authority := roles.NewAuthority(dataStore)
	admins := make([]domain.Principal, 0, len(cfg.Registry.AdminPrincipals))
	for _, address := range cfg.Registry.AdminPrincipals {
		admin, err := domain.NewPrincipal(address)
		if err != nil {
			logger.FatalCtx(ctx, "Invalid admin principal", zap.Error(err), zap.String("address", address))
		}
		admins = append(admins, admin)
	}
	if err := authority.SeedAdmins(ctx, admins); err != nil {
		logger.FatalCtx(ctx, "Failed to seed admin roles", zap.Error(err))
	}

	// Wire the registry services
	settler := settlement.NewSettler(dataStore, publisher, clock, settlement.Config{
		Admin:               settlementAdmin,
		Escrow:              escrow,
		DefaultFeeBps:       cfg.Registry.DefaultFeeBps,
		DefaultFeeRecipient: defaultFeeRecipient,
	})
	contentRegistry := registry.NewRegistry(dataStore, settler, authority, publisher, clock)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, dataStore, contentRegistry, settler, authority)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
