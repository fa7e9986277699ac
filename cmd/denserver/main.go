// Package main provides the den server binary: it hosts dens behind the
// gRPC DenService and pays out income every turn.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/cory-johannsen/goblinden/internal/config"
	"github.com/cory-johannsen/goblinden/internal/denserver"
	"github.com/cory-johannsen/goblinden/internal/game/building"
	"github.com/cory-johannsen/goblinden/internal/game/den"
	"github.com/cory-johannsen/goblinden/internal/game/economy"
	"github.com/cory-johannsen/goblinden/internal/observability"
	"github.com/cory-johannsen/goblinden/internal/scripting"
	"github.com/cory-johannsen/goblinden/internal/server"
	"github.com/cory-johannsen/goblinden/internal/storage/postgres"
	"github.com/cory-johannsen/goblinden/internal/storage/sqlite"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting den server",
		zap.String("grpc_addr", cfg.DenServer.Addr()),
	)

	catalog, err := building.LoadCatalog(cfg.Content.CatalogDir)
	if err != nil {
		logger.Fatal("loading building catalog", zap.Error(err))
	}
	layout, err := den.LoadLayout(cfg.Content.LayoutFile)
	if err != nil {
		logger.Fatal("loading den layout", zap.Error(err))
	}
	logger.Info("content loaded",
		zap.Int("buildings", catalog.Len()),
		zap.Int("slots", layout.Size()),
	)

	regCfg := denserver.RegistryConfig{
		Catalog: catalog,
		Layout:  layout,
		Opening: economy.Amount{Gold: cfg.Economy.StartingGold, Food: cfg.Economy.StartingFood},
	}

	var scripts *scripting.Manager
	if cfg.Content.UnlockScriptDir != "" {
		scripts = scripting.NewManager(logger)
		if err := scripts.Load(cfg.Content.UnlockScriptDir, cfg.Content.ScriptInstructionLimit); err != nil {
			logger.Fatal("loading unlock scripts", zap.Error(err))
		}
		defer scripts.Close()
		regCfg.Override = scripts.UnlockOverride
	}

	metrics := observability.NewMetrics()
	regCfg.Metrics = metrics

	var (
		pool   *postgres.Pool
		store  denserver.Store
		health observability.HealthFunc
	)
	switch {
	case cfg.Database.Enabled:
		pool, err = postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("connecting to database", zap.Error(err))
		}
		store = pool.Dens()
		health = func(ctx context.Context) error { return pool.Health(ctx, 2*time.Second) }
	case cfg.Database.SQLitePath != "":
		dens, err := sqlite.Open(cfg.Database.SQLitePath)
		if err != nil {
			logger.Fatal("opening sqlite den store", zap.Error(err))
		}
		defer func() { _ = dens.Close() }()
		store = dens
		health = dens.Ping
		logger.Info("dens persisted to sqlite", zap.String("path", dens.Path()))
	default:
		logger.Warn("database disabled; dens are kept in memory only")
	}

	registry, err := denserver.NewRegistry(regCfg, store, logger)
	if err != nil {
		logger.Fatal("creating den registry", zap.Error(err))
	}
	if err := registry.Open(ctx); err != nil {
		logger.Fatal("loading dens", zap.Error(err))
	}

	grpcServer := denserver.NewGRPCServer(denserver.NewService(registry, logger), logger,
		grpc.ChainUnaryInterceptor(metrics.UnaryServerInterceptor()),
	)

	lifecycle := server.NewLifecycle(logger)

	lifecycle.AddFunc("grpc",
		func() error {
			lis, err := net.Listen("tcp", cfg.DenServer.Addr())
			if err != nil {
				return fmt.Errorf("listening on %s: %w", cfg.DenServer.Addr(), err)
			}
			logger.Info("gRPC server listening",
				zap.String("addr", lis.Addr().String()),
			)
			return grpcServer.Serve(lis)
		},
		grpcServer.GracefulStop,
	)

	if addr := cfg.DenServer.MetricsAddr; addr != "" {
		opsServer := &http.Server{
			Addr:              addr,
			Handler:           observability.NewOpsHandler(metrics, health, logger),
			ReadHeaderTimeout: 5 * time.Second,
		}
		lifecycle.AddFunc("ops-http",
			func() error {
				logger.Info("ops endpoint listening", zap.String("addr", addr))
				if err := opsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("serving ops endpoint: %w", err)
				}
				return nil
			},
			func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = opsServer.Shutdown(shutdownCtx)
			},
		)
	}

	if cfg.DenServer.TurnInterval > 0 {
		clock := denserver.NewTurnClock(cfg.DenServer.TurnInterval)
		lifecycle.Add("turns", denserver.NewTurnProcessor(clock, registry, logger))
	} else {
		logger.Info("turn clock disabled; turns advance only through EndTurn")
	}

	if pool != nil {
		done := make(chan struct{})
		lifecycle.AddFunc("postgres",
			func() error {
				interval := cfg.DenServer.HealthInterval
				if interval <= 0 {
					<-done
					return nil
				}
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if err := pool.Health(ctx, 5*time.Second); err != nil {
							logger.Warn("database health check failed", zap.Error(err))
						}
					case <-done:
						return nil
					}
				}
			},
			func() {
				close(done)
				pool.Close()
			},
		)
	}

	logger.Info("den server initialized",
		zap.Duration("startup", time.Since(start)),
		zap.Int("dens", len(registry.IDs())),
		zap.Int64("turn", registry.Turn()),
	)

	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
