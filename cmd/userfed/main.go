package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/userfed/internal/config"
	ufhttp "github.com/dropDatabas3/userfed/internal/http"
	"github.com/dropDatabas3/userfed/internal/observability/logger"
	"github.com/dropDatabas3/userfed/internal/security/password"
	"github.com/dropDatabas3/userfed/internal/store"

	// Registrar drivers vía init()
	_ "github.com/dropDatabas3/userfed/internal/store/drivers/mysql"
	_ "github.com/dropDatabas3/userfed/internal/store/drivers/postgres"
	_ "github.com/dropDatabas3/userfed/internal/store/drivers/sqlite"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run() error {
	// .env si existe; las env del sistema siguen mandando
	_ = godotenv.Load()

	cfgPath := flag.String("config", envOr("UF_CONFIG", "config.yaml"), "path al YAML de configuración")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       cfg.Log.Level,
		ServiceName: "userfed",
	})
	defer logger.Sync()
	log := logger.Named("main")

	verifier, err := password.Resolve(cfg.Credentials.HashFunction, cfg.Credentials.BCrypt)
	if err != nil {
		return err
	}

	ds, err := store.Open(store.DriverConfig{
		Name:            cfg.Storage.Driver,
		DSN:             cfg.Storage.DSN,
		Dialect:         store.Dialect(cfg.Storage.Dialect),
		MaxOpenConns:    cfg.Storage.MaxOpenConns,
		MaxIdleConns:    cfg.Storage.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime(),
	})
	if err != nil {
		return err
	}
	defer ds.Close()

	// La base legada puede no estar arriba todavía: warn, no fatal.
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := ds.Ping(pingCtx); err != nil {
		log.Warn("legacy database unreachable at startup", logger.Err(err))
	}
	cancel()

	repo, err := store.NewUsers(ds, store.Queries{
		ListAll:          cfg.Queries.ListAll,
		Count:            cfg.Queries.Count,
		FindByID:         cfg.Queries.FindByID,
		FindByUsername:   cfg.Queries.FindByUsername,
		FindByEmail:      cfg.Queries.FindByEmail,
		FindBySearchTerm: cfg.Queries.FindBySearchTerm,
		FindPasswordHash: cfg.Queries.FindPasswordHash,
	}, verifier, cfg.Credentials.AllowRemove)
	if err != nil {
		return err
	}

	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		metricsHandler = ufhttp.RegisterMetrics(nil)
		store.RegisterMetrics(nil)
	}

	if cfg.Auth.APIKey == "" && cfg.Auth.JWTSecret == "" {
		log.Warn("bridge API is UNAUTHENTICATED (set auth.api_key or auth.jwt_secret)")
	}

	router := ufhttp.NewRouter(ufhttp.RouterConfig{
		Handler:            ufhttp.NewHandler(repo, ds),
		MetricsHandler:     metricsHandler,
		APIKey:             cfg.Auth.APIKey,
		JWTSecret:          cfg.Auth.JWTSecret,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
	})
	srv := ufhttp.NewServer(cfg.Server.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("userfed bridge listening",
			zap.String("addr", cfg.Server.Addr),
			logger.Driver(cfg.Storage.Driver),
			logger.Dialect(string(ds.Dialect())),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
