package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"treasury/internal/audit"
	"treasury/internal/guard"
	httpapi "treasury/internal/http"
	jwttoken "treasury/internal/jwt_token"
	"treasury/internal/lending"
	"treasury/internal/platform/config"
	"treasury/internal/platform/httpserver"
	"treasury/internal/platform/logger"
	"treasury/internal/platform/metrics"
	"treasury/internal/platform/redis"
	"treasury/internal/proposal/handler"
	proposalmetrics "treasury/internal/proposal/metrics"
	"treasury/internal/proposal/ports"
	"treasury/internal/proposal/service"
	"treasury/internal/proposal/store"
	"treasury/internal/voting"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("treasury stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	httpMetrics := metrics.New(reg)
	proposalMetrics := proposalmetrics.New(reg)
	checks := map[string]httpapi.HealthCheck{}

	network, err := newDevNetwork(ctx, cfg.Treasury)
	if err != nil {
		return fmt.Errorf("seed dev network: %w", err)
	}

	db, err := openDatabase(ctx, cfg.Database, checks)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}
	proposals, tx := proposalStore(db, cfg.Database)

	locker, closeLocker, err := openLocker(ctx, cfg, proposalMetrics, log, checks)
	if err != nil {
		return err
	}
	defer closeLocker()

	sink, closeSink, err := openAuditSink(ctx, cfg.Kafka, db)
	if err != nil {
		return err
	}
	defer closeSink()
	auditQueue, inbox := audit.NewQueuePublisher(cfg.Kafka.QueueSize)
	auditWorker := audit.NewWorker(sink, inbox, audit.WithWorkerLogger(log))

	svc, err := service.New(service.Collaborators{
		Registry: network.registry,
		Ledgers:  network.ledgers,
		Votings:  network.votings,
		Lending:  lending.NewClient(network.pool, lending.WithLogger(log), lending.WithRecorder(proposalMetrics)),
		Custody:  network.vault,
		Locker:   locker,
		Reserved: guard.NewReservedSet(cfg.Treasury.Account, cfg.Treasury.Reserved...),
		Store:    proposals,
		Tx:       tx,
	}, service.Config{Self: cfg.Treasury.Adapter, Treasury: cfg.Treasury.Account},
		service.WithLogger(log),
		service.WithMetrics(proposalMetrics),
		service.WithAuditPublisher(auditQueue),
	)
	if err != nil {
		return fmt.Errorf("build proposal service: %w", err)
	}

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer)
	if token, err := jwtService.GenerateAccessToken(devMember, time.Hour); err == nil {
		log.Debug("dev member access token", "member", devMember, "token", token)
	}

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:   log,
		Metrics:  httpMetrics,
		Gatherer: reg,
		JWT:      jwttoken.NewJWTServiceAdapter(jwtService),
		Authenticated: authenticatedRoutes(cfg, svc, network.voting, log),
		Checks:        checks,
	})
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := auditWorker.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		log.Info("starting treasury", "addr", cfg.Addr, "organization", devOrganization)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		log.Info("treasury stopped")
		return nil
	})
	return g.Wait()
}

// openDatabase connects and migrates PostgreSQL when a database URL is
// configured. It returns nil otherwise.
func openDatabase(ctx context.Context, cfg config.DatabaseConfig, checks map[string]httpapi.HealthCheck) (*sql.DB, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	for _, migrate := range []func(context.Context, *sql.DB) error{store.Migrate, audit.MigratePostgres} {
		if err := migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	checks["postgres"] = db.PingContext
	return db, nil
}

func proposalStore(db *sql.DB, cfg config.DatabaseConfig) (store.Store, store.Tx) {
	if db == nil {
		mem := store.NewInMemoryStore()
		return mem, mem
	}
	return store.NewPostgres(db), store.NewPostgresTxRunner(db, store.WithTxTimeout(cfg.TxTimeout))
}

// authenticatedRoutes lists the handlers mounted behind RequireAuth. The manual
// vote recorder bypasses governance, so it is mounted only when enabled.
func authenticatedRoutes(cfg config.Server, svc handler.Service, adapter *voting.Adapter, log *slog.Logger) []httpapi.Registrar {
	routes := []httpapi.Registrar{handler.New(svc, log)}
	if cfg.VoteRecorderEnabled {
		log.Warn("manual vote recorder enabled; any authenticated caller can set vote outcomes")
		routes = append(routes, voting.NewHandler(adapter, log))
	}
	return routes
}

// openLocker selects the Redis lock when a Redis URL is configured, so several
// replicas share one lock per organization.
func openLocker(ctx context.Context, cfg config.Server, recorder *proposalmetrics.Metrics, log *slog.Logger, checks map[string]httpapi.HealthCheck) (ports.Locker, func(), error) {
	client, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		return guard.NewLocalLocker(recorder), func() {}, nil
	}
	checks["redis"] = client.Health
	locker := guard.NewRedisLocker(client.Client,
		guard.WithTTL(cfg.Treasury.LockTTL),
		guard.WithLogger(log),
		guard.WithContentionRecorder(recorder),
	)
	return locker, func() { _ = client.Close() }, nil
}

// openAuditSink prefers Kafka, then PostgreSQL, then memory.
func openAuditSink(ctx context.Context, cfg config.KafkaConfig, db *sql.DB) (audit.Sink, func(), error) {
	switch {
	case len(cfg.Brokers) > 0:
		client, err := audit.NewKafkaClient(cfg.Brokers)
		if err != nil {
			return nil, nil, err
		}
		if err := client.Ping(ctx); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("ping kafka: %w", err)
		}
		return audit.NewKafkaSink(client, cfg.AuditTopic), client.Close, nil
	case db != nil:
		return audit.NewPostgresStore(db), func() {}, nil
	default:
		return audit.NewInMemoryStore(), func() {}, nil
	}
}
