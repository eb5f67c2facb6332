package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"

	"skill-swap/internal/config"
	"skill-swap/internal/database"
	dbpostgres "skill-swap/internal/database/postgres"
	"skill-swap/internal/infrastructure/cache"
	"skill-swap/internal/pkg/clock"
	"skill-swap/internal/pkg/logger"
	"skill-swap/internal/pkg/metrics"
	"skill-swap/internal/repository"
	"skill-swap/internal/repository/memory"
)

// Container owns every long-lived dependency and closes them in reverse
// order of creation.
type Container struct {
	Config  config.Config
	Logger  *zap.Logger
	DB      database.DB
	Store   repository.Store
	Cache   *cache.Redis
	Metrics tally.Scope
	Clock   *clock.Monotonic
	Sentry  bool

	metricsCloser io.Closer
}

func NewContainer(ctx context.Context, cfg config.Config, log *zap.Logger) (*Container, error) {
	log = logger.OrNop(log)
	c := &Container{
		Config: cfg,
		Logger: log,
		Clock:  clock.NewMonotonic(nil),
	}

	store, db, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	c.Store = store
	c.DB = db

	c.Cache = cache.NewRedis(ctx, cfg.Redis, log.Named("cache"))
	c.Metrics, c.metricsCloser = metrics.NewRootScope(cfg.Metrics, log)

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.App.Environment,
			ServerName:  cfg.App.AppName,
		}); err != nil {
			log.Warn("sentry init failed", zap.Error(err))
		} else {
			c.Sentry = true
		}
	}

	return c, nil
}

func openStore(ctx context.Context, cfg config.Config, log *zap.Logger) (repository.Store, database.DB, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		log.Warn("using in-memory store; data is lost on restart")
		return memory.New(), nil, nil
	case config.StoreDriverPostgres, "":
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(connectCtx, cfg.Database, log.Named("postgres"))
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPostgresStore(db), db, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var errs []error
	if c.metricsCloser != nil {
		errs = append(errs, c.metricsCloser.Close())
	}
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	if c.Sentry {
		sentry.Flush(2 * time.Second)
	}
	return errors.Join(errs...)
}
