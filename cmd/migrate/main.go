package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"skill-swap/internal/config"
	"skill-swap/internal/database/migration"
	"skill-swap/internal/database/postgres"
	"skill-swap/internal/database/seeder"
	"skill-swap/internal/pkg/logger"
	"skill-swap/internal/repository"
)

func main() {
	seed := flag.Bool("seed", false, "insert demo profiles after migrating")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.Store.Driver != config.StoreDriverPostgres {
		log.Fatalf("migrations need STORE_DRIVER=%s, got %q", config.StoreDriverPostgres, cfg.Store.Driver)
	}

	zl := logger.New(cfg.App.LogLevel, cfg.App.Environment)
	defer func() { _ = zl.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.Database, zl)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	runner := migration.Runner{FS: migration.Embedded(), Logger: zl.Named("migration")}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		zl.Fatal("migration failed", zap.Error(err))
	}

	if !*seed {
		return
	}
	seeders := seeder.Runner{Seeders: seeder.Defaults(), Logger: zl.Named("seeder")}
	if err := seeders.Run(ctx, repository.NewPostgresStore(db)); err != nil {
		zl.Fatal("seeding failed", zap.Error(err))
	}
}
