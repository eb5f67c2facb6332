package seeder

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"skill-swap/internal/pkg/logger"
	"skill-swap/internal/repository"
)

type Runner struct {
	Seeders []Seeder
	Logger  *zap.Logger
}

func (r Runner) Run(ctx context.Context, store repository.Store) error {
	if store == nil {
		return errors.New("nil store")
	}
	log := logger.OrNop(r.Logger)
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, store); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		log.Info("seeded", zap.String("seeder", s.Name()))
	}
	return nil
}
