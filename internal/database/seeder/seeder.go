package seeder

import (
	"context"

	"skill-swap/internal/repository"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, store repository.Store) error
}
