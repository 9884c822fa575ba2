// Package seeder loads the reference vocabulary and a small demo dataset so
// a fresh database can serve scoring requests immediately. Every seeder is
// idempotent and safe to re-run.
package seeder

import (
	"context"
	"fmt"

	"employabilite/internal/database"

	"go.uber.org/zap"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

func Defaults() []Seeder {
	return []Seeder{
		ReferentielsSeeder{},
		ConseillersSeeder{},
		DemoDataSeeder{},
	}
}

// Run executes the default seeders in order, stopping at the first failure.
func Run(ctx context.Context, db database.DB, logger *zap.Logger) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, s := range Defaults() {
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		logger.Info("seeder applied", zap.String("seeder", s.Name()))
	}
	return nil
}
