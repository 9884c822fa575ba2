package repository

import (
	"context"
	"time"

	"employabilite/internal/database"

	"github.com/google/uuid"
)

// CollecteRun traces one execution of the offer collector against a board.
type CollecteRun struct {
	ID               uuid.UUID
	Source           string
	Statut           string
	OffresCollectees int
	StartedAt        time.Time
	FinishedAt       *time.Time
}

type CollecteRunRepository interface {
	Start(ctx context.Context, source string) (uuid.UUID, error)
	Finish(ctx context.Context, id uuid.UUID, statut string, offresCollectees int) error
}

type PostgresCollecteRunRepository struct {
	db database.DB
}

func NewPostgresCollecteRunRepository(db database.DB) *PostgresCollecteRunRepository {
	return &PostgresCollecteRunRepository{db: db}
}

func (r *PostgresCollecteRunRepository) Start(ctx context.Context, source string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx,
		`INSERT INTO collecte_runs (id, source, statut, started_at)
		 VALUES ($1, $2, 'en_cours', NOW())`,
		id, source,
	)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *PostgresCollecteRunRepository) Finish(ctx context.Context, id uuid.UUID, statut string, offresCollectees int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE collecte_runs
		 SET statut = $1, offres_collectees = $2, finished_at = NOW()
		 WHERE id = $3`,
		statut, offresCollectees, id,
	)
	return err
}
