package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"employabilite/internal/database"
	"employabilite/internal/domain/scoring"

	"github.com/jackc/pgx/v5"
)

// Placement records a hire: which demandeur, when, and how long they waited.
// The waiting time drives both the durée market signal and the dynamic
// weighting agent's success measure.
type Placement struct {
	IDPlacement       string
	IDDemandeur       string
	IDOffre           string
	CSP               string
	Wilaya            string
	DureeAttenteJours int
	DatePlacement     *time.Time
}

type PlacementRepository interface {
	// AverageWaitDays returns nil when the category has no placement
	// history, which the market scorer maps to the neutral durée score.
	AverageWaitDays(ctx context.Context, csp string) (*float64, error)
	ListScoredByCSP(ctx context.Context, csp string) ([]scoring.PlacedProfile, error)
}

type PostgresPlacementRepository struct {
	db database.DB
}

func NewPostgresPlacementRepository(db database.DB) *PostgresPlacementRepository {
	return &PostgresPlacementRepository{db: db}
}

func (r *PostgresPlacementRepository) AverageWaitDays(ctx context.Context, csp string) (*float64, error) {
	var avg sql.NullFloat64
	row := r.db.QueryRow(ctx,
		`SELECT AVG(duree_attente_jours) FROM placements WHERE csp = $1`,
		csp,
	)
	if err := row.Scan(&avg); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	v := avg.Float64
	return &v, nil
}

// ListScoredByCSP joins placements with the placed profiles' persisted
// sub-scores. Never-scored profiles are excluded since they carry no signal
// for the correlation.
func (r *PostgresPlacementRepository) ListScoredByCSP(ctx context.Context, csp string) ([]scoring.PlacedProfile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.savoir_norm, p.savoir_faire_norm, p.savoir_etre_norm, pl.duree_attente_jours
		 FROM placements pl
		 JOIN profils p ON p.id_demandeur = pl.id_demandeur
		 WHERE pl.csp = $1 AND p.savoir_norm IS NOT NULL
		 ORDER BY pl.date_placement ASC`,
		csp,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]scoring.PlacedProfile, 0)
	for rows.Next() {
		var pp scoring.PlacedProfile
		if err := rows.Scan(&pp.SavoirNorm, &pp.SavoirFaireNorm, &pp.SavoirEtreNorm, &pp.DureeAttenteJours); err != nil {
			return nil, err
		}
		out = append(out, pp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
