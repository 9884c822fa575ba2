package repository

import (
	"context"

	"employabilite/internal/database"

	"github.com/google/uuid"
)

// Referentiel is one entry of a lookup table: diploma levels, language
// levels, soft-skill labels, CSP descriptors. Type + Code is unique.
type Referentiel struct {
	ID      uuid.UUID
	Type    string
	Code    string
	Libelle string
	Ordre   int
}

type ReferentielRepository interface {
	ListByType(ctx context.Context, typ string) ([]Referentiel, error)
	Upsert(ctx context.Context, ref Referentiel) error
}

type PostgresReferentielRepository struct {
	db database.DB
}

func NewPostgresReferentielRepository(db database.DB) *PostgresReferentielRepository {
	return &PostgresReferentielRepository{db: db}
}

func (r *PostgresReferentielRepository) ListByType(ctx context.Context, typ string) ([]Referentiel, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, type, code, libelle, ordre
		 FROM referentiels WHERE type = $1
		 ORDER BY ordre ASC, code ASC`,
		typ,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Referentiel, 0)
	for rows.Next() {
		var ref Referentiel
		if err := rows.Scan(&ref.ID, &ref.Type, &ref.Code, &ref.Libelle, &ref.Ordre); err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresReferentielRepository) Upsert(ctx context.Context, ref Referentiel) error {
	if ref.ID == uuid.Nil {
		ref.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO referentiels (id, type, code, libelle, ordre, created_at)
		 VALUES ($1, $2, $3, $4, $5, NOW())
		 ON CONFLICT (type, code) DO UPDATE SET
			libelle = EXCLUDED.libelle,
			ordre = EXCLUDED.ordre`,
		ref.ID, ref.Type, ref.Code, ref.Libelle, ref.Ordre,
	)
	return err
}
