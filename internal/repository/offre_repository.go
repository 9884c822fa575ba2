package repository

import (
	"context"
	"time"

	"employabilite/internal/database"
)

// Offre is a job offer row. Offers feed the market side of the score: the
// tension ratio counts rows whose statut is "Ouverte" or "En cours".
type Offre struct {
	IDOffre             string
	Titre               string
	CSP                 string
	Secteur             string
	Wilaya              string
	Statut              string
	CompetencesRequises []string
	NiveauEtudeMin      string
	ExperienceMinMois   int
	DatePublication     *time.Time
	Source              string
	URL                 string
}

type OffreRepository interface {
	CountOpenByCSP(ctx context.Context, csp string) (int64, error)
	Upsert(ctx context.Context, o Offre) error
}

type PostgresOffreRepository struct {
	db database.DB
}

func NewPostgresOffreRepository(db database.DB) *PostgresOffreRepository {
	return &PostgresOffreRepository{db: db}
}

func (r *PostgresOffreRepository) CountOpenByCSP(ctx context.Context, csp string) (int64, error) {
	var n int64
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM offres WHERE csp = $1 AND statut IN ('Ouverte', 'En cours')`,
		csp,
	)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Upsert keys on id_offre so the collector can re-run against the same board
// without duplicating rows. A re-seen offer refreshes its statut and dates.
func (r *PostgresOffreRepository) Upsert(ctx context.Context, o Offre) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO offres (
			id_offre, titre, csp, secteur, wilaya, statut,
			competences_requises, niveau_etude_min, experience_min_mois,
			date_publication, source, url, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		ON CONFLICT (id_offre) DO UPDATE SET
			titre = EXCLUDED.titre,
			csp = EXCLUDED.csp,
			secteur = EXCLUDED.secteur,
			wilaya = EXCLUDED.wilaya,
			statut = EXCLUDED.statut,
			competences_requises = EXCLUDED.competences_requises,
			niveau_etude_min = EXCLUDED.niveau_etude_min,
			experience_min_mois = EXCLUDED.experience_min_mois,
			date_publication = EXCLUDED.date_publication,
			source = EXCLUDED.source,
			url = EXCLUDED.url,
			updated_at = NOW()`,
		o.IDOffre, o.Titre, o.CSP, o.Secteur, o.Wilaya, o.Statut,
		o.CompetencesRequises, o.NiveauEtudeMin, o.ExperienceMinMois,
		o.DatePublication, o.Source, o.URL,
	)
	return err
}
