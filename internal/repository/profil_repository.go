package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"employabilite/internal/database"
	"employabilite/internal/domain/profil"

	"github.com/jackc/pgx/v5"
)

var ErrProfilNotFound = errors.New("profil not found")

// ProfilFilter narrows a profile listing. Zero values mean "no predicate".
// OrderByTE sorts by full_te descending instead of the default id order, so
// a LIMIT keeps the highest-scoring profiles.
type ProfilFilter struct {
	CSP       string
	MinFullTE *float64
	OrderByTE bool
	Limit     int
}

// ScoreUpdate is the write-back payload after a full-TE computation. The
// single-row UPDATE is the only mutation this core performs on profiles.
type ScoreUpdate struct {
	SavoirNorm       float64
	SavoirFaireNorm  float64
	SavoirEtreNorm   float64
	ResourcesScore   float64
	MarketScore      float64
	FullTE           float64
	TEClassification string
	LastScored       time.Time
}

type ProfilRepository interface {
	FindByID(ctx context.Context, idDemandeur string) (profil.Profil, error)
	Find(ctx context.Context, f ProfilFilter) ([]profil.Profil, error)
	ListIDs(ctx context.Context) ([]string, error)
	CountByCSP(ctx context.Context, csp string) (int64, error)
	UpdateScores(ctx context.Context, idDemandeur string, up ScoreUpdate) error
}

type PostgresProfilRepository struct {
	db database.DB
}

func NewPostgresProfilRepository(db database.DB) *PostgresProfilRepository {
	return &PostgresProfilRepository{db: db}
}

const profilColumns = `id_demandeur, COALESCE(nom_complet, ''), COALESCE(wilaya, ''), csp,
	COALESCE(diplomes, '[]'::jsonb), COALESCE(experiences, '[]'::jsonb),
	COALESCE(competences_techniques, '[]'::jsonb), COALESCE(soft_skills, '[]'::jsonb),
	COALESCE(langues, '[]'::jsonb),
	savoir_norm, savoir_faire_norm, savoir_etre_norm, resources_score,
	market_score, full_te, COALESCE(te_classification, ''), last_scored, date_inscription`

func (r *PostgresProfilRepository) FindByID(ctx context.Context, idDemandeur string) (profil.Profil, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profilColumns+` FROM profils WHERE id_demandeur = $1`,
		idDemandeur,
	)

	p, err := scanProfil(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return profil.Profil{}, ErrProfilNotFound
		}
		return profil.Profil{}, err
	}
	return p, nil
}

func (r *PostgresProfilRepository) Find(ctx context.Context, f ProfilFilter) ([]profil.Profil, error) {
	query := `SELECT ` + profilColumns + ` FROM profils WHERE 1=1`
	args := make([]any, 0, 3)

	if f.CSP != "" {
		args = append(args, f.CSP)
		query += fmt.Sprintf(` AND csp = $%d`, len(args))
	}
	if f.MinFullTE != nil {
		args = append(args, *f.MinFullTE)
		query += fmt.Sprintf(` AND full_te >= $%d`, len(args))
	}
	if f.OrderByTE {
		query += ` ORDER BY full_te DESC NULLS LAST, id_demandeur ASC`
	} else {
		query += ` ORDER BY id_demandeur ASC`
	}
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profil.Profil, 0)
	for rows.Next() {
		p, err := scanProfil(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProfilRepository) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT id_demandeur FROM profils ORDER BY id_demandeur ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProfilRepository) CountByCSP(ctx context.Context, csp string) (int64, error) {
	var n int64
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM profils WHERE csp = $1`, csp)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresProfilRepository) UpdateScores(ctx context.Context, idDemandeur string, up ScoreUpdate) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE profils SET
			savoir_norm = $1, savoir_faire_norm = $2, savoir_etre_norm = $3,
			resources_score = $4, market_score = $5, full_te = $6,
			te_classification = $7, last_scored = $8, updated_at = NOW()
		 WHERE id_demandeur = $9`,
		up.SavoirNorm, up.SavoirFaireNorm, up.SavoirEtreNorm,
		up.ResourcesScore, up.MarketScore, up.FullTE,
		up.TEClassification, up.LastScored.UTC(), idDemandeur,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProfilNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProfil(row scanner) (profil.Profil, error) {
	var (
		p profil.Profil

		diplomes, experiences, competences, softSkills, langues []byte

		savoirNorm, savoirFaireNorm, savoirEtreNorm sql.NullFloat64
		resourcesScore, marketScore, fullTE         sql.NullFloat64
		lastScored, dateInscription                 sql.NullTime
	)

	err := row.Scan(
		&p.IDDemandeur, &p.NomComplet, &p.Wilaya, &p.CSP,
		&diplomes, &experiences, &competences, &softSkills, &langues,
		&savoirNorm, &savoirFaireNorm, &savoirEtreNorm, &resourcesScore,
		&marketScore, &fullTE, &p.Scores.TEClassification, &lastScored, &dateInscription,
	)
	if err != nil {
		return profil.Profil{}, err
	}

	if err := json.Unmarshal(diplomes, &p.Diplomes); err != nil {
		return profil.Profil{}, fmt.Errorf("decode diplomes for %s: %w", p.IDDemandeur, err)
	}
	if err := json.Unmarshal(experiences, &p.Experiences); err != nil {
		return profil.Profil{}, fmt.Errorf("decode experiences for %s: %w", p.IDDemandeur, err)
	}
	if err := json.Unmarshal(competences, &p.Competences); err != nil {
		return profil.Profil{}, fmt.Errorf("decode competences_techniques for %s: %w", p.IDDemandeur, err)
	}
	if err := json.Unmarshal(softSkills, &p.SoftSkills); err != nil {
		return profil.Profil{}, fmt.Errorf("decode soft_skills for %s: %w", p.IDDemandeur, err)
	}
	if err := json.Unmarshal(langues, &p.Langues); err != nil {
		return profil.Profil{}, fmt.Errorf("decode langues for %s: %w", p.IDDemandeur, err)
	}

	p.Scores.SavoirNorm = nullFloat(savoirNorm)
	p.Scores.SavoirFaireNorm = nullFloat(savoirFaireNorm)
	p.Scores.SavoirEtreNorm = nullFloat(savoirEtreNorm)
	p.Scores.ResourcesScore = nullFloat(resourcesScore)
	p.Scores.MarketScore = nullFloat(marketScore)
	p.Scores.FullTE = nullFloat(fullTE)
	if lastScored.Valid {
		t := lastScored.Time
		p.Scores.LastScored = &t
	}
	if dateInscription.Valid {
		t := dateInscription.Time
		p.DateInscription = &t
	}

	return p, nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
