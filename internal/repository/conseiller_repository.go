package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"employabilite/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrConseillerNotFound = errors.New("conseiller not found")

// Conseiller is an employment-office counsellor account. Counsellors are the
// only authenticated actors; job seekers never log in.
type Conseiller struct {
	ID           uuid.UUID
	Email        string
	NomComplet   string
	PasswordHash string
	CreatedAt    time.Time
}

type ConseillerRepository interface {
	FindByEmail(ctx context.Context, email string) (Conseiller, error)
	Create(ctx context.Context, c Conseiller) error
}

type PostgresConseillerRepository struct {
	db database.DB
}

func NewPostgresConseillerRepository(db database.DB) *PostgresConseillerRepository {
	return &PostgresConseillerRepository{db: db}
}

func (r *PostgresConseillerRepository) FindByEmail(ctx context.Context, email string) (Conseiller, error) {
	var c Conseiller
	row := r.db.QueryRow(ctx,
		`SELECT id, email, COALESCE(nom_complet, ''), password_hash, created_at
		 FROM conseillers WHERE email = $1`,
		email,
	)
	if err := row.Scan(&c.ID, &c.Email, &c.NomComplet, &c.PasswordHash, &c.CreatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Conseiller{}, ErrConseillerNotFound
		}
		return Conseiller{}, err
	}
	return c, nil
}

func (r *PostgresConseillerRepository) Create(ctx context.Context, c Conseiller) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO conseillers (id, email, nom_complet, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, NOW())`,
		c.ID, c.Email, c.NomComplet, c.PasswordHash,
	)
	return err
}
