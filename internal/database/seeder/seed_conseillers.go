package seeder

import (
	"context"

	"employabilite/internal/database"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultConseillerEmail = "admin@emploi.dz"
	// Changed on first login in any real deployment.
	defaultConseillerPassword = "changeme-admin"
)

// ConseillersSeeder creates the bootstrap conseiller account when no account
// with the default email exists yet.
type ConseillersSeeder struct{}

func (ConseillersSeeder) Name() string { return "conseillers" }

func (ConseillersSeeder) Run(ctx context.Context, db database.DB) error {
	var exists bool
	row := db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM conseillers WHERE email = $1)`,
		defaultConseillerEmail,
	)
	if err := row.Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultConseillerPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx,
		`INSERT INTO conseillers (id, email, nom_complet, password_hash)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (email) DO NOTHING`,
		uuid.New(), defaultConseillerEmail, "Administrateur", string(hash),
	)
	return err
}
