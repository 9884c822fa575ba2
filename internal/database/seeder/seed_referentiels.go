package seeder

import (
	"context"
	"fmt"

	"employabilite/internal/database"

	"github.com/google/uuid"
)

// ReferentielsSeeder loads the controlled vocabularies: diploma levels in
// their ordinal order, language levels, the common soft skills and the four
// socio-professional categories.
type ReferentielsSeeder struct{}

func (ReferentielsSeeder) Name() string { return "referentiels" }

func (ReferentielsSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Type    string
		Code    string
		Libelle string
		Ordre   int
	}{
		{"niveau_diplome", "sans_diplome", "Sans diplôme", 0},
		{"niveau_diplome", "fp_niveau_1", "Diplôme FP NIVEAU 1", 1},
		{"niveau_diplome", "fp_niveau_2", "Diplôme FP NIVEAU 2", 2},
		{"niveau_diplome", "fp_niveau_3", "Diplôme FP NIVEAU 3", 3},
		{"niveau_diplome", "bac_3", "Diplôme BAC +3", 4},
		{"niveau_diplome", "bac_5", "Diplôme Bac +5", 5},
		{"niveau_diplome", "bac_7_plus", "Diplôme Bac +7 et plus", 6},

		{"niveau_langue", "elementaire", "Élémentaire", 0},
		{"niveau_langue", "intermediaire", "Intermédiaire", 1},
		{"niveau_langue", "courant", "Courant", 2},
		{"niveau_langue", "natif", "Natif", 3},

		{"soft_skill", "communication", "Communication", 0},
		{"soft_skill", "travail_equipe", "Travail en équipe", 1},
		{"soft_skill", "leadership", "Leadership", 2},
		{"soft_skill", "adaptabilite", "Adaptabilité", 3},
		{"soft_skill", "resolution_problemes", "Résolution de problèmes", 4},
		{"soft_skill", "gestion_temps", "Gestion du temps", 5},

		{"csp", "management", "Management", 0},
		{"csp", "personnel_professionnel", "Personnel professionnel", 1},
		{"csp", "encadrement_support", "Encadrement de support", 2},
		{"csp", "personnel_aide", "Personnel d'aide", 3},
	}

	for _, it := range items {
		_, err := tx.Exec(ctx,
			`INSERT INTO referentiels (id, type, code, libelle, ordre)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (type, code) DO UPDATE SET
				libelle = EXCLUDED.libelle,
				ordre = EXCLUDED.ordre`,
			uuid.New(), it.Type, it.Code, it.Libelle, it.Ordre,
		)
		if err != nil {
			return fmt.Errorf("referentiel %s/%s: %w", it.Type, it.Code, err)
		}
	}

	return tx.Commit(ctx)
}
