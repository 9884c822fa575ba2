package seeder

import (
	"context"
	"encoding/json"
	"fmt"

	"employabilite/internal/database"
	"employabilite/internal/domain/profil"
)

// DemoDataSeeder loads a handful of profils, offres and placements so the
// scoring and recommendation endpoints answer something on a fresh install.
// It runs only when the profils table is empty.
type DemoDataSeeder struct{}

func (DemoDataSeeder) Name() string { return "demo_data" }

func (DemoDataSeeder) Run(ctx context.Context, db database.DB) error {
	var n int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM profils`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, p := range demoProfils() {
		diplomes, err := json.Marshal(p.Diplomes)
		if err != nil {
			return err
		}
		experiences, err := json.Marshal(p.Experiences)
		if err != nil {
			return err
		}
		competences, err := json.Marshal(p.Competences)
		if err != nil {
			return err
		}
		softSkills, err := json.Marshal(p.SoftSkills)
		if err != nil {
			return err
		}
		langues, err := json.Marshal(p.Langues)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO profils (
				id_demandeur, nom_complet, wilaya, csp,
				diplomes, experiences, competences_techniques, soft_skills, langues
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id_demandeur) DO NOTHING`,
			p.IDDemandeur, p.NomComplet, p.Wilaya, p.CSP,
			diplomes, experiences, competences, softSkills, langues,
		)
		if err != nil {
			return fmt.Errorf("profil %s: %w", p.IDDemandeur, err)
		}
	}

	offres := []struct {
		ID, Titre, CSP, Secteur, Wilaya string
	}{
		{"OFF-2024-0001", "Chef de projet informatique", "Management", "Informatique", "Alger"},
		{"OFF-2024-0002", "Ingénieur d'études", "Personnel professionnel", "Informatique", "Alger"},
		{"OFF-2024-0003", "Développeur full-stack", "Personnel professionnel", "Informatique", "Oran"},
		{"OFF-2024-0004", "Assistant administratif", "Encadrement de support", "Administration", "Constantine"},
		{"OFF-2024-0005", "Agent d'entretien", "Personnel d'aide", "Services", "Alger"},
	}
	for _, o := range offres {
		_, err := tx.Exec(ctx,
			`INSERT INTO offres (id_offre, titre, csp, secteur, wilaya, statut, source)
			 VALUES ($1, $2, $3, $4, $5, 'Ouverte', 'seed')
			 ON CONFLICT (id_offre) DO NOTHING`,
			o.ID, o.Titre, o.CSP, o.Secteur, o.Wilaya,
		)
		if err != nil {
			return fmt.Errorf("offre %s: %w", o.ID, err)
		}
	}

	placements := []struct {
		ID, IDDemandeur, CSP, Wilaya string
		DureeAttenteJours            int
	}{
		{"PLC-2023-0001", "DEM-0001", "Personnel professionnel", "Alger", 95},
		{"PLC-2023-0002", "DEM-0002", "Personnel professionnel", "Oran", 140},
		{"PLC-2023-0003", "DEM-0004", "Management", "Alger", 210},
	}
	for _, pl := range placements {
		_, err := tx.Exec(ctx,
			`INSERT INTO placements (id_placement, id_demandeur, csp, wilaya, duree_attente_jours)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (id_placement) DO NOTHING`,
			pl.ID, pl.IDDemandeur, pl.CSP, pl.Wilaya, pl.DureeAttenteJours,
		)
		if err != nil {
			return fmt.Errorf("placement %s: %w", pl.ID, err)
		}
	}

	return tx.Commit(ctx)
}

func demoProfils() []profil.Profil {
	return []profil.Profil{
		{
			IDDemandeur: "DEM-0001",
			NomComplet:  "Amina Bensalem",
			Wilaya:      "Alger",
			CSP:         "Personnel professionnel",
			Diplomes: []profil.Diplome{
				{Niveau: "Diplôme Bac +5", Domaine: "Informatique", AnneeObtention: 2019},
			},
			Experiences: []profil.Experience{
				{Poste: "Développeuse web", Entreprise: "SARL Numidia Soft", DureeMois: 36},
			},
			Competences: []profil.CompetenceTechnique{
				{Nom: "Développement web", Etoiles: 4},
				{Nom: "Bases de données", Etoiles: 3},
			},
			SoftSkills: []string{"Communication", "Travail en équipe"},
			Langues: []profil.Langue{
				{Langue: "Arabe", Niveau: "Natif"},
				{Langue: "Français", Niveau: "Courant"},
			},
		},
		{
			IDDemandeur: "DEM-0002",
			NomComplet:  "Karim Haddad",
			Wilaya:      "Oran",
			CSP:         "Personnel professionnel",
			Diplomes: []profil.Diplome{
				{Niveau: "Diplôme BAC +3", Domaine: "Électronique", AnneeObtention: 2020},
			},
			Experiences: []profil.Experience{
				{Poste: "Technicien supérieur", Entreprise: "Sonelgaz", DureeMois: 24},
			},
			Competences: []profil.CompetenceTechnique{
				{Nom: "Maintenance industrielle", Etoiles: 3},
			},
			SoftSkills: []string{"Adaptabilité"},
			Langues: []profil.Langue{
				{Langue: "Arabe", Niveau: "Natif"},
			},
		},
		{
			IDDemandeur: "DEM-0003",
			NomComplet:  "Yacine Merabet",
			Wilaya:      "Constantine",
			CSP:         "Encadrement de support",
			Diplomes: []profil.Diplome{
				{Niveau: "Diplôme FP NIVEAU 3", Domaine: "Comptabilité", AnneeObtention: 2021},
			},
			Experiences: []profil.Experience{
				{Poste: "Aide-comptable", DureeMois: 12},
			},
			SoftSkills: []string{"Gestion du temps"},
			Langues: []profil.Langue{
				{Langue: "Arabe", Niveau: "Natif"},
				{Langue: "Français", Niveau: "Intermédiaire"},
			},
		},
		{
			IDDemandeur: "DEM-0004",
			NomComplet:  "Salima Cherif",
			Wilaya:      "Alger",
			CSP:         "Management",
			Diplomes: []profil.Diplome{
				{Niveau: "Diplôme Bac +5", Domaine: "Gestion", AnneeObtention: 2015},
				{Niveau: "Diplôme BAC +3", Domaine: "Commerce", AnneeObtention: 2013},
			},
			Experiences: []profil.Experience{
				{Poste: "Responsable d'agence", Entreprise: "BNA", DureeMois: 60},
				{Poste: "Chargée de clientèle", Entreprise: "BNA", DureeMois: 36},
			},
			Competences: []profil.CompetenceTechnique{
				{Nom: "Gestion d'équipe", Etoiles: 5},
				{Nom: "Pilotage budgétaire", Etoiles: 4},
			},
			SoftSkills: []string{"Leadership", "Communication", "Résolution de problèmes"},
			Langues: []profil.Langue{
				{Langue: "Arabe", Niveau: "Natif"},
				{Langue: "Français", Niveau: "Courant"},
				{Langue: "Anglais", Niveau: "Intermédiaire"},
			},
		},
		{
			IDDemandeur: "DEM-0005",
			NomComplet:  "Rachid Boukhalfa",
			Wilaya:      "Alger",
			CSP:         "Personnel d'aide",
			Diplomes: []profil.Diplome{
				{Niveau: "Sans diplôme"},
			},
			Experiences: []profil.Experience{
				{Poste: "Agent polyvalent", DureeMois: 18},
			},
			SoftSkills: []string{"Travail en équipe"},
			Langues: []profil.Langue{
				{Langue: "Arabe", Niveau: "Natif"},
			},
		},
	}
}
