package usecase

import (
	"context"

	"employabilite/internal/repository"
)

// Referentiel types served by the lookup endpoint.
const (
	ReferentielNiveauxDiplome = "niveau_diplome"
	ReferentielNiveauxLangue  = "niveau_langue"
	ReferentielSoftSkills     = "soft_skill"
	ReferentielCSP            = "csp"
)

var referentielTypes = map[string]bool{
	ReferentielNiveauxDiplome: true,
	ReferentielNiveauxLangue:  true,
	ReferentielSoftSkills:     true,
	ReferentielCSP:            true,
}

type ReferentielUsecase interface {
	ListByType(ctx context.Context, typ string) ([]repository.Referentiel, error)
}

type Referentiels struct {
	refs repository.ReferentielRepository
}

func NewReferentielUsecase(refs repository.ReferentielRepository) *Referentiels {
	return &Referentiels{refs: refs}
}

func (u *Referentiels) ListByType(ctx context.Context, typ string) ([]repository.Referentiel, error) {
	if !referentielTypes[typ] {
		return nil, ErrInvalidInput
	}
	out, err := u.refs.ListByType(ctx, typ)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}
