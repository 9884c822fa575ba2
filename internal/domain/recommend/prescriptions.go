package recommend

import (
	"fmt"
	"strings"

	"employabilite/internal/domain/vectorize"
)

// MessageNoMajorGap is returned as the sole recommendation when no gap
// survives filtering: the profile is already close to its optimal peers.
// A recommendation list is never silently empty.
const MessageNoMajorGap = "Aucune recommandation majeure — profil déjà proche des optimaux"

// Prescriptions maps each gap feature to a French prescriptive message keyed
// by its namespace prefix. Gaps outside the five known namespaces are
// skipped; when nothing survives, the fallback message is returned alone.
func Prescriptions(gaps []Gap) []string {
	out := make([]string, 0, len(gaps))
	for _, g := range gaps {
		switch {
		case strings.HasPrefix(g.Feature, vectorize.PrefixDiplome):
			niveau := vectorize.HumanizeToken(strings.TrimPrefix(g.Feature, vectorize.PrefixDiplome))
			out = append(out, fmt.Sprintf("Obtenir un diplôme %s", niveau))

		case strings.HasPrefix(g.Feature, vectorize.PrefixCompetence):
			nom := vectorize.HumanizeToken(strings.TrimPrefix(g.Feature, vectorize.PrefixCompetence))
			out = append(out, fmt.Sprintf("Améliorer la compétence %s (niveau actuel faible)", nom))

		case strings.HasPrefix(g.Feature, vectorize.PrefixSoftSkill):
			soft := vectorize.HumanizeToken(strings.TrimPrefix(g.Feature, vectorize.PrefixSoftSkill))
			out = append(out, fmt.Sprintf("Développer la compétence comportementale %s", soft))

		case g.Feature == vectorize.KeyExperience:
			out = append(out, "Gagner plus d'expérience professionnelle")

		case strings.HasPrefix(g.Feature, vectorize.PrefixLangue):
			langue := vectorize.HumanizeToken(strings.TrimPrefix(g.Feature, vectorize.PrefixLangue))
			out = append(out, fmt.Sprintf("Améliorer le niveau en %s", langue))
		}
	}

	if len(out) == 0 {
		return []string{MessageNoMajorGap}
	}
	return out
}
