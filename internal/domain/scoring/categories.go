package scoring

// The four socio-professional categories (CSP) recognised by the scoring
// model. Every weight table below is keyed by exactly this set.
const (
	CSPManagement             = "Management"
	CSPPersonnelProfessionnel = "Personnel professionnel"
	CSPEncadrementSupport     = "Encadrement de support"
	CSPPersonnelAide          = "Personnel d'aide"
)

var cspCategories = []string{
	CSPManagement,
	CSPPersonnelProfessionnel,
	CSPEncadrementSupport,
	CSPPersonnelAide,
}

// Categories returns the fixed CSP set in declaration order.
func Categories() []string {
	out := make([]string, len(cspCategories))
	copy(out, cspCategories)
	return out
}

// ValidCSP reports whether csp belongs to the fixed 4-set.
func ValidCSP(csp string) bool {
	for _, c := range cspCategories {
		if c == csp {
			return true
		}
	}
	return false
}
