package dto

type VoisinResponse struct {
	IDDemandeur string  `json:"id_demandeur"`
	NomComplet  string  `json:"nom_complet,omitempty"`
	Similarite  float64 `json:"similarite"`
	FullTE      float64 `json:"full_te"`
}

type VoisinsResponse struct {
	IDDemandeur       string           `json:"id_demandeur"`
	CSP               string           `json:"csp"`
	FullTE            float64          `json:"full_te"`
	Voisins           []VoisinResponse `json:"voisins"`
	TaillePool        int              `json:"taille_pool"`
	SimilariteMoyenne float64          `json:"similarite_moyenne"`
}

type EcartResponse struct {
	Caracteristique string  `json:"caracteristique"`
	Intensite       float64 `json:"intensite"`
}

type RecommandationResponse struct {
	IDDemandeur   string           `json:"id_demandeur"`
	CSP           string           `json:"csp"`
	FullTE        float64          `json:"full_te"`
	Statut        string           `json:"statut"`
	Ecarts        []EcartResponse  `json:"ecarts"`
	Prescriptions []string         `json:"prescriptions"`
	Voisins       []VoisinResponse `json:"voisins,omitempty"`
}

// Terminal statuses of the recommendation endpoint. A terminal status comes
// with an empty prescription list.
const (
	StatutRecommandations = "recommandations"
	StatutDejaOptimal     = "deja_optimal"
	StatutAucunOptimal    = "aucun_profil_optimal"
)
