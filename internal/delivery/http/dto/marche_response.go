package dto

type MarcheResponse struct {
	CSP          string   `json:"csp"`
	TensionScore float64  `json:"tension_score"`
	DureeScore   float64  `json:"duree_score"`
	MarketScore  float64  `json:"market_score"`
	DemandCount  int64    `json:"nombre_demandeurs"`
	OpenOffers   int64    `json:"offres_ouvertes"`
	AvgWaitDays  *float64 `json:"duree_attente_moyenne_jours,omitempty"`
}

type PonderationResponse struct {
	CSP            string  `json:"csp"`
	Savoir         float64 `json:"savoir"`
	SavoirFaire    float64 `json:"savoir_faire"`
	SavoirEtre     float64 `json:"savoir_etre"`
	Source         string  `json:"source"`
	PlacementCount int     `json:"nombre_placements"`
}

type BatchResponse struct {
	Total    int    `json:"total"`
	Scores   int    `json:"scores"`
	Echecs   int    `json:"echecs"`
	DureeMs  int64  `json:"duree_ms"`
	DemarreA string `json:"demarre_a"`
}

type ReferentielResponse struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Libelle string `json:"libelle"`
	Ordre   int    `json:"ordre"`
}
