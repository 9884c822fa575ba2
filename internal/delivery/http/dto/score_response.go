package dto

type ScoreResponse struct {
	IDDemandeur string `json:"id_demandeur"`
	CSP         string `json:"csp"`

	SavoirNorm      float64 `json:"savoir_norm"`
	SavoirFaireNorm float64 `json:"savoir_faire_norm"`
	SavoirEtreNorm  float64 `json:"savoir_etre_norm"`
	ResourcesScore  float64 `json:"resources_score"`

	TensionScore float64  `json:"tension_score"`
	DureeScore   float64  `json:"duree_score"`
	MarketScore  float64  `json:"market_score"`
	DemandCount  int64    `json:"nombre_demandeurs"`
	OpenOffers   int64    `json:"offres_ouvertes"`
	AvgWaitDays  *float64 `json:"duree_attente_moyenne_jours,omitempty"`

	FullTE         float64 `json:"full_te"`
	Classification string  `json:"classification"`
	Enregistre     bool    `json:"enregistre"`
}

type TopProfilResponse struct {
	IDDemandeur    string  `json:"id_demandeur"`
	NomComplet     string  `json:"nom_complet,omitempty"`
	CSP            string  `json:"csp"`
	FullTE         float64 `json:"full_te"`
	Classification string  `json:"classification"`
}
