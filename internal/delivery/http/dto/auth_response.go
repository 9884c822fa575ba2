package dto

type RegisterRequest struct {
	Email      string `json:"email"`
	NomComplet string `json:"nom_complet"`
	Password   string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ConseillerResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	NomComplet string `json:"nom_complet,omitempty"`
}

type AuthResponse struct {
	Conseiller   ConseillerResponse `json:"conseiller"`
	AccessToken  string             `json:"access_token"`
	RefreshToken string             `json:"refresh_token"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
