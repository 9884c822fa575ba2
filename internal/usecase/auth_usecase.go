package usecase

import (
	"context"
	"errors"
	"strings"

	"employabilite/internal/pkg/jwt"
	"employabilite/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnauthorized           = errors.New("unauthorized")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
	ErrRefreshTokenExpired    = errors.New("refresh token expired")
)

type RegisterInput struct {
	Email      string
	NomComplet string
	Password   string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (repository.Conseiller, string, string, error)
	Login(ctx context.Context, in LoginInput) (repository.Conseiller, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	conseillers repository.ConseillerRepository
	jwt         jwt.Service
}

func NewAuthUsecase(conseillers repository.ConseillerRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{conseillers: conseillers, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (repository.Conseiller, string, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || len(in.Password) < 8 {
		return repository.Conseiller{}, "", "", ErrInvalidInput
	}

	if _, err := u.conseillers.FindByEmail(ctx, email); err == nil {
		return repository.Conseiller{}, "", "", ErrEmailAlreadyRegistered
	} else if !errors.Is(err, repository.ErrConseillerNotFound) {
		return repository.Conseiller{}, "", "", ErrInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return repository.Conseiller{}, "", "", ErrInternal
	}

	c := repository.Conseiller{
		ID:           uuid.New(),
		Email:        email,
		NomComplet:   strings.TrimSpace(in.NomComplet),
		PasswordHash: string(hash),
	}
	if err := u.conseillers.Create(ctx, c); err != nil {
		return repository.Conseiller{}, "", "", ErrInternal
	}

	return u.withTokens(c)
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (repository.Conseiller, string, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return repository.Conseiller{}, "", "", ErrInvalidCredentials
	}

	c, err := u.conseillers.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrConseillerNotFound) {
			return repository.Conseiller{}, "", "", ErrInvalidCredentials
		}
		return repository.Conseiller{}, "", "", ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(in.Password)) != nil {
		return repository.Conseiller{}, "", "", ErrInvalidCredentials
	}

	return u.withTokens(c)
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	access, err := u.jwt.GenerateAccessToken(claims.ConseillerID, claims.Email)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(claims.ConseillerID)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}

func (u *Auth) withTokens(c repository.Conseiller) (repository.Conseiller, string, string, error) {
	access, err := u.jwt.GenerateAccessToken(c.ID, c.Email)
	if err != nil {
		return repository.Conseiller{}, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(c.ID)
	if err != nil {
		return repository.Conseiller{}, "", "", ErrInternal
	}
	return c, access, refresh, nil
}

func normalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return ""
	}
	return email
}
