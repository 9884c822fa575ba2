package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"employabilite/internal/pkg/jwt"
	"employabilite/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type mockConseillerRepo struct {
	byEmail map[string]repository.Conseiller
	created []repository.Conseiller
	err     error
}

func newMockConseillerRepo() *mockConseillerRepo {
	return &mockConseillerRepo{byEmail: map[string]repository.Conseiller{}}
}

func (m *mockConseillerRepo) FindByEmail(_ context.Context, email string) (repository.Conseiller, error) {
	if m.err != nil {
		return repository.Conseiller{}, m.err
	}
	c, ok := m.byEmail[email]
	if !ok {
		return repository.Conseiller{}, repository.ErrConseillerNotFound
	}
	return c, nil
}

func (m *mockConseillerRepo) Create(_ context.Context, c repository.Conseiller) error {
	if m.err != nil {
		return m.err
	}
	m.byEmail[c.Email] = c
	m.created = append(m.created, c)
	return nil
}

func testJWT() jwt.Service {
	return jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestAuth_RegisterThenLogin(t *testing.T) {
	repo := newMockConseillerRepo()
	uc := NewAuthUsecase(repo, testJWT())

	_, access, refresh, err := uc.Register(context.Background(), RegisterInput{
		Email:      "Conseiller@Anem.dz",
		NomComplet: "A. Benali",
		Password:   "motdepasse",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected both tokens")
	}
	if len(repo.created) != 1 || repo.created[0].Email != "conseiller@anem.dz" {
		t.Fatalf("email not normalised: %+v", repo.created)
	}

	c, _, _, err := uc.Login(context.Background(), LoginInput{Email: "conseiller@anem.dz", Password: "motdepasse"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if c.NomComplet != "A. Benali" {
		t.Fatalf("nom = %q", c.NomComplet)
	}
}

func TestAuth_RegisterShortPassword(t *testing.T) {
	uc := NewAuthUsecase(newMockConseillerRepo(), testJWT())

	_, _, _, err := uc.Register(context.Background(), RegisterInput{Email: "a@b.dz", Password: "court"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuth_RegisterDuplicateEmail(t *testing.T) {
	repo := newMockConseillerRepo()
	repo.byEmail["a@b.dz"] = repository.Conseiller{Email: "a@b.dz"}

	uc := NewAuthUsecase(repo, testJWT())

	_, _, _, err := uc.Register(context.Background(), RegisterInput{Email: "a@b.dz", Password: "motdepasse"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestAuth_LoginWrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("motdepasse"), bcrypt.MinCost)
	repo := newMockConseillerRepo()
	repo.byEmail["a@b.dz"] = repository.Conseiller{Email: "a@b.dz", PasswordHash: string(hash)}

	uc := NewAuthUsecase(repo, testJWT())

	_, _, _, err := uc.Login(context.Background(), LoginInput{Email: "a@b.dz", Password: "autre"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuth_LoginUnknownEmail(t *testing.T) {
	uc := NewAuthUsecase(newMockConseillerRepo(), testJWT())

	_, _, _, err := uc.Login(context.Background(), LoginInput{Email: "nobody@b.dz", Password: "motdepasse"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuth_RefreshRejectsAccessToken(t *testing.T) {
	repo := newMockConseillerRepo()
	uc := NewAuthUsecase(repo, testJWT())

	_, access, _, err := uc.Register(context.Background(), RegisterInput{Email: "a@b.dz", Password: "motdepasse"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err = uc.Refresh(context.Background(), access)
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuth_RefreshRotatesTokens(t *testing.T) {
	repo := newMockConseillerRepo()
	uc := NewAuthUsecase(repo, testJWT())

	_, _, refresh, err := uc.Register(context.Background(), RegisterInput{Email: "a@b.dz", Password: "motdepasse"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	access, newRefresh, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if access == "" || newRefresh == "" {
		t.Fatalf("expected a fresh token pair")
	}
}
