package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blanklearn/marketplace-backend/internal/config"
	"github.com/blanklearn/marketplace-backend/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type memoryAdmins struct {
	byEmail map[string]*model.Admin
	nextID  int
}

func (m *memoryAdmins) GetByID(_ context.Context, id int) (*model.Admin, error) {
	for _, a := range m.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memoryAdmins) GetByEmail(_ context.Context, email string) (*model.Admin, error) {
	if a, ok := m.byEmail[email]; ok {
		return a, nil
	}
	return nil, pgx.ErrNoRows
}

func (m *memoryAdmins) Create(_ context.Context, a *model.Admin) error {
	m.nextID++
	a.ID = m.nextID
	a.CreatedAt = time.Now()
	m.byEmail[a.Email] = a
	return nil
}

func testAuthConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour, BcryptCost: bcrypt.MinCost}
}

func TestAdminLogin(t *testing.T) {
	auth := NewAuthService(testAuthConfig())
	svc := NewAdminService(&memoryAdmins{byEmail: map[string]*model.Admin{}}, auth)
	ctx := context.Background()

	created, err := svc.Create(ctx, " Ops ", "Ops@Example.com ", "hunter22")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Email != "ops@example.com" || created.Name != "Ops" {
		t.Errorf("unexpected admin %+v", created)
	}

	resp, err := svc.Login(ctx, "OPS@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, err := auth.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.TokenType != TokenTypeAdmin || claims.UserID != created.ID {
		t.Errorf("unexpected claims %+v", claims)
	}

	if _, err := svc.Login(ctx, "ops@example.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, "ghost@example.com", "hunter22"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.GetByID(ctx, 999); !errors.Is(err, ErrAdminNotFound) {
		t.Errorf("expected ErrAdminNotFound, got %v", err)
	}
}

func TestValidateTokenRejects(t *testing.T) {
	auth := NewAuthService(testAuthConfig())

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
		TokenType:        TokenTypeAdmin,
		UserID:           1,
	})
	signed, _ := expired.SignedString([]byte("test-secret"))
	if _, err := auth.ValidateToken(signed); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}

	other := NewAuthService(&config.Config{JWTSecret: "other-secret", JWTExpiry: time.Hour})
	foreign, _ := other.GenerateAdminToken(1)
	if _, err := auth.ValidateToken(foreign); err == nil {
		t.Error("token signed with another secret must be rejected")
	}
	if _, err := auth.ValidateToken("garbage"); err == nil {
		t.Error("garbage token must be rejected")
	}
}
