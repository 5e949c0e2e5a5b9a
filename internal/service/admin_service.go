package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blanklearn/marketplace-backend/internal/model"
	"github.com/jackc/pgx/v5"
)

// ErrAdminNotFound is returned when no admin matches.
var ErrAdminNotFound = errors.New("admin not found")

// adminStore is implemented by repository.AdminRepository.
type adminStore interface {
	GetByID(ctx context.Context, id int) (*model.Admin, error)
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
	Create(ctx context.Context, a *model.Admin) error
}

// AdminService handles admin accounts and login.
type AdminService struct {
	admins adminStore
	auth   *AuthService
}

// NewAdminService creates a new AdminService.
func NewAdminService(admins adminStore, auth *AuthService) *AdminService {
	return &AdminService{admins: admins, auth: auth}
}

// Login checks the credentials and issues an admin token. Unknown emails and
// wrong passwords both yield ErrInvalidCredentials.
func (s *AdminService) Login(ctx context.Context, email, password string) (*model.AdminLoginResponse, error) {
	admin, err := s.admins.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}

	if err := s.auth.CheckPassword(admin.PasswordHash, password); err != nil {
		return nil, err
	}

	token, err := s.auth.GenerateAdminToken(admin.ID)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &model.AdminLoginResponse{Token: token, Admin: *admin}, nil
}

// GetByID retrieves an admin by ID.
func (s *AdminService) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	admin, err := s.admins.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	return admin, err
}

// Create hashes the password and stores a new admin.
func (s *AdminService) Create(ctx context.Context, name, email, password string) (*model.Admin, error) {
	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	admin := &model.Admin{Name: strings.TrimSpace(name), Email: normalizeEmail(email), PasswordHash: hash}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
