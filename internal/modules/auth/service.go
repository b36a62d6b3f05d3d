package auth

import (
	"context"
	"errors"
	"strings"

	"skinclinic/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	profiles ProfileStore
	jwt      tokenIssuer
}

func NewService(profiles ProfileStore, jwt tokenIssuer) *Service {
	return &Service{profiles: profiles, jwt: jwt}
}

// Register creates a customer profile. Admin accounts are provisioned by the
// seeder, never through this endpoint.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.profiles.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Phone:        strings.TrimSpace(req.Phone),
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return s.issueToken(profile)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	profile, err := s.profiles.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(profile)
}

func (s *Service) CurrentProfile(ctx context.Context, userID int64) (*ProfilePublic, error) {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	pub := toPublic(profile)
	return &pub, nil
}

func (s *Service) issueToken(profile *domain.Profile) (*AuthResponse, error) {
	token, err := s.jwt.GenerateToken(profile.ID, string(profile.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, Profile: toPublic(profile)}, nil
}

func toPublic(p *domain.Profile) ProfilePublic {
	return ProfilePublic{
		ID:        p.ID,
		Email:     p.Email,
		Role:      string(p.Role),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
	}
}

// isUniqueViolation catches the race where two registrations hit the email
// unique index at once. Postgres reports 23505; the sqlite fallback driver
// reports a plain-text error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
