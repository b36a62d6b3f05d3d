package auth

import (
	"context"

	"skinclinic/internal/domain"
)

// ProfileStore is the slice of the profile repository the auth flow needs.
type ProfileStore interface {
	Create(ctx context.Context, p *domain.Profile) error
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
}

type tokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}
