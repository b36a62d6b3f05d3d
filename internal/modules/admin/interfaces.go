package admin

import (
	"context"

	"skinclinic/internal/domain"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
	Delete(ctx context.Context, id int64) error
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}

type OrderCounter interface {
	CountAll(ctx context.Context) (int64, error)
}

type ServiceCounter interface {
	CountActive(ctx context.Context) (int64, error)
}

type CategoryCounter interface {
	CountActive(ctx context.Context) (int64, error)
}
