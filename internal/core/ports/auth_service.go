package ports

import (
	"context"

	"github.com/yng-express/parcel-admin/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
