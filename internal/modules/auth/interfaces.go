package auth

import (
	"context"

	"moviecatalog/internal/domain"
	jwtsvc "moviecatalog/internal/pkg/jwt"
)

type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type RoleRepositoryInterface interface {
	GetByName(ctx context.Context, name domain.RoleName) (*domain.Role, error)
}

type TokenService interface {
	GenerateToken(u *domain.User) (string, error)
	ValidateToken(tokenStr string) (*jwtsvc.Claims, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}
