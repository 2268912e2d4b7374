package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"moviecatalog/internal/domain"
	"moviecatalog/internal/repository"
)

// Service contains all business logic for signup and signin.
type Service struct {
	users  UserRepositoryInterface
	roles  RoleRepositoryInterface
	jwt    TokenService
	hasher PasswordHasher
}

func NewService(users UserRepositoryInterface, roles RoleRepositoryInterface, jwt TokenService, hasher PasswordHasher) *Service {
	return &Service{users: users, roles: roles, jwt: jwt, hasher: hasher}
}

// SignUp registers a new user. Username and email are normalized to
// lowercase and must be unique. Requested role names are resolved against
// the seeded role set; with none requested the user gets the USER role.
func (s *Service) SignUp(ctx context.Context, req SignupRequest) (*domain.User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	taken, err = s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	roles, err := s.resolveRoles(ctx, req.Roles)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Roles:        roles,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// SignIn checks credentials and issues a token. A missing user and a wrong
// password are indistinguishable to the caller.
func (s *Service) SignIn(ctx context.Context, req SigninRequest) (*SigninResult, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	// Expiry is read back from the verified token rather than recomputed.
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	return &SigninResult{
		Token:     token,
		Username:  user.Username,
		Roles:     user.RoleNames(),
		ExpiresAt: claims.ExpiresAt.UnixMilli(),
	}, nil
}

// GetUser returns a user by id, without the password hash.
func (s *Service) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) resolveRoles(ctx context.Context, requested []string) ([]domain.Role, error) {
	if len(requested) == 0 {
		role, err := s.roles.GetByName(ctx, domain.RoleUser)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrDefaultRoleMissing
			}
			return nil, err
		}
		return []domain.Role{*role}, nil
	}

	seen := make(map[domain.RoleName]bool, len(requested))
	roles := make([]domain.Role, 0, len(requested))
	for _, raw := range requested {
		name := domain.RoleName(strings.ToUpper(strings.TrimSpace(raw)))
		if seen[name] {
			continue
		}
		seen[name] = true

		if !domain.KnownRole(name) {
			return nil, fmt.Errorf("%w: %s", ErrRoleNotFound, raw)
		}

		role, err := s.roles.GetByName(ctx, name)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrRoleNotFound, raw)
			}
			return nil, err
		}
		roles = append(roles, *role)
	}

	return roles, nil
}
