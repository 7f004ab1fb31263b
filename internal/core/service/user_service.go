package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/quicktaste/ordering-api/internal/core/authz"
	"github.com/quicktaste/ordering-api/internal/core/domain"
	"github.com/quicktaste/ordering-api/internal/core/ports"
)

// UserService implements profile and account management.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) Profile(ctx context.Context, caller domain.Identity) (*domain.User, error) {
	return s.users.FindByUsername(ctx, caller.Subject)
}

func (s *UserService) List(ctx context.Context, caller domain.Identity) ([]*domain.User, error) {
	if !authz.CanListUsers(caller) {
		return nil, domain.ErrForbidden
	}
	return s.users.FindAll(ctx)
}

func (s *UserService) GetByUsername(ctx context.Context, caller domain.Identity, username string) (*domain.User, error) {
	if !authz.IsOwnerOrAdmin(caller, username) {
		return nil, domain.ErrForbidden
	}
	return s.users.FindByUsername(ctx, username)
}

// Update replaces the mutable fields of an account. The username is the
// primary key and cannot change; a blank password keeps the stored hash;
// the wallet is untouched.
func (s *UserService) Update(ctx context.Context, caller domain.Identity, username string, input ports.UpdateUserInput) (*domain.User, error) {
	if !authz.IsOwnerOrAdmin(caller, username) {
		return nil, domain.ErrForbidden
	}
	if username != input.Username {
		return nil, domain.ErrImmutableKey
	}

	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	hash := existing.PasswordHash
	if input.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(h)
	}

	roles := input.Roles
	if roles == "" {
		roles = existing.Roles
	}

	updated := &domain.User{
		Email:        input.Email,
		Username:     username,
		Roles:        roles,
		Image:        input.Image,
		PasswordHash: hash,
		Wallet:       existing.Wallet,
	}

	saved, err := s.users.Save(ctx, updated)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Str("by", caller.Subject).Msg("user updated")
	return saved, nil
}

func (s *UserService) Delete(ctx context.Context, caller domain.Identity, username string) error {
	if !authz.IsOwnerOrAdmin(caller, username) {
		return domain.ErrForbidden
	}
	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrUserNotFound
	}
	if err := s.users.DeleteByUsername(ctx, username); err != nil {
		return err
	}
	s.logger.Info().Str("username", username).Str("by", caller.Subject).Msg("user deleted")
	return nil
}

func (s *UserService) UpdateWallet(ctx context.Context, caller domain.Identity, username string, wallet int) (*domain.User, error) {
	if !authz.IsOwnerOrAdmin(caller, username) {
		return nil, domain.ErrForbidden
	}
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	user.Wallet = wallet
	return s.users.Save(ctx, user)
}
