package ports

import (
	"context"

	"github.com/quicktaste/ordering-api/internal/core/domain"
)

// RegisterInput carries an open-registration request.
type RegisterInput struct {
	Username       string
	Email          string
	Password       string
	PasswordRepeat string
	Roles          string // comma-joined; defaults to USER when empty
	Image          string
}

// TokenIssuer mints a bearer token for an authenticated identity.
type TokenIssuer interface {
	Issue(id domain.Identity) (string, error)
}

// TokenValidator verifies a raw bearer token and returns the identity it
// carries.
type TokenValidator interface {
	Validate(raw string) (domain.Identity, error)
}

// AuthService covers registration and credential verification.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies the username/password pair and returns a signed token
	// together with the user record. Unknown usernames and wrong passwords
	// are indistinguishable to the caller.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
