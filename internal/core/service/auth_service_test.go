package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/quicktaste/ordering-api/internal/core/domain"
	"github.com/quicktaste/ordering-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub user repository (shared across auth and user service tests)
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	r.users[user.Username] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) DeleteByUsername(_ context.Context, username string) error {
	delete(r.users, username)
	return nil
}

// stubIssuer records the identity it signed and returns a fixed token.
type stubIssuer struct {
	last domain.Identity
}

func (s *stubIssuer) Issue(id domain.Identity) (string, error) {
	s.last = id
	return "signed-token", nil
}

func registerInput(username string) ports.RegisterInput {
	return ports.RegisterInput{
		Username:       username,
		Email:          username + "@example.com",
		Password:       "s3cret",
		PasswordRepeat: "s3cret",
	}
}

func TestAuthRegister_Success(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), &stubIssuer{}, zerolog.Nop())

	user, err := svc.Register(context.Background(), registerInput("alice"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.PasswordHash == "s3cret" {
		t.Fatalf("password stored in the clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Roles != domain.RoleUser {
		t.Fatalf("roles = %q, want default USER", user.Roles)
	}
	if user.Wallet != 0 {
		t.Fatalf("wallet = %d, want 0", user.Wallet)
	}
}

func TestAuthRegister_PasswordMismatch(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), &stubIssuer{}, zerolog.Nop())

	in := registerInput("alice")
	in.PasswordRepeat = "different"
	if _, err := svc.Register(context.Background(), in); err != domain.ErrPasswordMismatch {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestAuthRegister_Duplicate(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), &stubIssuer{}, zerolog.Nop())

	if _, err := svc.Register(context.Background(), registerInput("alice")); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), registerInput("alice")); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthRegister_MissingFields(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), &stubIssuer{}, zerolog.Nop())

	in := registerInput("alice")
	in.Password = ""
	in.PasswordRepeat = ""
	if _, err := svc.Register(context.Background(), in); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthLogin_Success(t *testing.T) {
	issuer := &stubIssuer{}
	svc := NewAuthService(newStubUserRepo(), issuer, zerolog.Nop())

	in := registerInput("carol")
	in.Roles = "USER,ADMIN"
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("register: %v", err)
	}

	tok, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if tok != "signed-token" {
		t.Fatalf("token = %q", tok)
	}
	if user.Username != "carol" {
		t.Fatalf("user = %+v", user)
	}
	if issuer.last.Subject != "carol" {
		t.Fatalf("issued subject = %q", issuer.last.Subject)
	}
	if !issuer.last.HasRole(domain.RoleAdmin) || !issuer.last.HasRole(domain.RoleUser) {
		t.Fatalf("issued roles = %v, want USER and ADMIN", issuer.last.Roles)
	}
}

// Unknown usernames and wrong passwords must be indistinguishable.
func TestAuthLogin_NoEnumeration(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), &stubIssuer{}, zerolog.Nop())

	if _, err := svc.Register(context.Background(), registerInput("dave")); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, badPass := svc.Login(context.Background(), "dave", "wrong")
	_, _, noUser := svc.Login(context.Background(), "ghost", "wrong")

	if badPass != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", badPass)
	}
	if noUser != domain.ErrInvalidCredentials {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", noUser)
	}
	if badPass != noUser {
		t.Fatalf("failure reasons differ: %v vs %v", badPass, noUser)
	}
}
