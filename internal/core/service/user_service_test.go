package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/quicktaste/ordering-api/internal/core/domain"
	"github.com/quicktaste/ordering-api/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, username, roles string) *domain.User {
	t.Helper()
	u := &domain.User{
		Email:        username + "@example.com",
		Username:     username,
		Roles:        roles,
		PasswordHash: "$2a$10$hash-" + username,
		Wallet:       10,
	}
	saved, err := repo.Save(context.Background(), u)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return saved
}

func TestUserList_AdminOnly(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seedUser(t, repo, "alice", domain.RoleUser)
	seedUser(t, repo, "bob", domain.RoleUser)

	if _, err := svc.List(context.Background(), aliceIdent); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	all, err := svc.List(context.Background(), adminIdent)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin sees %d users, want 2", len(all))
	}
}

func TestUserGet_OwnerOrAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seedUser(t, repo, "alice", domain.RoleUser)

	if _, err := svc.GetByUsername(context.Background(), aliceIdent, "alice"); err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if _, err := svc.GetByUsername(context.Background(), adminIdent, "alice"); err != nil {
		t.Fatalf("admin get: %v", err)
	}
	if _, err := svc.GetByUsername(context.Background(), bobIdent, "alice"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seedUser(t, repo, "alice", domain.RoleUser)

	u, err := svc.Profile(context.Background(), aliceIdent)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if u.Username != "alice" {
		t.Fatalf("profile returned %q", u.Username)
	}
}

func TestUserUpdate_Rules(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo, "alice", domain.RoleUser)

	// Username is immutable.
	in := ports.UpdateUserInput{Username: "renamed", Email: "a@example.com"}
	if _, err := svc.Update(context.Background(), aliceIdent, "alice", in); err != domain.ErrImmutableKey {
		t.Fatalf("expected ErrImmutableKey, got %v", err)
	}

	// Blank password keeps the stored hash; blank roles keep stored roles;
	// wallet is untouched.
	in = ports.UpdateUserInput{Username: "alice", Email: "new@example.com", Image: "pic.png"}
	updated, err := svc.Update(context.Background(), aliceIdent, "alice", in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PasswordHash != seeded.PasswordHash {
		t.Fatalf("blank password replaced the stored hash")
	}
	if updated.Roles != domain.RoleUser {
		t.Fatalf("roles = %q, want %q", updated.Roles, domain.RoleUser)
	}
	if updated.Wallet != 10 {
		t.Fatalf("wallet = %d, want untouched 10", updated.Wallet)
	}
	if updated.Email != "new@example.com" || updated.Image != "pic.png" {
		t.Fatalf("mutable fields not applied: %+v", updated)
	}

	// New password replaces the hash.
	in.Password = "newpass"
	updated, err = svc.Update(context.Background(), aliceIdent, "alice", in)
	if err != nil {
		t.Fatalf("update with password: %v", err)
	}
	if updated.PasswordHash == seeded.PasswordHash {
		t.Fatalf("password hash not replaced")
	}

	// Third parties are rejected.
	if _, err := svc.Update(context.Background(), bobIdent, "alice", in); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserDelete(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seedUser(t, repo, "alice", domain.RoleUser)

	if err := svc.Delete(context.Background(), bobIdent, "alice"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), adminIdent, "ghost"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), aliceIdent, "alice"); err != nil {
		t.Fatalf("self delete: %v", err)
	}
}

func TestUserUpdateWallet(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seedUser(t, repo, "alice", domain.RoleUser)

	updated, err := svc.UpdateWallet(context.Background(), aliceIdent, "alice", 42)
	if err != nil {
		t.Fatalf("self wallet update: %v", err)
	}
	if updated.Wallet != 42 {
		t.Fatalf("wallet = %d, want 42", updated.Wallet)
	}

	if _, err := svc.UpdateWallet(context.Background(), adminIdent, "alice", 100); err != nil {
		t.Fatalf("admin wallet update: %v", err)
	}
	if _, err := svc.UpdateWallet(context.Background(), bobIdent, "alice", 0); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
