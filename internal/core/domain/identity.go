package domain

import (
	"errors"
	"strings"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

var ErrInvalidToken = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")
var ErrForbidden = errors.New("access forbidden")
var ErrImmutableKey = errors.New("identifier cannot be changed")

// Identity is the authenticated caller as carried by a bearer token.
// Subject is the username the token was issued for.
type Identity struct {
	Subject string
	Roles   []string
}

// HasRole reports whether the identity carries the given role.
func (id Identity) HasRole(role string) bool {
	for _, r := range id.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// ParseRoles splits a comma-joined role string into individual roles.
// Blank input yields the default USER role.
func ParseRoles(joined string) []string {
	var roles []string
	for _, r := range strings.Split(joined, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}
	if len(roles) == 0 {
		return []string{RoleUser}
	}
	return roles
}

// JoinRoles is the inverse of ParseRoles.
func JoinRoles(roles []string) string {
	return strings.Join(roles, ",")
}
