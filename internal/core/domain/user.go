package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrPasswordMismatch = errors.New("passwords do not match")

// User models a registered account. Username is the lookup key used for
// ownership checks; Email is unique as well. Roles is stored comma-joined
// (e.g. "USER" or "USER,ADMIN").
type User struct {
	Email        string `json:"email"`
	Username     string `json:"username"`
	Roles        string `json:"roles"`
	Image        string `json:"image,omitempty"`
	PasswordHash string `json:"-"`
	Wallet       int    `json:"wallet"`
}

// Identity derives the authenticated-caller view of this user.
func (u *User) Identity() Identity {
	return Identity{Subject: u.Username, Roles: ParseRoles(u.Roles)}
}
