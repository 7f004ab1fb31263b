package handler

import "github.com/quicktaste/ordering-api/internal/core/domain"

type registerRequest struct {
	Username       string `json:"username"        validate:"required,min=3"`
	Email          string `json:"email"           validate:"required,email"`
	Password       string `json:"password"        validate:"required,min=6"`
	PasswordRepeat string `json:"password_repeat" validate:"required,eqfield=Password"`
	Roles          string `json:"roles,omitempty"`
	Image          string `json:"image,omitempty"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}
