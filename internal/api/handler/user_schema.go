package handler

type updateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password,omitempty"`
	Roles    string `json:"roles,omitempty"`
	Image    string `json:"image,omitempty"`
}

type updateWalletRequest struct {
	Wallet int `json:"wallet" validate:"gte=0"`
}
