package handler

type createOrderRequest struct {
	UserEmail string   `json:"user_email,omitempty"`
	Products  []string `json:"products" validate:"required,min=1"`
	Quantity  int      `json:"quantity" validate:"required,gt=0"`
	Cost      float64  `json:"cost"     validate:"required,gt=0"`
	Address   string   `json:"address"  validate:"required"`
}

type updateOrderRequest struct {
	ID        string   `json:"id"       validate:"required"`
	UserEmail string   `json:"user_email,omitempty"`
	Products  []string `json:"products" validate:"required,min=1"`
	Quantity  int      `json:"quantity" validate:"required,gt=0"`
	Cost      float64  `json:"cost"     validate:"required,gt=0"`
	Address   string   `json:"address"  validate:"required"`
	Status    string   `json:"status,omitempty"`
}
