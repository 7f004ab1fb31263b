package handler

type productRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Category    string  `json:"category"    validate:"required"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"gt=0"`
	Image       string  `json:"image,omitempty"`
}

type updateStockRequest struct {
	Stock int `json:"stock" validate:"gte=0"`
}

type updatePriceRequest struct {
	Price float64 `json:"price" validate:"gt=0"`
}

type updateImageRequest struct {
	Image string `json:"image" validate:"required"`
}
