package handler

type categoryRequest struct {
	Name  string `json:"name"  validate:"required"`
	Image string `json:"image,omitempty"`
}
