package domain

import "errors"

var ErrCategoryNotFound = errors.New("category not found")
var ErrCategoryExists = errors.New("category already exists")

// Category groups products. Name is the primary key.
type Category struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}
