package domain

import "errors"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusDelivered OrderStatus = "DELIVERED" // terminal
)

var ErrOrderNotFound = errors.New("order not found")
var ErrInvalidStatus = errors.New("invalid order status")

// Valid reports whether s is a known lifecycle state.
func (s OrderStatus) Valid() bool {
	return s == StatusPending || s == StatusDelivered
}

// NextStatus resolves the status an order update should persist.
//
// A non-admin requester never changes status: whatever was requested is
// discarded and the stored status is retained. An admin may set any value
// in {PENDING, DELIVERED}; anything else fails with ErrInvalidStatus.
// Note the admin rule does not forbid resetting DELIVERED back to PENDING;
// the checked set is membership only.
func NextStatus(isAdmin bool, current, requested OrderStatus) (OrderStatus, error) {
	if !isAdmin {
		return current, nil
	}
	if !requested.Valid() {
		return current, ErrInvalidStatus
	}
	return requested, nil
}

// Order is a purchase placed by a user. UserEmail designates the owner and
// is the value ownership checks compare against.
type Order struct {
	ID        string      `json:"id"`
	UserEmail string      `json:"user_email"`
	Products  []string    `json:"products"`
	Quantity  int         `json:"quantity"`
	Cost      float64     `json:"cost"`
	Address   string      `json:"address"`
	Status    OrderStatus `json:"status"`
}
