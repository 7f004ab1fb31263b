// Package authz is the single place authorization decisions are made.
// Every function is a pure predicate over an explicit Identity and, where
// relevant, the owner key recorded on the targeted resource. Resource
// services consume these instead of re-deriving role logic inline.
//
// Ownership checks presuppose the target entity has already been fetched;
// callers must resolve not-found before asking for an ownership decision.
package authz

import "github.com/quicktaste/ordering-api/internal/core/domain"

// IsAdmin reports whether the identity holds the ADMIN role.
func IsAdmin(id domain.Identity) bool {
	return id.HasRole(domain.RoleAdmin)
}

// IsSelf reports whether the identity is the given subject.
func IsSelf(id domain.Identity, subject string) bool {
	return id.Subject == subject
}

// IsOwnerOrAdmin reports whether the identity may act on a resource whose
// recorded owner key is ownerKey.
func IsOwnerOrAdmin(id domain.Identity, ownerKey string) bool {
	return id.Subject == ownerKey || IsAdmin(id)
}

// CanManageCatalog gates category and product create/update/delete, and
// product image updates. Admin only.
func CanManageCatalog(id domain.Identity) bool {
	return IsAdmin(id)
}

// CanAdjustProduct gates the narrow stock and price updates, which any
// authenticated identity may perform (orders decrement stock).
func CanAdjustProduct(id domain.Identity) bool {
	return id.Subject != ""
}

// CanListUsers gates the full user listing. Admin only.
func CanListUsers(id domain.Identity) bool {
	return IsAdmin(id)
}
