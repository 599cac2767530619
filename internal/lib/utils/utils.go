// Package utils contains small helper functions used across the project.
//
// These are generic helpers that don't belong to a specific domain.
package utils

// Ptr returns a pointer to a copy of v.
//
// Handy for filling optional (pointer) fields from literals:
//
//	input.OwnerID = utils.Ptr(userID)
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns the value behind p, or the zero value when p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
