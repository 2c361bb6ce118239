package catalog

import "errors"

// ErrNotFound is returned when a product lookup misses.
var ErrNotFound = errors.New("product not found")

// ErrDuplicateSlug is returned when a create derives a slug that already
// exists. The store never auto-suffixes; the caller must retry with a
// disambiguated name.
var ErrDuplicateSlug = errors.New("duplicate product slug")
