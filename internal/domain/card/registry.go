package card

import (
	"slices"
	"strings"
)

// Registry is an ordered, read-only table of schemes.
type Registry struct {
	schemes []Scheme
}

var defaultRegistry = NewRegistry(DefaultSchemes()...)

// NewRegistry builds a registry that matches schemes in the given order.
func NewRegistry(schemes ...Scheme) *Registry {
	return &Registry{schemes: slices.Clone(schemes)}
}

// Default returns the process-wide registry holding DefaultSchemes.
func Default() *Registry {
	return defaultRegistry
}

// Schemes returns a copy of the table in match order.
func (r *Registry) Schemes() []Scheme {
	return slices.Clone(r.schemes)
}

// Lookup finds a scheme by id, ignoring case.
func (r *Registry) Lookup(id string) (Scheme, bool) {
	for _, s := range r.schemes {
		if strings.EqualFold(s.ID, id) {
			return s, true
		}
	}
	return Scheme{}, false
}

// Match returns the first scheme whose prefix pattern matches digits.
func (r *Registry) Match(digits string) (Scheme, bool) {
	if digits == "" {
		return Scheme{}, false
	}
	for _, s := range r.schemes {
		if s.Matches(digits) {
			return s, true
		}
	}
	return Scheme{}, false
}
