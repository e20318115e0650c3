// Package mapper converts between domain entities and their DTOs.
package mapper

import "github.com/utafrali/storefront/pkg/validator"

// Mapper converts entities of type E to DTOs of type D and back.
type Mapper[E any, D any] interface {
	// ToDTO returns nil for a nil entity.
	ToDTO(entity *E) *D
	// ToDTOs maps a collection. The result is never nil.
	ToDTOs(entities []E) []D
	// ToEntity returns nil when the DTO is nil or cannot form a valid entity.
	ToEntity(d *D) *E
}

func mapAll[E any, D any](entities []E, toDTO func(*E) *D) []D {
	out := make([]D, 0, len(entities))
	for i := range entities {
		out = append(out, *toDTO(&entities[i]))
	}
	return out
}

// valid reports whether d is non-nil and passes its validate tags.
func valid[D any](d *D) bool {
	return d != nil && validator.Valid(d)
}
