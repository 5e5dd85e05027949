package grade

import "math"

// Denormalizer renders ordinals as tokens of a target scale.
type Denormalizer struct {
	registry *Registry
}

// NewDenormalizer creates a Denormalizer over the given registry.
func NewDenormalizer(registry *Registry) *Denormalizer {
	return &Denormalizer{registry: registry}
}

// Denormalize returns the token of scale for ordinal. Ordinals without an
// exact token round down to the nearest lower key. Ordinal 0, NaN and values
// below the scale minimum yield the unrated token ("VB") or, if the scale has
// none, its easiest token. An unknown scale yields "".
func (d *Denormalizer) Denormalize(ordinal float64, scale Scale) string {
	table, ok := d.registry.Table(scale)
	if !ok {
		return ""
	}

	if ordinal <= 0 || math.IsNaN(ordinal) || ordinal < table.Min() {
		if u := table.Unrated(); u != "" {
			return u
		}
		return table.Lowest()
	}

	if tok, ok := table.Reverse(ordinal); ok {
		return tok
	}
	if tok, ok := table.Floor(ordinal); ok {
		return tok
	}
	return table.Lowest()
}
