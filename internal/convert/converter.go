package convert

import (
	"unitconv/internal/domain"
)

// StaticConverter performs deterministic conversions for every category
// except currency, pivoting through the category base unit. Affine units
// (temperature) carry a nonzero offset; linear units carry offset 0, so
// both follow the same two-step formula.
type StaticConverter struct {
	registry *Registry
}

func NewStaticConverter(registry *Registry) *StaticConverter {
	return &StaticConverter{registry: registry}
}

// Convert resolves both units in the requested category and computes
// (value*from.Factor + from.Offset - to.Offset) / to.Factor.
// No rounding is applied; presentation rounding is the caller's concern.
func (c *StaticConverter) Convert(category domain.Category, fromUnit, toUnit string, value float64) (float64, error) {
	from, err := c.registry.Lookup(category, fromUnit)
	if err != nil {
		return 0, err
	}
	to, err := c.registry.Lookup(category, toUnit)
	if err != nil {
		return 0, err
	}

	base := value*from.Factor + from.Offset
	return (base - to.Offset) / to.Factor, nil
}
