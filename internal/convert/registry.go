package convert

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"unitconv/internal/domain"
)

//go:embed units.json
var unitsData []byte

type unitSpec struct {
	Factor float64 `json:"factor"`
	Offset float64 `json:"offset"`
}

// Registry is the read-only unit table. It is built once at startup and
// shared by reference, so lookups need no locking.
type Registry struct {
	units map[domain.Category]map[string]domain.Unit
}

// NewRegistry parses the embedded unit table and validates that every
// category carries exactly one base unit.
func NewRegistry() (*Registry, error) {
	var raw map[domain.Category]map[string]unitSpec
	if err := json.Unmarshal(unitsData, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse embedded unit table: %w", err)
	}

	units := make(map[domain.Category]map[string]domain.Unit, len(raw))
	for category, specs := range raw {
		table := make(map[string]domain.Unit, len(specs))
		baseCount := 0
		for symbol, spec := range specs {
			if spec.Factor == 0 {
				return nil, fmt.Errorf("unit %q in category %q has zero factor", symbol, category)
			}
			u := domain.Unit{Category: category, Symbol: symbol, Factor: spec.Factor, Offset: spec.Offset}
			if u.IsBase() {
				baseCount++
			}
			table[symbol] = u
		}
		if baseCount != 1 {
			return nil, fmt.Errorf("category %q must have exactly one base unit, got %d", category, baseCount)
		}
		units[category] = table
	}
	return &Registry{units: units}, nil
}

// Lookup resolves a symbol within a category. A symbol known to another
// category is reported as a mismatch rather than a plain miss.
func (r *Registry) Lookup(category domain.Category, symbol string) (domain.Unit, error) {
	table, ok := r.units[category]
	if !ok {
		return domain.Unit{}, fmt.Errorf("%w: %q", domain.ErrCategoryNotFound, category)
	}
	if u, found := table[symbol]; found {
		return u, nil
	}
	for other, otherTable := range r.units {
		if other == category {
			continue
		}
		if _, found := otherTable[symbol]; found {
			return domain.Unit{}, fmt.Errorf("%w: %q belongs to %q, not %q", domain.ErrCategoryMismatch, symbol, other, category)
		}
	}
	return domain.Unit{}, fmt.Errorf("%w: %q in category %q", domain.ErrUnitNotFound, symbol, category)
}

// Units returns the category's definitions ordered by symbol.
func (r *Registry) Units(category domain.Category) ([]domain.Unit, error) {
	table, ok := r.units[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrCategoryNotFound, category)
	}
	symbols := slices.Sorted(maps.Keys(table))
	units := make([]domain.Unit, 0, len(symbols))
	for _, s := range symbols {
		units = append(units, table[s])
	}
	return units, nil
}

// Categories lists the static categories plus currency, sorted.
func (r *Registry) Categories() []domain.Category {
	categories := slices.Collect(maps.Keys(r.units))
	categories = append(categories, domain.CategoryCurrency)
	slices.Sort(categories)
	return categories
}

// HasCategory reports whether the category is recognized at all,
// currency included.
func (r *Registry) HasCategory(category domain.Category) bool {
	if category == domain.CategoryCurrency {
		return true
	}
	_, ok := r.units[category]
	return ok
}
