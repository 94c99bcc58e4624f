package convert

import (
	"errors"
	"fmt"
	"math"

	"unitconv/internal/domain"
)

var (
	ErrFromUnitRequired = errors.New("from_unit is required")
	ErrToUnitRequired   = errors.New("to_unit is required")
)

// RequestValidator rejects malformed requests before any sub-component
// is touched.
type RequestValidator struct {
	registry *Registry
}

func NewRequestValidator(registry *Registry) *RequestValidator {
	return &RequestValidator{registry: registry}
}

func (v *RequestValidator) Validate(req domain.ConversionRequest) error {
	if !v.registry.HasCategory(req.Category) {
		return fmt.Errorf("%w: %q", domain.ErrCategoryNotFound, req.Category)
	}
	if req.FromUnit == "" {
		return ErrFromUnitRequired
	}
	if req.ToUnit == "" {
		return ErrToUnitRequired
	}
	if math.IsNaN(req.Value) || math.IsInf(req.Value, 0) {
		return domain.ErrInvalidValue
	}
	return nil
}
