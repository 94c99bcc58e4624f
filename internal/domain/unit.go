package domain

// Category is a fixed tag for a family of convertible units.
type Category string

const (
	CategoryLength      Category = "length"
	CategoryWeight      Category = "weight"
	CategoryVolume      Category = "volume"
	CategoryTemperature Category = "temperature"
	CategoryCurrency    Category = "currency"
)

// Unit describes how a symbol relates to its category base unit:
// base = value*Factor + Offset. Offset is nonzero only for temperature.
type Unit struct {
	Category Category `json:"category"`
	Symbol   string   `json:"symbol"`
	Factor   float64  `json:"factor"`
	Offset   float64  `json:"offset,omitempty"`
}

// IsBase reports whether the unit is the category base (factor 1, offset 0).
func (u Unit) IsBase() bool {
	return u.Factor == 1 && u.Offset == 0
}

type ConversionRequest struct {
	Category Category
	FromUnit string
	ToUnit   string
	Value    float64
}

type Conversion struct {
	Category Category
	FromUnit string
	ToUnit   string
	Value    float64
}
