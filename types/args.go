package types

// Variant selects an enum variant by name when encoding call arguments.
//
// Value holds the variant payload: nil for unit variants, a single value for one-field
// variants and a []any for variants with several fields.
type Variant struct {
	Name  string
	Value any
}

// NewVariant returns a Variant with the given name and payload.
func NewVariant(name string, value any) Variant {
	return Variant{Name: name, Value: value}
}

// Some wraps value in the Some variant of an Option.
func Some(value any) Variant {
	return Variant{Name: "Some", Value: value}
}

// None is the empty Option variant.
var None = Variant{Name: "None"}
