// Package dimension implements the dimension algebra: base dimension
// definitions, canonical derived dimensions, and the registry that interns
// both. All construction goes through a Registry so that equal dimensional
// formulas share a single canonical instance.
package dimension

// BaseDimension is an atomic physical dimension such as length or mass.
// Instances are issued exclusively by a Registry, one per name, and are
// immutable; equality of base dimensions is pointer equality.
type BaseDimension struct {
	name   string
	symbol string

	// ord is the definition order within the owning registry. It fixes the
	// canonical term order of every derived dimension.
	ord int

	owner *Registry
}

// Name returns the name of the base dimension (e.g., "Length").
func (b *BaseDimension) Name() string {
	return b.name
}

// Symbol returns the symbol of the base dimension (e.g., "L").
func (b *BaseDimension) Symbol() string {
	return b.symbol
}

// String returns the symbol.
func (b *BaseDimension) String() string {
	return b.symbol
}
