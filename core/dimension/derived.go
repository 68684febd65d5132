package dimension

import (
	"strconv"
	"strings"
)

// DerivedDimension is a formal product of base dimensions raised to
// rational exponents, held in canonical form: zero exponents pruned,
// terms ordered by base-dimension definition order. Instances are interned
// by their registry, so within one registry structural equality and
// pointer equality coincide.
type DerivedDimension struct {
	owner *Registry

	// terms is the canonical exponent vector. Empty means dimensionless.
	terms []term

	// key is the canonical string form of terms, used as the interning key.
	key string

	view *Exponents
}

func newDerived(owner *Registry, terms []term) *DerivedDimension {
	return &DerivedDimension{
		owner: owner,
		terms: terms,
		key:   canonicalKey(terms),
		view:  newExponents(terms),
	}
}

// canonicalKey renders a term vector as a stable interning key. Terms must
// already be sorted by base ordinal.
func canonicalKey(terms []term) string {
	if len(terms) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, t := range terms {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(strconv.Itoa(t.base.ord))
		sb.WriteByte('^')
		sb.WriteString(t.exp.String())
	}
	return sb.String()
}

// Exponents returns the read-only view of the exponent mapping.
func (d *DerivedDimension) Exponents() *Exponents {
	return d.view
}

// IsDimensionless reports whether the exponent mapping is empty.
func (d *DerivedDimension) IsDimensionless() bool {
	return len(d.terms) == 0
}

// Equal reports structural equality of the two dimensional formulas.
// Within one registry this is equivalent to d == other.
func (d *DerivedDimension) Equal(other *DerivedDimension) bool {
	if d == other {
		return true
	}
	if other == nil {
		return false
	}
	return d.view.Equal(other.view)
}

// String renders the dimensional formula from base symbols, e.g.
// "L·T^-2". Exponent 1 is omitted; the dimensionless formula renders
// as "1". The rendering is for display only and is never parsed back.
func (d *DerivedDimension) String() string {
	if len(d.terms) == 0 {
		return "1"
	}
	var sb strings.Builder
	for i, t := range d.terms {
		if i > 0 {
			sb.WriteRune('·')
		}
		sb.WriteString(t.base.symbol)
		if !t.exp.Equal(one) {
			sb.WriteByte('^')
			sb.WriteString(t.exp.String())
		}
	}
	return sb.String()
}
