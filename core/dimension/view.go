package dimension

import (
	"dimkit/core/rational"
)

// Exponents is a read-only view over a derived dimension's exponent
// mapping. It exposes lookup, deterministic iteration, and structural
// equality; there is no mutating method. Iteration order is the definition
// order of the base dimensions within the owning registry, so it is stable
// across runs of the same definition sequence.
type Exponents struct {
	terms []term
	index map[*BaseDimension]rational.Rational
}

// term is one (base dimension, exponent) entry of a canonical vector.
// Exponents are always nonzero; zero entries are pruned at construction.
type term struct {
	base *BaseDimension
	exp  rational.Rational
}

func newExponents(terms []term) *Exponents {
	index := make(map[*BaseDimension]rational.Rational, len(terms))
	for _, t := range terms {
		index[t.base] = t.exp
	}
	return &Exponents{terms: terms, index: index}
}

// Get returns the exponent for the given base dimension, or zero if the
// base dimension does not participate in the formula.
func (e *Exponents) Get(base *BaseDimension) rational.Rational {
	if exp, ok := e.index[base]; ok {
		return exp
	}
	return rational.Zero
}

// Contains reports whether the base dimension has a nonzero exponent.
func (e *Exponents) Contains(base *BaseDimension) bool {
	_, ok := e.index[base]
	return ok
}

// Range iterates over (base dimension, exponent) pairs in canonical order.
// Iteration stops early if fn returns false.
func (e *Exponents) Range(fn func(base *BaseDimension, exp rational.Rational) bool) {
	for _, t := range e.terms {
		if !fn(t.base, t.exp) {
			return
		}
	}
}

// Len returns the number of base dimensions with nonzero exponents.
func (e *Exponents) Len() int {
	return len(e.terms)
}

// IsEmpty reports whether the view has no entries, i.e. the owning derived
// dimension is dimensionless.
func (e *Exponents) IsEmpty() bool {
	return len(e.terms) == 0
}

// Equal reports structural equality: every base dimension carries the same
// exponent in both views, with missing entries counting as zero.
func (e *Exponents) Equal(other *Exponents) bool {
	if other == nil || len(e.terms) != len(other.terms) {
		return false
	}
	for _, t := range e.terms {
		if !other.Get(t.base).Equal(t.exp) {
			return false
		}
	}
	return true
}
