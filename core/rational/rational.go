// Package rational provides the exact rational numbers used as dimension
// exponents. Values are immutable, always reduced, and comparable, so they
// can participate in canonical keys.
package rational

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"dimkit/internal/errors"
)

// Rational is an exact rational number num/den in lowest terms with a
// positive denominator. The zero value is 0/1.
type Rational struct {
	num int64
	den int64
}

// Zero is the rational number 0.
var Zero = Rational{num: 0, den: 1}

// One is the rational number 1.
var One = Rational{num: 1, den: 1}

// New creates a reduced rational from a numerator and denominator.
// A zero denominator is rejected, as is math.MinInt64 in either
// component.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, errors.InvalidExponent("rational denominator cannot be zero")
	}
	if num == math.MinInt64 || den == math.MinInt64 {
		return Rational{}, errors.InvalidExponent("rational component out of range")
	}
	return reduce(num, den), nil
}

// FromInt creates the rational n/1. Like New, math.MinInt64 is outside
// the representable domain: every stored component must have an int64
// negation.
func FromInt(n int64) (Rational, error) {
	if n == math.MinInt64 {
		return Rational{}, errors.InvalidExponent("rational component out of range")
	}
	return Rational{num: n, den: 1}, nil
}

// FromDecimal converts a finite decimal to its exact rational value.
// Every decimal is num·10^exp, so the conversion never loses precision.
func FromDecimal(d decimal.Decimal) (Rational, error) {
	rat := d.Rat()
	if !rat.Num().IsInt64() || !rat.Denom().IsInt64() {
		return Rational{}, errors.InvalidExponent("decimal exponent out of rational range")
	}
	return New(rat.Num().Int64(), rat.Denom().Int64())
}

// Num returns the numerator in lowest terms.
func (r Rational) Num() int64 {
	return r.num
}

// Den returns the denominator in lowest terms (always positive).
func (r Rational) Den() int64 {
	if r.den == 0 {
		// Normalized zero value.
		return 1
	}
	return r.den
}

// IsZero reports whether the value is 0.
func (r Rational) IsZero() bool {
	return r.num == 0
}

// Sign returns -1, 0, or 1 according to the sign of the value.
func (r Rational) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// Equal reports whether two rationals represent the same value.
func (r Rational) Equal(other Rational) bool {
	return r.normalize() == other.normalize()
}

// Add returns r + other.
func (r Rational) Add(other Rational) (Rational, error) {
	a, b := r.normalize(), other.normalize()
	num, ok := addChecked(mulChecked(a.num, b.den), mulChecked(b.num, a.den))
	den := mulChecked(a.den, b.den)
	if !ok || den.overflow {
		return Rational{}, errors.InvalidExponent("rational addition overflow")
	}
	return reduce(num.v, den.v), nil
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	n := r.normalize()
	return Rational{num: -n.num, den: n.den}
}

// Mul returns r * other.
func (r Rational) Mul(other Rational) (Rational, error) {
	a, b := r.normalize(), other.normalize()
	// Cross-reduce first to keep intermediates small.
	g1 := gcd(abs(a.num), b.den)
	g2 := gcd(abs(b.num), a.den)
	num := mulChecked(a.num/g1, b.num/g2)
	den := mulChecked(a.den/g2, b.den/g1)
	if num.overflow || den.overflow {
		return Rational{}, errors.InvalidExponent("rational multiplication overflow")
	}
	return reduce(num.v, den.v), nil
}

// String renders the value as "n" for integers and "n/d" otherwise.
func (r Rational) String() string {
	n := r.normalize()
	if n.den == 1 {
		return strconv.FormatInt(n.num, 10)
	}
	return fmt.Sprintf("%d/%d", n.num, n.den)
}

// Decimal returns the value as a decimal and whether the conversion is
// exact. Values like 1/3 have no finite decimal form; those report false
// and return the zero decimal.
func (r Rational) Decimal() (decimal.Decimal, bool) {
	n := r.normalize()
	// Exact iff the reduced denominator is of the form 2^a·5^b.
	den := n.den
	for den%2 == 0 {
		den /= 2
	}
	for den%5 == 0 {
		den /= 5
	}
	if den != 1 {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromInt(n.num).Div(decimal.NewFromInt(n.den)), true
}

// Parse reads "n" or "n/d" back into a rational. Inverse of String.
func Parse(s string) (Rational, error) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		num, err := strconv.ParseInt(s[:i], 10, 64)
		if err != nil {
			return Rational{}, errors.InvalidExponent("malformed rational: " + s)
		}
		den, err := strconv.ParseInt(s[i+1:], 10, 64)
		if err != nil {
			return Rational{}, errors.InvalidExponent("malformed rational: " + s)
		}
		return New(num, den)
	}
	num, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Rational{}, errors.InvalidExponent("malformed rational: " + s)
	}
	return FromInt(num)
}

// normalize maps the uninitialized zero value onto the canonical 0/1 form.
func (r Rational) normalize() Rational {
	if r.den == 0 {
		return Zero
	}
	return r
}

func reduce(num, den int64) Rational {
	if num == 0 {
		return Zero
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	return Rational{num: num / g, den: den / g}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

type checked struct {
	v        int64
	overflow bool
}

// mulChecked and addChecked flag math.MinInt64 results as overflow too:
// no stored component may lack an int64 negation, or Neg and the gcd
// reduction in Mul would wrap.
func mulChecked(a, b int64) checked {
	if a == 0 || b == 0 {
		return checked{v: 0}
	}
	v := a * b
	if v/b != a || v == math.MinInt64 {
		return checked{overflow: true}
	}
	return checked{v: v}
}

func addChecked(a, b checked) (checked, bool) {
	if a.overflow || b.overflow {
		return checked{overflow: true}, false
	}
	v := a.v + b.v
	if (a.v > 0 && b.v > 0 && v < 0) || (a.v < 0 && b.v < 0 && v > 0) || v == math.MinInt64 {
		return checked{overflow: true}, false
	}
	return checked{v: v}, true
}
