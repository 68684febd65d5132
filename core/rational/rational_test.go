package rational

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"dimkit/internal/errors"
)

// TestNewReduction tests that constructed rationals are in lowest terms
// with a positive denominator
func TestNewReduction(t *testing.T) {
	tests := []struct {
		name        string
		num, den    int64
		wantNum     int64
		wantDen     int64
		wantStr     string
		expectError bool
	}{
		{name: "already reduced", num: 1, den: 2, wantNum: 1, wantDen: 2, wantStr: "1/2"},
		{name: "reducible", num: 4, den: 6, wantNum: 2, wantDen: 3, wantStr: "2/3"},
		{name: "negative denominator normalizes", num: 1, den: -2, wantNum: -1, wantDen: 2, wantStr: "-1/2"},
		{name: "double negative", num: -3, den: -6, wantNum: 1, wantDen: 2, wantStr: "1/2"},
		{name: "zero numerator", num: 0, den: 5, wantNum: 0, wantDen: 1, wantStr: "0"},
		{name: "integer", num: 6, den: 3, wantNum: 2, wantDen: 1, wantStr: "2"},
		{name: "zero denominator fails", num: 1, den: 0, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.num, tt.den)
			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got none")
				}
				if !errors.IsType(err, errors.TypeInvalidExponent) {
					t.Fatalf("expected invalid exponent error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Num() != tt.wantNum || r.Den() != tt.wantDen {
				t.Fatalf("got %d/%d, want %d/%d", r.Num(), r.Den(), tt.wantNum, tt.wantDen)
			}
			if r.String() != tt.wantStr {
				t.Fatalf("String() = %q, want %q", r.String(), tt.wantStr)
			}
		})
	}
}

// TestArithmetic tests Add, Mul, and Neg
func TestArithmetic(t *testing.T) {
	mustNew := func(num, den int64) Rational {
		r, err := New(num, den)
		if err != nil {
			t.Fatalf("New(%d, %d): %v", num, den, err)
		}
		return r
	}

	half := mustNew(1, 2)
	third := mustNew(1, 3)

	sum, err := half.Add(third)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if sum.String() != "5/6" {
		t.Fatalf("1/2 + 1/3 = %s, want 5/6", sum)
	}

	product, err := half.Mul(third)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if product.String() != "1/6" {
		t.Fatalf("1/2 * 1/3 = %s, want 1/6", product)
	}

	cancel, err := half.Add(half.Neg())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !cancel.IsZero() {
		t.Fatalf("1/2 + -1/2 = %s, want 0", cancel)
	}

	if got := mustNew(-3, 1).Sign(); got != -1 {
		t.Fatalf("Sign(-3) = %d, want -1", got)
	}
}

// TestZeroValue tests that the uninitialized zero value behaves as 0
func TestZeroValue(t *testing.T) {
	var zero Rational
	if !zero.IsZero() {
		t.Fatal("zero value should be zero")
	}
	if zero.Den() != 1 {
		t.Fatalf("zero value Den() = %d, want 1", zero.Den())
	}
	if !zero.Equal(Zero) {
		t.Fatal("zero value should equal Zero")
	}
	sum, err := zero.Add(One)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !sum.Equal(One) {
		t.Fatalf("0 + 1 = %s, want 1", sum)
	}
}

// TestInt64Boundary tests that math.MinInt64 never enters the
// representable domain, whether through a constructor or as an
// arithmetic result, so negation always has an exact inverse
func TestInt64Boundary(t *testing.T) {
	if _, err := FromInt(math.MinInt64); !errors.IsType(err, errors.TypeInvalidExponent) {
		t.Fatalf("FromInt(MinInt64): expected invalid exponent error, got %v", err)
	}
	if _, err := New(math.MinInt64, 1); !errors.IsType(err, errors.TypeInvalidExponent) {
		t.Fatalf("New(MinInt64, 1): expected invalid exponent error, got %v", err)
	}
	if _, err := New(1, math.MinInt64); !errors.IsType(err, errors.TypeInvalidExponent) {
		t.Fatalf("New(1, MinInt64): expected invalid exponent error, got %v", err)
	}
	if _, err := Parse("-9223372036854775808"); !errors.IsType(err, errors.TypeInvalidExponent) {
		t.Fatalf("Parse(MinInt64): expected invalid exponent error, got %v", err)
	}

	// The largest admitted magnitude negates and round-trips exactly
	edge, err := FromInt(math.MinInt64 + 1)
	if err != nil {
		t.Fatalf("FromInt(MinInt64+1): %v", err)
	}
	neg := edge.Neg()
	if neg.Num() != math.MaxInt64 {
		t.Fatalf("Neg(MinInt64+1) = %s, want %d", neg, int64(math.MaxInt64))
	}
	if !neg.Neg().Equal(edge) {
		t.Fatalf("double negation = %s, want %s", neg.Neg(), edge)
	}

	// Arithmetic cannot produce the excluded magnitude either
	minusOne, err := FromInt(-1)
	if err != nil {
		t.Fatalf("FromInt(-1): %v", err)
	}
	if sum, err := edge.Add(minusOne); !errors.IsType(err, errors.TypeInvalidExponent) {
		t.Fatalf("(MinInt64+1) + -1: expected invalid exponent error, got %s, %v", sum, err)
	}
	big, err := New(1<<62, 1)
	if err != nil {
		t.Fatalf("New(1<<62, 1): %v", err)
	}
	minusTwo, err := FromInt(-2)
	if err != nil {
		t.Fatalf("FromInt(-2): %v", err)
	}
	if product, err := big.Mul(minusTwo); !errors.IsType(err, errors.TypeInvalidExponent) {
		t.Fatalf("2^62 * -2: expected invalid exponent error, got %s, %v", product, err)
	}
}

// TestFromDecimal tests exact decimal conversion
func TestFromDecimal(t *testing.T) {
	tests := []struct {
		name    string
		decimal string
		want    string
	}{
		{name: "integer", decimal: "3", want: "3"},
		{name: "half", decimal: "0.5", want: "1/2"},
		{name: "negative", decimal: "-1.25", want: "-5/4"},
		{name: "small", decimal: "0.001", want: "1/1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.decimal)
			if err != nil {
				t.Fatalf("bad decimal literal: %v", err)
			}
			r, err := FromDecimal(d)
			if err != nil {
				t.Fatalf("FromDecimal: %v", err)
			}
			if r.String() != tt.want {
				t.Fatalf("FromDecimal(%s) = %s, want %s", tt.decimal, r, tt.want)
			}
		})
	}
}

// TestDecimalRoundTrip tests conversion back to decimal
func TestDecimalRoundTrip(t *testing.T) {
	half, _ := New(1, 2)
	d, exact := half.Decimal()
	if !exact {
		t.Fatal("1/2 should have an exact decimal form")
	}
	if !d.Equal(decimal.NewFromFloat(0.5)) {
		t.Fatalf("1/2 as decimal = %s, want 0.5", d)
	}

	third, _ := New(1, 3)
	if _, exact := third.Decimal(); exact {
		t.Fatal("1/3 should not have an exact decimal form")
	}
}

// TestParse tests the inverse of String
func TestParse(t *testing.T) {
	tests := []struct {
		input       string
		want        string
		expectError bool
	}{
		{input: "3", want: "3"},
		{input: "-1/2", want: "-1/2"},
		{input: "4/6", want: "2/3"},
		{input: "1/0", expectError: true},
		{input: "a/b", expectError: true},
		{input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, err := Parse(tt.input)
			if tt.expectError {
				if err == nil {
					t.Fatalf("Parse(%q): expected error, got %s", tt.input, r)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if r.String() != tt.want {
				t.Fatalf("Parse(%q) = %s, want %s", tt.input, r, tt.want)
			}
		})
	}
}
