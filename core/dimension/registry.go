package dimension

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"dimkit/core/rational"
	"dimkit/internal/errors"
	"dimkit/internal/logging"
)

var (
	one    = rational.One
	negOne = rational.One.Neg()
)

// Registry is the authority that creates base dimensions and interns
// derived dimensions. It guarantees that at most one BaseDimension exists
// per name and at most one DerivedDimension exists per canonical exponent
// vector. Catalogs only grow; there is no deletion.
//
// All methods are safe for concurrent use.
type Registry struct {
	mu sync.RWMutex

	// bases maps name to the unique definition. nextOrd is the definition
	// counter that fixes canonical term order.
	bases   map[string]*BaseDimension
	nextOrd int

	// derived maps canonical keys to the unique interned instance.
	derived map[string]*DerivedDimension

	// aliases maps derived-dimension names ("Velocity") to their
	// registered formula.
	aliases map[string]derivedAlias

	scalar *DerivedDimension

	logger *zap.Logger
}

type derivedAlias struct {
	symbol string
	dim    *DerivedDimension
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for interning diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates an empty registry. The dimensionless dimension is
// interned eagerly.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		bases:   make(map[string]*BaseDimension),
		derived: make(map[string]*DerivedDimension),
		aliases: make(map[string]derivedAlias),
		logger:  logging.Logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	r.scalar = newDerived(r, nil)
	r.derived[r.scalar.key] = r.scalar
	return r
}

// DefineBase registers a base dimension under name. Redefinition is
// idempotent when the symbol matches the existing definition and fails
// otherwise, so a name can never silently alias two dimensions.
func (r *Registry) DefineBase(name, symbol string) (*BaseDimension, error) {
	if name == "" {
		return nil, errors.InvalidDefinition("base dimension name cannot be empty")
	}
	if symbol == "" {
		return nil, errors.InvalidDefinition("base dimension (" + name + ") symbol cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.bases[name]; ok {
		if existing.symbol == symbol {
			return existing, nil
		}
		return nil, errors.Redefinition(name).
			WithContext("existing_symbol", existing.symbol).
			WithContext("symbol", symbol)
	}

	base := &BaseDimension{
		name:   name,
		symbol: symbol,
		ord:    r.nextOrd,
		owner:  r,
	}
	r.nextOrd++
	r.bases[name] = base

	r.logger.Debug("defined base dimension",
		zap.String("name", name),
		zap.String("symbol", symbol),
		zap.Int("ord", base.ord))
	return base, nil
}

// Base returns the base dimension registered under name.
func (r *Registry) Base(name string) (*BaseDimension, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	base, ok := r.bases[name]
	if !ok {
		return nil, errors.NotFound("base dimension", name)
	}
	return base, nil
}

// BaseNames returns the names of all registered base dimensions in
// definition order.
func (r *Registry) BaseNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.bases))
	for name := range r.bases {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return r.bases[names[i]].ord < r.bases[names[j]].ord
	})
	return names
}

// Dimensionless returns the derived dimension with no base-dimension
// entries, the multiplicative identity of the algebra.
func (r *Registry) Dimensionless() *DerivedDimension {
	return r.scalar
}

// FromBase returns the degree-1 derived form of a base dimension.
func (r *Registry) FromBase(base *BaseDimension) (*DerivedDimension, error) {
	if err := r.checkBase(base); err != nil {
		return nil, err
	}
	return r.intern([]term{{base: base, exp: one}}), nil
}

// Multiply returns the product of two dimensional formulas: exponents of
// shared base dimensions are summed and zero entries pruned.
func (r *Registry) Multiply(a, b *DerivedDimension) (*DerivedDimension, error) {
	if err := r.checkOperands(a, b); err != nil {
		return nil, err
	}
	return r.combine(a, b, false)
}

// Divide returns a/b: b's exponents are negated before summing.
func (r *Registry) Divide(a, b *DerivedDimension) (*DerivedDimension, error) {
	if err := r.checkOperands(a, b); err != nil {
		return nil, err
	}
	return r.combine(a, b, true)
}

// Power raises every exponent of a to the rational power n. A zero power
// of any formula is dimensionless.
func (r *Registry) Power(a *DerivedDimension, n rational.Rational) (*DerivedDimension, error) {
	if err := r.checkOperands(a); err != nil {
		return nil, err
	}
	if n.IsZero() {
		return r.scalar, nil
	}
	terms := make([]term, 0, len(a.terms))
	for _, t := range a.terms {
		exp, err := t.exp.Mul(n)
		if err != nil {
			return nil, err
		}
		// Nonzero times nonzero cannot cancel, but guard the invariant.
		if exp.IsZero() {
			continue
		}
		terms = append(terms, term{base: t.base, exp: exp})
	}
	return r.intern(terms), nil
}

// Invert returns the reciprocal formula, Power(a, -1).
func (r *Registry) Invert(a *DerivedDimension) (*DerivedDimension, error) {
	return r.Power(a, negOne)
}

// DefineDerived registers a name and symbol for an interned formula, e.g.
// "Velocity"/"v" for L·T^-1. Like DefineBase, redefinition is idempotent
// when name, symbol, and formula all match, and fails otherwise.
func (r *Registry) DefineDerived(name, symbol string, d *DerivedDimension) (*DerivedDimension, error) {
	if name == "" {
		return nil, errors.InvalidDefinition("derived dimension name cannot be empty")
	}
	if symbol == "" {
		return nil, errors.InvalidDefinition("derived dimension (" + name + ") symbol cannot be empty")
	}
	if err := r.checkOperands(d); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.aliases[name]; ok {
		if existing.symbol == symbol && existing.dim == d {
			return existing.dim, nil
		}
		return nil, errors.Redefinition(name).
			WithContext("existing_symbol", existing.symbol).
			WithContext("existing_formula", existing.dim.String())
	}

	r.aliases[name] = derivedAlias{symbol: symbol, dim: d}
	r.logger.Debug("defined derived dimension",
		zap.String("name", name),
		zap.String("symbol", symbol),
		zap.String("formula", d.String()))
	return d, nil
}

// Derived returns the formula registered under a derived-dimension name.
func (r *Registry) Derived(name string) (*DerivedDimension, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	alias, ok := r.aliases[name]
	if !ok {
		return nil, errors.NotFound("derived dimension", name)
	}
	return alias.dim, nil
}

// combine merges two canonical vectors, negating b's exponents when divide
// is set. Both inputs are sorted by ordinal, so this is a linear merge.
func (r *Registry) combine(a, b *DerivedDimension, divide bool) (*DerivedDimension, error) {
	terms := make([]term, 0, len(a.terms)+len(b.terms))
	i, j := 0, 0
	for i < len(a.terms) && j < len(b.terms) {
		ta, tb := a.terms[i], b.terms[j]
		switch {
		case ta.base.ord < tb.base.ord:
			terms = append(terms, ta)
			i++
		case ta.base.ord > tb.base.ord:
			terms = append(terms, negIf(tb, divide))
			j++
		default:
			other := tb.exp
			if divide {
				other = other.Neg()
			}
			exp, err := ta.exp.Add(other)
			if err != nil {
				return nil, err
			}
			if !exp.IsZero() {
				terms = append(terms, term{base: ta.base, exp: exp})
			}
			i++
			j++
		}
	}
	for ; i < len(a.terms); i++ {
		terms = append(terms, a.terms[i])
	}
	for ; j < len(b.terms); j++ {
		terms = append(terms, negIf(b.terms[j], divide))
	}
	return r.intern(terms), nil
}

func negIf(t term, neg bool) term {
	if neg {
		return term{base: t.base, exp: t.exp.Neg()}
	}
	return t
}

// intern returns the unique instance for a canonical vector, constructing
// and storing it if absent. Lookup and insert form one critical section so
// concurrent composition of the same vector yields a single instance.
func (r *Registry) intern(terms []term) *DerivedDimension {
	key := canonicalKey(terms)

	r.mu.RLock()
	d, ok := r.derived[key]
	r.mu.RUnlock()
	if ok {
		return d
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.derived[key]; ok {
		return d
	}
	d = newDerived(r, terms)
	r.derived[key] = d
	r.logger.Debug("interned derived dimension",
		zap.String("formula", d.String()),
		zap.Int("terms", len(terms)))
	return d
}

func (r *Registry) checkBase(base *BaseDimension) error {
	if base == nil {
		return errors.InvalidDefinition("base dimension is nil")
	}
	if base.owner != r {
		return errors.InvalidDefinition("base dimension belongs to a different registry").
			WithContext("name", base.name)
	}
	return nil
}

func (r *Registry) checkOperands(dims ...*DerivedDimension) error {
	for _, d := range dims {
		if d == nil {
			return errors.InvalidDefinition("derived dimension is nil")
		}
		if d.owner != r {
			return errors.InvalidDefinition("derived dimension belongs to a different registry").
				WithContext("formula", d.String())
		}
	}
	return nil
}
