package dice

// Roller parses, validates and rolls expressions against a random source.
type Roller struct {
	source Source
	limits Limits
}

// Option configures a Roller.
type Option func(*Roller)

// WithLimits overrides DefaultLimits. Zero fields keep their defaults.
func WithLimits(limits Limits) Option {
	return func(r *Roller) {
		r.limits = limits.normalized()
	}
}

// NewRoller builds a Roller drawing from src.
func NewRoller(src Source, opts ...Option) *Roller {
	roller := &Roller{source: src, limits: DefaultLimits}
	for _, opt := range opts {
		if opt != nil {
			opt(roller)
		}
	}
	return roller
}

// Limits returns the bounds enforced by the roller.
func (r *Roller) Limits() Limits {
	return r.limits
}

// Roll parses expression, rolls every requested set and applies the
// keep/drop token when one is present.
//
// Errors match ErrParse, ErrValidation or ErrMissingSource.
func (r *Roller) Roll(expression string) (Result, error) {
	if r == nil || r.source == nil {
		return Result{}, ErrMissingSource
	}
	spec, err := Parse(expression)
	if err != nil {
		return Result{}, err
	}
	if err := r.limits.Validate(spec); err != nil {
		return Result{}, err
	}

	result, err := Generate(r.source, spec.Count, spec.DiceCount, spec.Sides, spec.Expression)
	if err != nil {
		return Result{}, err
	}
	result.Spec = spec

	if spec.KeepDrop != KeepDropNone {
		for i := range result.Sets {
			Resolve(&result.Sets[i], spec.KeepDrop, spec.KeepDropCount)
		}
	}
	return result, nil
}

// ParseAndRoll rolls expression with DefaultLimits.
func ParseAndRoll(expression string, src Source) (Result, error) {
	return NewRoller(src).Roll(expression)
}
