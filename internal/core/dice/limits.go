package dice

// Limits bounds the parameters an expression may request. Zero fields fall
// back to the matching DefaultLimits value.
type Limits struct {
	MaxCount uint
	MaxDice  uint
	MaxSides uint
}

// DefaultLimits are applied when no limits are configured.
var DefaultLimits = Limits{
	MaxCount: 100,
	MaxDice:  1000,
	MaxSides: 1_000_000,
}

func (l Limits) normalized() Limits {
	if l.MaxCount == 0 {
		l.MaxCount = DefaultLimits.MaxCount
	}
	if l.MaxDice == 0 {
		l.MaxDice = DefaultLimits.MaxDice
	}
	if l.MaxSides == 0 {
		l.MaxSides = DefaultLimits.MaxSides
	}
	return l
}

// Validate reports a *ValidationError when spec requests zero or too many
// sets, dice or sides.
func (l Limits) Validate(spec Spec) error {
	l = l.normalized()
	checks := []struct {
		field string
		value uint
		limit uint
	}{
		{field: "count", value: spec.Count, limit: l.MaxCount},
		{field: "dice", value: spec.DiceCount, limit: l.MaxDice},
		{field: "sides", value: spec.Sides, limit: l.MaxSides},
	}
	for _, check := range checks {
		if check.value == 0 {
			return &ValidationError{Field: check.field, Reason: "must be positive"}
		}
		if check.value > check.limit {
			return &ValidationError{
				Field:  check.field,
				Value:  check.value,
				Limit:  check.limit,
				Reason: "exceeds limit",
			}
		}
	}
	return nil
}
