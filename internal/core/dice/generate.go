package dice

import "math"

// Source provides randomness for rolls.
type Source interface {
	// Intn returns a uniform value in [0, n). n is always positive.
	Intn(n int) int
}

// Die is a single rolled die.
type Die struct {
	Value int
	Keep  bool
}

// RollSet is a group of dice rolled together.
type RollSet struct {
	Dice []Die
	// Total is the sum of kept dice, set only by Resolve.
	Total      int
	Expression string
}

// Result holds every set rolled for one expression.
type Result struct {
	Spec Spec
	Sets []RollSet
}

// Total is the saturating sum of the set totals.
func (r Result) Total() int {
	total := 0
	for _, set := range r.Sets {
		total = addSaturating(total, set.Total)
	}
	return total
}

// Generate rolls count sets of diceCount dice with the given number of sides.
//
// Every die starts kept and every total starts at zero. Zero parameters are
// rejected before any value is drawn from src.
func Generate(src Source, count, diceCount, sides uint, expression string) (Result, error) {
	if src == nil {
		return Result{}, ErrMissingSource
	}
	switch {
	case count == 0:
		return Result{}, &ValidationError{Field: "count", Reason: "must be positive"}
	case diceCount == 0:
		return Result{}, &ValidationError{Field: "dice", Reason: "must be positive"}
	case sides == 0:
		return Result{}, &ValidationError{Field: "sides", Reason: "must be positive"}
	case sides > math.MaxInt32:
		return Result{}, &ValidationError{Field: "sides", Value: sides, Limit: math.MaxInt32, Reason: "exceeds limit"}
	}

	sets := make([]RollSet, count)
	for i := range sets {
		dice := make([]Die, diceCount)
		for j := range dice {
			dice[j] = Die{Value: src.Intn(int(sides)) + 1, Keep: true}
		}
		sets[i] = RollSet{Dice: dice, Expression: expression}
	}
	return Result{Sets: sets}, nil
}
