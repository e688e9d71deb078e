package dice

import (
	"cmp"
	"math"
	"slices"
)

// Resolve marks which dice of set are kept under op and recomputes the
// set total from the kept dice.
//
// Dice are ordered by value (descending for KeepHigh and DropLow, ascending
// for KeepLow and DropHigh) with ties broken by ascending position, and the
// first dice in that order are kept:
//
//	KeepHigh, KeepLow: min(n, k) dice
//	DropHigh, DropLow: k - min(n, k) dice
//
// Resolve is idempotent and leaves the set untouched for KeepDropNone.
func Resolve(set *RollSet, op KeepDrop, n uint) {
	if set == nil || op == KeepDropNone {
		return
	}

	descending := op == KeepHigh || op == DropLow
	order := make([]int, len(set.Dice))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		byValue := cmp.Compare(set.Dice[a].Value, set.Dice[b].Value)
		if descending {
			byValue = -byValue
		}
		if byValue != 0 {
			return byValue
		}
		return cmp.Compare(a, b)
	})

	remaining := keepCount(op, n, len(set.Dice))
	total := 0
	for _, idx := range order {
		keep := remaining > 0
		set.Dice[idx].Keep = keep
		if keep {
			total = addSaturating(total, set.Dice[idx].Value)
			remaining--
		}
	}
	set.Total = total
}

// keepCount returns how many dice op keeps out of k, always within [0, k].
func keepCount(op KeepDrop, n uint, k int) int {
	requested := k
	if n < uint(k) {
		requested = int(n)
	}
	switch op {
	case KeepHigh, KeepLow:
		return requested
	case DropHigh, DropLow:
		return k - requested
	default:
		return k
	}
}

func addSaturating(total, value int) int {
	if value > 0 && total > math.MaxInt-value {
		return math.MaxInt
	}
	return total + value
}
