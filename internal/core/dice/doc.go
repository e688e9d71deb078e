// Package dice parses tabletop dice notation and rolls it.
//
// An expression such as "3@4d6kh3" is parsed into a Spec, rolled into
// Count independent sets of DiceCount dice, and, when a keep/drop token is
// present, each set is resolved so that only the selected dice are kept and
// summed into the set total.
//
// # Totals
//
// A RollSet total is only computed by the keep/drop resolver. Expressions
// without a keep/drop token leave every die kept and the total at zero;
// callers that want a plain sum compute it from the dice.
//
// # Arithmetic
//
// The trailing arithmetic token ("+1", "*2", ...) is parsed into the Spec
// and returned to callers, but it is never applied to any value or total.
//
// # Determinism
//
// Randomness comes from the Source passed by the caller. Given the same
// source sequence, rolling an expression always yields the same dice, and
// keep/drop ties are broken by original position, so results are fully
// reproducible under a seeded source.
package dice
