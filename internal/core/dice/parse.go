package dice

import (
	"regexp"
	"strconv"
)

// notation matches the full dice grammar:
//
//	[count "@"] [diceCount] "d" sides [("k"|"d") ("h"|"l") [digits]] [("+"|"-"|"*"|"/") digits]
var notation = regexp.MustCompile(`^(?:(?P<count>\d+)@)?` +
	`(?P<expression>` +
	`(?P<dice>\d+)?d(?P<sides>\d+)` +
	`(?:(?P<keepdrop>[kd][hl])(?P<keepdropcount>\d+)?)?` +
	`(?:(?P<op>[+\-*/])(?P<opvalue>\d+))?` +
	`)$`)

// Parse converts a dice expression into a Spec.
//
// The whole expression must match; there is no partial extraction and no
// whitespace trimming. Omitted groups take the package defaults.
func Parse(expression string) (Spec, error) {
	match := notation.FindStringSubmatch(expression)
	if match == nil {
		return Spec{}, &ParseError{Expression: expression, Reason: "does not match dice notation"}
	}
	group := func(name string) string {
		return match[notation.SubexpIndex(name)]
	}

	spec := Spec{Expression: group("expression"), KeepDropCount: DefaultKeepDropCount}
	var err error
	if spec.Count, err = parseNumber(expression, group("count"), DefaultCount); err != nil {
		return Spec{}, err
	}
	if spec.DiceCount, err = parseNumber(expression, group("dice"), DefaultDiceCount); err != nil {
		return Spec{}, err
	}
	if spec.Sides, err = parseNumber(expression, group("sides"), DefaultSides); err != nil {
		return Spec{}, err
	}

	if token := group("keepdrop"); token != "" {
		spec.KeepDrop = keepDropTokens[token]
		if spec.KeepDropCount, err = parseNumber(expression, group("keepdropcount"), DefaultKeepDropCount); err != nil {
			return Spec{}, err
		}
	}

	if op := group("op"); op != "" {
		spec.Arithmetic = arithmeticTokens[op]
		if spec.ArithmeticValue, err = parseNumber(expression, group("opvalue"), 0); err != nil {
			return Spec{}, err
		}
	}

	return spec, nil
}

var keepDropTokens = map[string]KeepDrop{
	"kh": KeepHigh,
	"kl": KeepLow,
	"dh": DropHigh,
	"dl": DropLow,
}

var arithmeticTokens = map[string]Arithmetic{
	"+": ArithmeticAdd,
	"-": ArithmeticSub,
	"*": ArithmeticMul,
	"/": ArithmeticDiv,
}

// parseNumber reads a digit group, returning def when the group is absent.
// Values beyond 32 bits are treated as malformed input.
func parseNumber(expression, digits string, def uint) (uint, error) {
	if digits == "" {
		return def, nil
	}
	value, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, &ParseError{Expression: expression, Reason: "number " + digits + " is out of range"}
	}
	return uint(value), nil
}
