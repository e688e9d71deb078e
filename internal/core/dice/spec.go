package dice

// KeepDrop selects which dice of a set count towards its total.
type KeepDrop int

const (
	KeepDropNone KeepDrop = iota
	KeepHigh
	KeepLow
	DropHigh
	DropLow
)

func (k KeepDrop) String() string {
	switch k {
	case KeepDropNone:
		return ""
	case KeepHigh:
		return "kh"
	case KeepLow:
		return "kl"
	case DropHigh:
		return "dh"
	case DropLow:
		return "dl"
	default:
		return "unknown"
	}
}

// Arithmetic is the trailing operator of an expression.
type Arithmetic int

const (
	ArithmeticNone Arithmetic = iota
	ArithmeticAdd
	ArithmeticSub
	ArithmeticMul
	ArithmeticDiv
)

func (a Arithmetic) String() string {
	switch a {
	case ArithmeticNone:
		return ""
	case ArithmeticAdd:
		return "+"
	case ArithmeticSub:
		return "-"
	case ArithmeticMul:
		return "*"
	case ArithmeticDiv:
		return "/"
	default:
		return "unknown"
	}
}

// Spec is the parsed form of a dice expression.
type Spec struct {
	// Count is the number of independent sets to roll ("N@").
	Count uint
	// DiceCount is the number of dice in each set.
	DiceCount uint
	// Sides is the number of faces on each die.
	Sides uint

	KeepDrop      KeepDrop
	KeepDropCount uint

	// Arithmetic and ArithmeticValue are carried as data only; the engine
	// never applies them.
	Arithmetic      Arithmetic
	ArithmeticValue uint

	// Expression is the matched expression without the "N@" prefix.
	Expression string
}

// Default values for omitted expression groups.
const (
	DefaultCount         uint = 1
	DefaultDiceCount     uint = 1
	DefaultSides         uint = 20
	DefaultKeepDropCount uint = 1
)

// KeepDropFromToken returns the modifier for a "kh", "kl", "dh" or "dl"
// token. The empty token maps to KeepDropNone.
func KeepDropFromToken(token string) (KeepDrop, bool) {
	if token == "" {
		return KeepDropNone, true
	}
	op, ok := keepDropTokens[token]
	return op, ok
}

// ArithmeticFromToken returns the operator for "+", "-", "*" or "/". The
// empty token maps to ArithmeticNone.
func ArithmeticFromToken(token string) (Arithmetic, bool) {
	if token == "" {
		return ArithmeticNone, true
	}
	op, ok := arithmeticTokens[token]
	return op, ok
}
