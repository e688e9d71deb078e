package scenario

import (
	"context"
	"math"
	"strconv"

	"github.com/Shopify/go-lua"
	"github.com/louisbranch/dicebot/internal/core/dice"
	"github.com/louisbranch/dicebot/internal/random"
)

const diceLibraryName = "dice"

// diceBinding holds the state shared by the dice library functions of one
// Lua state.
type diceBinding struct {
	ctx      context.Context
	limits   dice.Limits
	seedFunc func() (int64, error)
	rolls    int
}

func registerDiceLibrary(state *lua.State, binding *diceBinding) {
	state.NewTable()
	lua.SetFunctions(state, []lua.RegistryFunction{
		{Name: "roll", Function: binding.roll},
		{Name: "parse", Function: binding.parse},
	}, 0)
	state.SetGlobal(diceLibraryName)
}

// roll implements dice.roll(expr [, seed]). Seeds are returned as decimal
// strings because Lua numbers cannot hold every int64.
func (b *diceBinding) roll(state *lua.State) int {
	expression := lua.CheckString(state, 1)
	if err := b.ctx.Err(); err != nil {
		lua.Errorf(state, "%s", err.Error())
		return 0
	}

	requested, ok := optionalSeed(state, 2)
	if !ok {
		lua.ArgumentError(state, 2, "seed must be an integer or a decimal string")
		return 0
	}
	seed, err := random.ResolveSeed(requested, b.seedFunc)
	if err != nil {
		lua.Errorf(state, "%s", err.Error())
		return 0
	}

	roller := dice.NewRoller(random.NewSource(seed), dice.WithLimits(b.limits))
	result, err := roller.Roll(expression)
	if err != nil {
		lua.Errorf(state, "%s", err.Error())
		return 0
	}
	b.rolls++

	pushResult(state, expression, seed, result)
	return 1
}

// parse implements dice.parse(expr).
func (b *diceBinding) parse(state *lua.State) int {
	expression := lua.CheckString(state, 1)
	spec, err := dice.Parse(expression)
	if err == nil {
		err = b.limits.Validate(spec)
	}
	if err != nil {
		lua.Errorf(state, "%s", err.Error())
		return 0
	}
	pushSpec(state, spec)
	return 1
}

func optionalSeed(state *lua.State, index int) (*int64, bool) {
	switch state.TypeOf(index) {
	case lua.TypeNone, lua.TypeNil:
		return nil, true
	case lua.TypeNumber:
		value, ok := state.ToNumber(index)
		if !ok || math.Trunc(value) != value || value < math.MinInt64 || value >= math.MaxInt64 {
			return nil, false
		}
		seed := int64(value)
		return &seed, true
	case lua.TypeString:
		text, _ := state.ToString(index)
		seed, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, false
		}
		return &seed, true
	default:
		return nil, false
	}
}

func pushResult(state *lua.State, expression string, seed int64, result dice.Result) {
	state.NewTable()
	state.PushString(expression)
	state.SetField(-2, "expression")
	state.PushString(strconv.FormatInt(seed, 10))
	state.SetField(-2, "seed")
	state.PushInteger(result.Total())
	state.SetField(-2, "total")

	state.NewTable()
	for i, set := range result.Sets {
		state.NewTable()
		state.PushInteger(set.Total)
		state.SetField(-2, "total")

		state.NewTable()
		for j, die := range set.Dice {
			state.NewTable()
			state.PushInteger(die.Value)
			state.SetField(-2, "value")
			state.PushBoolean(die.Keep)
			state.SetField(-2, "keep")
			state.RawSetInt(-2, j+1)
		}
		state.SetField(-2, "dice")

		state.RawSetInt(-2, i+1)
	}
	state.SetField(-2, "sets")
}

func pushSpec(state *lua.State, spec dice.Spec) {
	state.NewTable()
	state.PushInteger(int(spec.Count))
	state.SetField(-2, "count")
	state.PushInteger(int(spec.DiceCount))
	state.SetField(-2, "dice_count")
	state.PushInteger(int(spec.Sides))
	state.SetField(-2, "sides")
	if spec.KeepDrop != dice.KeepDropNone {
		state.PushString(spec.KeepDrop.String())
		state.SetField(-2, "keep_drop")
		state.PushInteger(int(spec.KeepDropCount))
		state.SetField(-2, "keep_drop_count")
	}
	if spec.Arithmetic != dice.ArithmeticNone {
		state.PushString(spec.Arithmetic.String())
		state.SetField(-2, "arithmetic")
		state.PushInteger(int(spec.ArithmeticValue))
		state.SetField(-2, "arithmetic_value")
	}
	state.PushString(spec.Expression)
	state.SetField(-2, "expression")
}
