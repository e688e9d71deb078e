package rolls

import (
	dicev1 "github.com/louisbranch/dicebot/internal/api/dice/v1"
	"github.com/louisbranch/dicebot/internal/core/dice"
	"github.com/louisbranch/dicebot/internal/services/dice/storage"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toAPIRoll(record storage.RollRecord) *dicev1.Roll {
	return &dicev1.Roll{
		RollId:     record.ID,
		Expression: record.Expression,
		Source:     record.Source,
		Seed:       record.Seed,
		Spec:       toAPISpec(record.Spec),
		Sets:       toAPISets(record.Sets),
		Total:      int64(record.Total),
		CreatedAt:  timestamppb.New(record.CreatedAt),
	}
}

// toAPISpec narrows counts to uint32. Parsed values never exceed 32 bits.
func toAPISpec(spec dice.Spec) *dicev1.Spec {
	return &dicev1.Spec{
		Count:           uint32(spec.Count),
		DiceCount:       uint32(spec.DiceCount),
		Sides:           uint32(spec.Sides),
		KeepDrop:        spec.KeepDrop.String(),
		KeepDropCount:   uint32(spec.KeepDropCount),
		Arithmetic:      spec.Arithmetic.String(),
		ArithmeticValue: uint32(spec.ArithmeticValue),
		Expression:      spec.Expression,
	}
}

// toAPISets narrows die faces to int32. Sides are bounded well below that.
func toAPISets(sets []dice.RollSet) []*dicev1.RollSet {
	out := make([]*dicev1.RollSet, 0, len(sets))
	for _, set := range sets {
		apiSet := &dicev1.RollSet{Total: int64(set.Total), Dice: make([]*dicev1.Die, 0, len(set.Dice))}
		for _, die := range set.Dice {
			apiSet.Dice = append(apiSet.Dice, &dicev1.Die{Value: int32(die.Value), Keep: die.Keep})
		}
		out = append(out, apiSet)
	}
	return out
}
