package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/louisbranch/dicebot/internal/core/dice"
	"github.com/louisbranch/dicebot/internal/services/dice/storage"
)

type dieJSON struct {
	Value int  `json:"value"`
	Keep  bool `json:"keep"`
}

type setJSON struct {
	Dice       []dieJSON `json:"dice"`
	Total      int       `json:"total"`
	Expression string    `json:"expression,omitempty"`
}

func encodeSets(sets []dice.RollSet) (string, error) {
	rows := make([]setJSON, 0, len(sets))
	for _, set := range sets {
		row := setJSON{Total: set.Total, Expression: set.Expression, Dice: make([]dieJSON, 0, len(set.Dice))}
		for _, die := range set.Dice {
			row.Dice = append(row.Dice, dieJSON{Value: die.Value, Keep: die.Keep})
		}
		rows = append(rows, row)
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return "", fmt.Errorf("encode roll sets: %w", err)
	}
	return string(data), nil
}

func decodeSets(data string) ([]dice.RollSet, error) {
	var rows []setJSON
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("decode roll sets: %w", err)
	}
	sets := make([]dice.RollSet, 0, len(rows))
	for _, row := range rows {
		set := dice.RollSet{Total: row.Total, Expression: row.Expression, Dice: make([]dice.Die, 0, len(row.Dice))}
		for _, die := range row.Dice {
			set.Dice = append(set.Dice, dice.Die{Value: die.Value, Keep: die.Keep})
		}
		sets = append(sets, set)
	}
	return sets, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoll(row rowScanner) (storage.RollRecord, error) {
	var (
		record                                      storage.RollRecord
		seq, count, diceCount, sides, keepDropCount int64
		arithmeticValue, createdAt                  int64
		keepDrop, arithmetic, specExpression        string
		setsJSON                                    string
	)
	if err := row.Scan(
		&seq,
		&record.ID,
		&record.Expression,
		&record.Source,
		&record.Seed,
		&count,
		&diceCount,
		&sides,
		&keepDrop,
		&keepDropCount,
		&arithmetic,
		&arithmeticValue,
		&specExpression,
		&setsJSON,
		&record.Total,
		&createdAt,
	); err != nil {
		return storage.RollRecord{}, err
	}

	keepDropOp, ok := dice.KeepDropFromToken(keepDrop)
	if !ok {
		return storage.RollRecord{}, fmt.Errorf("unknown keep/drop token %q", keepDrop)
	}
	arithmeticOp, ok := dice.ArithmeticFromToken(arithmetic)
	if !ok {
		return storage.RollRecord{}, fmt.Errorf("unknown arithmetic token %q", arithmetic)
	}
	sets, err := decodeSets(setsJSON)
	if err != nil {
		return storage.RollRecord{}, err
	}

	record.Seq = uint64(seq)
	record.Spec = dice.Spec{
		Count:           uint(count),
		DiceCount:       uint(diceCount),
		Sides:           uint(sides),
		KeepDrop:        keepDropOp,
		KeepDropCount:   uint(keepDropCount),
		Arithmetic:      arithmeticOp,
		ArithmeticValue: uint(arithmeticValue),
		Expression:      specExpression,
	}
	record.Sets = sets
	record.CreatedAt = fromMillis(createdAt)
	return record, nil
}
