package dice

import "testing"

// sequenceSource returns fixed die faces in order, wrapping around.
type sequenceSource struct {
	faces []int
	next  int
	calls int
}

func (s *sequenceSource) Intn(n int) int {
	s.calls++
	face := s.faces[s.next%len(s.faces)]
	s.next++
	if face < 1 || face > n {
		panic("sequenceSource face out of range")
	}
	return face - 1
}

func newSet(values ...int) RollSet {
	dice := make([]Die, len(values))
	for i, value := range values {
		dice[i] = Die{Value: value, Keep: true}
	}
	return RollSet{Dice: dice}
}

func keepFlags(set RollSet) []bool {
	flags := make([]bool, len(set.Dice))
	for i, die := range set.Dice {
		flags[i] = die.Keep
	}
	return flags
}

func assertKeepFlags(t *testing.T, set RollSet, want []bool) {
	t.Helper()
	got := keepFlags(set)
	if len(got) != len(want) {
		t.Fatalf("keep flags length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keep flags = %v, want %v", got, want)
		}
	}
}
