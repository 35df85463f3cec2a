package mask

import (
	"testing"

	"pgregory.net/rapid"
)

func TestDominatesCycle(t *testing.T) {
	tests := []struct {
		a, d Kind
		want bool
	}{
		{Red, Orange, true},
		{Orange, Yellow, true},
		{Yellow, Green, true},
		{Green, Blue, true},
		{Blue, Purple, true},
		{Purple, Red, true},
		{Orange, Red, false},
		{Red, Red, false},
		{Red, Yellow, false},
		{Blue, Red, false},
	}
	for _, tc := range tests {
		if got := Dominates(tc.a, tc.d); got != tc.want {
			t.Errorf("Dominates(%s, %s) = %v, want %v", tc.a, tc.d, got, tc.want)
		}
	}
}

func TestDominatesAllPairs(t *testing.T) {
	for _, a := range All() {
		wins := 0
		for _, d := range All() {
			if Dominates(a, d) {
				wins++
				if Dominates(d, a) {
					t.Errorf("%s and %s dominate each other", a, d)
				}
			}
		}
		if wins != 1 {
			t.Errorf("%s dominates %d kinds, want 1", a, wins)
		}
	}
}

func TestCycleValid(t *testing.T) {
	if err := Validate(Cycle); err != nil {
		t.Fatalf("Validate(Cycle) = %v", err)
	}

	broken := []Table{
		{Red, Yellow, Green, Blue, Purple, Orange},
		{Orange, Red, Green, Blue, Purple, Yellow},
		{Orange, Orange, Green, Blue, Purple, Red},
	}
	for i, tb := range broken {
		if err := Validate(tb); err == nil {
			t.Errorf("table %d: expected validation error", i)
		}
	}
}

func TestCycleClosure(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := rapid.SampledFrom(All()).Draw(t, "start")
		k := start
		for i := 1; i <= Count; i++ {
			k = Successor(k)
			if k == start && i < Count {
				t.Fatalf("returned to %s after %d steps", start, i)
			}
		}
		if k != start {
			t.Fatalf("six steps from %s ended at %s", start, k)
		}
		if DominatedBy(Successor(start)) != start {
			t.Fatalf("DominatedBy is not the inverse of Successor for %s", start)
		}
	})
}

func TestParseKind(t *testing.T) {
	for _, k := range All() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v,%v", k.String(), got, err)
		}
	}
	if k, err := ParseKind(" purple "); err != nil || k != Purple {
		t.Errorf("ParseKind is not case and space tolerant: %v,%v", k, err)
	}
	if _, err := ParseKind("Teal"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestInvalidKind(t *testing.T) {
	bad := Kind(9)
	if bad.Valid() {
		t.Fatal("Kind(9) reported valid")
	}
	if Dominates(bad, Red) || Dominates(Red, bad) {
		t.Error("invalid kind took part in dominance")
	}
	if bad.String() != "Kind(9)" {
		t.Errorf("String() = %q", bad.String())
	}
}
