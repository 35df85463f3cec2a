package status

import (
	"strings"
	"testing"
)

func TestMetricPointerIsCached(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("spawn.live")
	a.Store(3)
	if b := r.Ints.Get("spawn.live"); b != a || b.Load() != 3 {
		t.Fatal("Get did not return the cached pointer")
	}
	if !r.Ints.Has("spawn.live") || r.Ints.Has("spawn.dead") {
		t.Error("Has reports wrong membership")
	}
}

func TestStringTruncated(t *testing.T) {
	var s AtomicString
	s.Store(strings.Repeat("x", 100))
	if len(s.Load()) >= 100 {
		t.Errorf("string not truncated: %d", len(s.Load()))
	}
	var empty AtomicString
	if empty.Load() != "" {
		t.Error("zero AtomicString should load empty")
	}
}

func TestLinesOrdering(t *testing.T) {
	r := NewRegistry()
	r.Strings.Get("match.phase").Store("Playing")
	r.Ints.Get("combat.hit").Store(2)
	r.Ints.Get("combat.blocked_cooldown").Store(1)
	r.Floats.Get("match.remaining").Set(12.5)
	r.Bools.Get("spawn.enabled").Store(true)

	want := []string{
		"match.phase: Playing",
		"combat.blocked_cooldown: 1",
		"combat.hit: 2",
		"match.remaining: 12.50",
		"spawn.enabled: true",
	}
	got := r.Lines()
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
	if r.TotalCount() != 5 {
		t.Errorf("TotalCount = %d, want 5", r.TotalCount())
	}
}
