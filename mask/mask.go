// Package mask defines the six mask kinds and their fixed dominance cycle
package mask

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/mask-arena/core"
)

// Kind is a mask a competitor may wear
type Kind uint8

const (
	Red Kind = iota
	Orange
	Yellow
	Green
	Blue
	Purple

	// Count is the number of kinds in the cycle
	Count = 6
)

// Table maps each kind to the kind it dominates
type Table [Count]Kind

// Cycle is the dominance table: Red→Orange→Yellow→Green→Blue→Purple→Red
var Cycle = Table{
	Red:    Orange,
	Orange: Yellow,
	Yellow: Green,
	Green:  Blue,
	Blue:   Purple,
	Purple: Red,
}

var kindNames = [Count]string{"Red", "Orange", "Yellow", "Green", "Blue", "Purple"}

// Display colors per kind
var kindColors = [Count]core.RGB{
	{R: 255, G: 0, B: 0},
	{R: 255, G: 128, B: 0},
	{R: 255, G: 235, B: 4},
	{R: 0, G: 255, B: 0},
	{R: 0, G: 0, B: 255},
	{R: 128, G: 0, B: 128},
}

// Valid reports whether k is one of the six kinds
func (k Kind) Valid() bool {
	return k < Count
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Color returns the display color, gray for invalid kinds
func (k Kind) Color() core.RGB {
	if !k.Valid() {
		return core.RGBGray
	}
	return kindColors[k]
}

// Dominates reports whether an attacker wearing a beats a defender wearing d
// True only when d is the cyclic successor of a
func Dominates(a, d Kind) bool {
	if !a.Valid() || !d.Valid() {
		return false
	}
	return Cycle[a] == d
}

// Successor returns the kind that k dominates
func Successor(k Kind) Kind {
	return Cycle[k%Count]
}

// DominatedBy returns the kind that dominates k
func DominatedBy(k Kind) Kind {
	for a, d := range Cycle {
		if d == k%Count {
			return Kind(a)
		}
	}
	return k
}

// All returns the kinds in cycle order
func All() []Kind {
	return []Kind{Red, Orange, Yellow, Green, Blue, Purple}
}

// ParseKind resolves a kind name, case-insensitive
func ParseKind(name string) (Kind, error) {
	n := strings.TrimSpace(name)
	for i, kn := range kindNames {
		if strings.EqualFold(kn, n) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mask kind %q", name)
}

// Validate checks that t forms a single cycle through all kinds
func Validate(t Table) error {
	seen := [Count]bool{}
	for a, d := range t {
		if !d.Valid() {
			return fmt.Errorf("%s maps to invalid kind %d", Kind(a), uint8(d))
		}
		if Kind(a) == d {
			return fmt.Errorf("%s dominates itself", Kind(a))
		}
		if seen[d] {
			return fmt.Errorf("%s is dominated twice", d)
		}
		seen[d] = true
	}

	k := Red
	for i := 1; i <= Count; i++ {
		k = t[k]
		if k == Red && i < Count {
			return fmt.Errorf("cycle from Red closes after %d steps", i)
		}
	}
	if k != Red {
		return fmt.Errorf("cycle from Red does not close after %d steps", Count)
	}
	return nil
}
