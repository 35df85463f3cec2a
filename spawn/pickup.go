package spawn

import (
	"github.com/lixenwraith/mask-arena/mask"
	"github.com/lixenwraith/mask-arena/vmath"
)

// PickupID is a monotonic handle, never reused within a scheduler
type PickupID uint64

// Pickup is a mask lying in the arena
type Pickup struct {
	ID       PickupID
	Kind     mask.Kind
	Position vmath.Vec2
}

// entry pairs a live pickup with its lifecycle watcher
type entry struct {
	Pickup
	watcher   func(PickupID)
	destroyed bool
}

// destroy runs the watcher once
func (e *entry) destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	if e.watcher != nil {
		e.watcher(e.ID)
	}
}
