// Package input maps terminal key events to queued match events
package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mask-arena/core"
	"github.com/lixenwraith/mask-arena/event"
	"github.com/lixenwraith/mask-arena/vmath"
)

// Binding is what one key asks for
type Binding struct {
	Type   event.EventType
	Player core.EntityID
	Dir    vmath.Vec2
}

// Payload builds a fresh event payload for the binding
func (b Binding) Payload() any {
	switch b.Type {
	case event.EventMoveRequest:
		return &event.MoveRequestPayload{Player: b.Player, Dir: b.Dir}
	case event.EventAttackRequest, event.EventPickupRequest:
		return &event.PlayerRequestPayload{Player: b.Player}
	}
	return nil
}

// KeyMap holds special-key and rune bindings
// Runes are matched case-insensitively
type KeyMap struct {
	Keys  map[tcell.Key]Binding
	Runes map[rune]Binding
}

var (
	up    = vmath.Vec2{Y: -1}
	down  = vmath.Vec2{Y: 1}
	left  = vmath.Vec2{X: -1}
	right = vmath.Vec2{X: 1}
)

func move(p core.EntityID, dir vmath.Vec2) Binding {
	return Binding{Type: event.EventMoveRequest, Player: p, Dir: dir}
}

// DefaultKeyMap returns the two-seat layout
// Player 1: WASD, f attack, z pickup. Player 2: arrows, l or Enter attack, / pickup
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Keys: map[tcell.Key]Binding{
			tcell.KeyUp:    move(core.Player2, up),
			tcell.KeyDown:  move(core.Player2, down),
			tcell.KeyLeft:  move(core.Player2, left),
			tcell.KeyRight: move(core.Player2, right),
			tcell.KeyEnter: {Type: event.EventAttackRequest, Player: core.Player2},
			tcell.KeyF1:    {Type: event.EventOverlayToggle},
			tcell.KeyCtrlC: {Type: event.EventQuitRequest},
		},
		Runes: map[rune]Binding{
			'w': move(core.Player1, up),
			's': move(core.Player1, down),
			'a': move(core.Player1, left),
			'd': move(core.Player1, right),
			'f': {Type: event.EventAttackRequest, Player: core.Player1},
			'z': {Type: event.EventPickupRequest, Player: core.Player1},
			'l': {Type: event.EventAttackRequest, Player: core.Player2},
			'/': {Type: event.EventPickupRequest, Player: core.Player2},
			' ': {Type: event.EventBeginRequest},
			'r': {Type: event.EventReturnRequest},
			'q': {Type: event.EventQuitRequest},
		},
	}
}

// Lookup finds the binding for a key, r is used only for tcell.KeyRune
func (km *KeyMap) Lookup(key tcell.Key, r rune) (Binding, bool) {
	if key == tcell.KeyRune {
		b, ok := km.Runes[unicode.ToLower(r)]
		return b, ok
	}
	b, ok := km.Keys[key]
	return b, ok
}

// Translate converts a key event into a queued event
func (km *KeyMap) Translate(ev *tcell.EventKey) (event.GameEvent, bool) {
	b, ok := km.Lookup(ev.Key(), ev.Rune())
	if !ok {
		return event.GameEvent{}, false
	}
	return event.GameEvent{Type: b.Type, Payload: b.Payload(), Timestamp: ev.When()}, true
}
