package event

import (
	"time"

	"github.com/lixenwraith/mask-arena/core"
	"github.com/lixenwraith/mask-arena/vmath"
)

// EventType represents the type of match event
// 0 is reserved for the FSM "Tick" trigger
type EventType int

const (
	// === Match Control ===

	// EventBeginRequest asks the controller to leave the start screen
	// Trigger: InputHandler (Space) | Consumer: FSM | Payload: nil
	EventBeginRequest EventType = iota + 1

	// EventReturnRequest asks the controller to go back to the start screen
	// Trigger: InputHandler (r) | Consumer: FSM | Payload: nil
	EventReturnRequest

	// EventCountdownFinished signals the countdown task ran out
	// Trigger: match.Controller | Consumer: FSM | Payload: nil
	EventCountdownFinished

	// EventPlayerDied signals a competitor reached zero health
	// Trigger: match.Controller.NotifyDeath | Consumer: FSM | Payload: *PlayerDiedPayload
	EventPlayerDied

	// EventMatchTimeUp signals the match timer completed
	// Trigger: match.Controller | Consumer: FSM | Payload: nil
	EventMatchTimeUp

	// === Player Intent ===

	// EventMoveRequest sets a player's movement direction
	// Trigger: InputHandler | Consumer: player.Controller | Payload: *MoveRequestPayload
	EventMoveRequest

	// EventAttackRequest asks for an attack against the opponent
	// Trigger: InputHandler | Consumer: player.Controller | Payload: *PlayerRequestPayload
	EventAttackRequest

	// EventPickupRequest asks to claim the nearest pickup
	// Trigger: InputHandler | Consumer: player.Controller | Payload: *PlayerRequestPayload
	EventPickupRequest

	// === Front End ===

	// EventOverlayToggle toggles the debug status overlay
	// Trigger: InputHandler (F1) | Consumer: render | Payload: nil
	EventOverlayToggle

	// EventQuitRequest asks the program to exit
	// Trigger: InputHandler (q, Ctrl-C) | Consumer: cmd | Payload: nil
	EventQuitRequest
)

// GameEvent represents a single event with typed payload
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}

// PlayerDiedPayload names the competitor whose health reached zero
type PlayerDiedPayload struct {
	Loser core.EntityID `toml:"loser"`
}

// MoveRequestPayload carries a movement direction, zero vector stops
type MoveRequestPayload struct {
	Player core.EntityID `toml:"player"`
	Dir    vmath.Vec2    `toml:"dir"`
}

// PlayerRequestPayload targets a player-scoped action
type PlayerRequestPayload struct {
	Player core.EntityID `toml:"player"`
}
