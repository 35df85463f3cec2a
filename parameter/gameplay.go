package parameter

import (
	"time"
)

// Match phases
const (
	// MatchCountdownSeconds is the number of countdown ticks before play
	MatchCountdownSeconds = 5

	// MatchDuration is the time box of a single match
	MatchDuration = 180 * time.Second

	// MatchCountdownStep is the wait between two countdown ticks
	MatchCountdownStep = 1 * time.Second
)

// Arena, in units; +Y up
const (
	ArenaMinXFloat = -8.0
	ArenaMinYFloat = -5.0
	ArenaMaxXFloat = 8.0
	ArenaMaxYFloat = 5.0
)

// Player seats
const (
	// PlayerOneSpawnXFloat is player one's spawn offset from arena center
	PlayerOneSpawnXFloat = -2.0
	// PlayerTwoSpawnXFloat is player two's spawn offset from arena center
	PlayerTwoSpawnXFloat = 2.0
	PlayerSpawnYFloat    = 0.0
)

// Movement and pickup claim
const (
	// PlayerMoveSpeedFloat is movement speed in units per second
	PlayerMoveSpeedFloat = 4.0

	// PlayerPickupRangeFloat is the claim radius around a player
	PlayerPickupRangeFloat = 0.8

	// PlayerBuffMultiplierFloat scales move speed while the pickup buff is active
	PlayerBuffMultiplierFloat = 1.5

	// PlayerBuffDuration is the pickup speed buff length
	PlayerBuffDuration = 500 * time.Millisecond

	// PlayerInputHold keeps a direction active after a key press; terminals report presses, not holds
	PlayerInputHold = 150 * time.Millisecond
)
