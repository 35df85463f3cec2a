package match

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/mask-arena/core"
	"github.com/lixenwraith/mask-arena/mask"
	"github.com/lixenwraith/mask-arena/vmath"
)

// Phase is the match lifecycle stage
type Phase uint8

const (
	PhaseStartScreen Phase = iota
	PhaseCountdown
	PhasePlaying
	PhaseEnded
)

var phaseNames = [...]string{"StartScreen", "Countdown", "Playing", "Ended"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "Unknown"
}

// StateChange is broadcast on every transition
type StateChange struct {
	From    Phase
	To      Phase
	MatchID uuid.UUID
}

// EndReason tells how a match finished
type EndReason uint8

const (
	EndByDeath EndReason = iota
	EndByTimeout
)

func (r EndReason) String() string {
	if r == EndByTimeout {
		return "timeout"
	}
	return "death"
}

// EndResult is the match-end notification payload
type EndResult struct {
	MatchID uuid.UUID
	// Winner is None for a draw
	Winner  core.Option[core.EntityID]
	Reason  EndReason
	Elapsed time.Duration
}

// Draw reports a match without a winner
func (r EndResult) Draw() bool {
	return r.Winner.IsNone()
}

// Headline is the one-line summary shown on the end screen
func (r EndResult) Headline() string {
	if w, ok := r.Winner.Get(); ok {
		return w.String() + " wins"
	}
	return "Draw"
}

// PlayerView is a read-only copy of one seat
type PlayerView struct {
	ID        core.EntityID
	Health    int
	MaxHealth int
	Mask      core.Option[mask.Kind]
	Position  vmath.Vec2
}

// Snapshot is a read-only view of the match for display
type Snapshot struct {
	Phase     Phase
	MatchID   uuid.UUID
	Countdown int
	Remaining time.Duration
	// Players is empty before the first match
	Players []PlayerView
	Result  core.Option[EndResult]
}
