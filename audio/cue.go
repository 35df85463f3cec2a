package audio

// Cue is a short sound tied to a match happening
type Cue int

const (
	CueCountdown Cue = iota
	CueCountdownFinal
	CuePickup
	CueHit
	CueBlocked
	CueMatchEnd
	cueCount
)

var cueNames = [cueCount]string{"countdown", "countdown_final", "pickup", "hit", "blocked", "match_end"}

func (c Cue) Valid() bool {
	return c >= 0 && c < cueCount
}

func (c Cue) String() string {
	if c.Valid() {
		return cueNames[c]
	}
	return "unknown"
}
