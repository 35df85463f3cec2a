package parameter

import (
	"time"
)

const (
	// TickInterval is the fixed scheduler step
	TickInterval = 16 * time.Millisecond

	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255

	// StatusStringMaxLen bounds string metrics shown in the debug overlay
	StatusStringMaxLen = 24
)

// Audio
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioCueVolume is the linear gain applied to every cue
	AudioCueVolume = 0.3
)
