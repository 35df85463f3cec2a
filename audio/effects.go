package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/mask-arena/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// NewOscillator creates an oscillator that ends after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      vmath.NewFastRand(uint64(freq*1000) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope wraps s with attack/release shaping over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(total-rel, att),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies linear gain; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is one tone of a cue
type note struct {
	freq     float64
	duration time.Duration
	wave     WaveType
}

// cueNotes lists each cue's notes played in sequence
var cueNotes = [cueCount][]note{
	CueCountdown:      {{freq: 660, duration: 120 * time.Millisecond, wave: WaveSine}},
	CueCountdownFinal: {{freq: 1320, duration: 250 * time.Millisecond, wave: WaveSine}},
	CuePickup: {
		{freq: 987.77, duration: 60 * time.Millisecond, wave: WaveSquare},
		{freq: 1318.51, duration: 120 * time.Millisecond, wave: WaveSquare},
	},
	CueHit:     {{freq: 0, duration: 120 * time.Millisecond, wave: WaveNoise}},
	CueBlocked: {{freq: 110, duration: 90 * time.Millisecond, wave: WaveSaw}},
	CueMatchEnd: {
		{freq: 523.25, duration: 150 * time.Millisecond, wave: WaveSine},
		{freq: 659.25, duration: 150 * time.Millisecond, wave: WaveSine},
		{freq: 783.99, duration: 400 * time.Millisecond, wave: WaveSine},
	},
}

const (
	cueAttack  = 5 * time.Millisecond
	cueRelease = 40 * time.Millisecond
)

// CueDuration returns the total length of a cue, zero for unknown cues
func CueDuration(c Cue) time.Duration {
	if !c.Valid() {
		return 0
	}
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.duration
	}
	return d
}

// NewCueStreamer builds the streamer for a cue at the given gain, nil for unknown cues
func NewCueStreamer(c Cue, rate beep.SampleRate, vol float64) beep.Streamer {
	if !c.Valid() {
		return nil
	}
	notes := cueNotes[c]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		osc := NewOscillator(n.freq, n.duration, n.wave, rate)
		parts = append(parts, NewEnvelope(osc, n.duration, cueAttack, min(cueRelease, n.duration/2), rate))
	}
	return newVolume(beep.Seq(parts...), vol)
}
