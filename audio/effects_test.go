package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns the sample count
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10_000; i++ {
		n, ok := s.Stream(buf)
		total += n
		for j := 0; j < n; j++ {
			if buf[j][0] < -1 || buf[j][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total-n+j, buf[j][0])
			}
		}
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never ended")
	return 0
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		if got := drain(t, osc); got != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: streamed %d samples, want %d", wave, got, rate.N(100*time.Millisecond))
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: err = %v", wave, osc.Err())
		}
	}
}

func TestOscillatorSquareValues(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	buf := make([][2]float64, 64)
	n, _ := osc.Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("square sample %d = %f", i, v)
		}
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 1)
	env.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want 0 at attack start", buf[0][0])
	}
}

func TestCueStreamers(t *testing.T) {
	rate := beep.SampleRate(44100)
	for c := Cue(0); c < cueCount; c++ {
		s := NewCueStreamer(c, rate, 0.3)
		if s == nil {
			t.Fatalf("%s: nil streamer", c)
		}
		want := 0
		for _, n := range cueNotes[c] {
			want += rate.N(n.duration)
		}
		if got := drain(t, s); got != want {
			t.Errorf("%s: %d samples, want %d", c, got, want)
		}
		if CueDuration(c) <= 0 {
			t.Errorf("%s: zero duration", c)
		}
	}

	if NewCueStreamer(Cue(99), rate, 1) != nil || CueDuration(Cue(-1)) != 0 {
		t.Error("unknown cue produced sound")
	}
}

func TestFinalCountdownHigher(t *testing.T) {
	if cueNotes[CueCountdownFinal][0].freq <= cueNotes[CueCountdown][0].freq {
		t.Error("final countdown beep must be higher than the others")
	}
}
