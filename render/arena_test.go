package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mask-arena/core"
	"github.com/lixenwraith/mask-arena/mask"
	"github.com/lixenwraith/mask-arena/match"
	"github.com/lixenwraith/mask-arena/spawn"
	"github.com/lixenwraith/mask-arena/vmath"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func row(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(s tcell.SimulationScreen) string {
	_, h := s.Size()
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		lines[y] = row(s, y)
	}
	return strings.Join(lines, "\n")
}

func players(p1, p2 match.PlayerView) []match.PlayerView {
	return []match.PlayerView{p1, p2}
}

func testRenderer() *ArenaRenderer {
	return NewArenaRenderer(vmath.NewRect(-8, -5, 8, 5))
}

func TestStartScreen(t *testing.T) {
	s := newScreen(t, 60, 20)
	testRenderer().Draw(s, Frame{Match: match.Snapshot{Phase: match.PhaseStartScreen}})

	text := screenText(s)
	for _, want := range []string{titleText, beginText, "startscreen"} {
		if !strings.Contains(text, want) {
			t.Errorf("start screen missing %q\n%s", want, text)
		}
	}
}

func TestCountdownNumber(t *testing.T) {
	s := newScreen(t, 60, 20)
	testRenderer().Draw(s, Frame{Match: match.Snapshot{Phase: match.PhaseCountdown, Countdown: 4}})

	if !strings.Contains(row(s, 10), "4") {
		t.Errorf("countdown row = %q", row(s, 10))
	}
}

func TestPlayingDrawsEntities(t *testing.T) {
	s := newScreen(t, 60, 20)
	r := testRenderer()

	p1 := match.PlayerView{ID: core.Player1, Health: 2, MaxHealth: 3, Mask: core.Some(mask.Red), Position: vmath.Vec2{X: -2}}
	p2 := match.PlayerView{ID: core.Player2, Health: 3, MaxHealth: 3, Position: vmath.Vec2{X: 2}}
	pickup := spawn.Pickup{ID: 1, Kind: mask.Green, Position: vmath.Vec2{X: 8, Y: 5}}

	r.Draw(s, Frame{
		Match: match.Snapshot{
			Phase:     match.PhasePlaying,
			Remaining: 95 * time.Second,
			Players:   players(p1, p2),
		},
		Pickups: []spawn.Pickup{pickup},
		Buffed:  [2]bool{true, false},
	})

	x, y := r.ToScreen(p1.Position, 60, 20)
	ch, _, style, _ := s.GetContent(x, y)
	if ch != '1' {
		t.Fatalf("player 1 glyph at (%d,%d) = %q", x, y, ch)
	}
	if _, bg, _ := style.Decompose(); bg != rgbColor(mask.Red.Color()) {
		t.Errorf("player 1 background = %v, want mask color", bg)
	}

	// Bottom-right corner of the world maps to the last interior cell
	ch, _, _, _ = s.GetContent(58, 17)
	if ch != glyphPickup {
		t.Errorf("pickup glyph = %q", ch)
	}

	if top := row(s, 0); !strings.Contains(top, "1:35") {
		t.Errorf("top bar = %q, want clock", top)
	}
	hud := row(s, 19)
	if !strings.HasPrefix(hud, "P1 ♥♥· Red +") {
		t.Errorf("hud = %q", hud)
	}
	if !strings.HasSuffix(hud, "P2 ♥♥♥ no mask") {
		t.Errorf("hud = %q", hud)
	}
}

func TestEndScreenHeadline(t *testing.T) {
	tests := []struct {
		name   string
		winner core.Option[core.EntityID]
		want   string
	}{
		{"winner", core.Some(core.Player2), "Player 2 wins"},
		{"draw", core.None[core.EntityID](), "Draw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScreen(t, 60, 20)
			testRenderer().Draw(s, Frame{Match: match.Snapshot{
				Phase:  match.PhaseEnded,
				Result: core.Some(match.EndResult{Winner: tt.winner}),
			}})
			text := screenText(s)
			if !strings.Contains(text, tt.want) || !strings.Contains(text, returnText) {
				t.Errorf("end screen missing %q\n%s", tt.want, text)
			}
		})
	}
}

func TestOverlayToggle(t *testing.T) {
	s := newScreen(t, 60, 20)
	r := testRenderer()
	frame := Frame{Match: match.Snapshot{Phase: match.PhasePlaying}, Status: []string{"spawn.live: 2"}}

	r.Draw(s, frame)
	if strings.Contains(screenText(s), "spawn.live") {
		t.Fatal("overlay shown while off")
	}
	r.ToggleOverlay()
	r.Draw(s, frame)
	if !strings.Contains(row(s, 2), "spawn.live: 2") {
		t.Errorf("overlay row = %q", row(s, 2))
	}
	r.ToggleOverlay()
	if r.Overlay() {
		t.Error("overlay still on")
	}
}

func TestTooSmall(t *testing.T) {
	s := newScreen(t, 10, 4)
	testRenderer().Draw(s, Frame{Match: match.Snapshot{Phase: match.PhasePlaying}})
	if !strings.Contains(screenText(s), "terminal") {
		t.Errorf("screen = %q", screenText(s))
	}
}

func TestFormatClock(t *testing.T) {
	tests := map[time.Duration]string{
		0:                      "0:00",
		-time.Second:           "0:00",
		500 * time.Millisecond: "0:01",
		time.Minute:            "1:00",
		180 * time.Second:      "3:00",
	}
	for d, want := range tests {
		if got := formatClock(d); got != want {
			t.Errorf("formatClock(%v) = %q, want %q", d, got, want)
		}
	}
}
