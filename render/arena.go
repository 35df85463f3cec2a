// Package render draws the match onto a terminal screen
package render

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mask-arena/core"
	"github.com/lixenwraith/mask-arena/mask"
	"github.com/lixenwraith/mask-arena/match"
	"github.com/lixenwraith/mask-arena/spawn"
	"github.com/lixenwraith/mask-arena/vmath"
)

// Canvas is the drawing surface, satisfied by tcell.Screen
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Frame is everything one redraw needs, copied under the scheduler lock
type Frame struct {
	Match   match.Snapshot
	Pickups []spawn.Pickup
	// Buffed marks seats with an active speed buff
	Buffed [2]bool
	// Status lines for the debug overlay
	Status []string
}

const (
	glyphPickup  = '◆'
	glyphHeart   = '♥'
	glyphEmpty   = '·'
	minWidth     = 24
	minHeight    = 8
	titleText    = "MASK ARENA"
	beginText    = "SPACE to begin"
	returnText   = "R to return"
	tooSmallText = "terminal too small"
)

var (
	styleBase   = tcell.StyleDefault
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHealth = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

var helpLines = []string{
	"P1  WASD move  F attack  Z pickup",
	"P2  arrows move  L/Enter attack  / pickup",
	"Q quit  F1 status",
}

// ArenaRenderer maps world coordinates to the screen and draws each phase
type ArenaRenderer struct {
	world   vmath.Rect
	overlay atomic.Bool
}

// NewArenaRenderer creates a renderer for the given world rectangle
func NewArenaRenderer(world vmath.Rect) *ArenaRenderer {
	return &ArenaRenderer{world: world}
}

// ToggleOverlay flips the debug status overlay, safe from any goroutine
func (r *ArenaRenderer) ToggleOverlay() {
	for {
		old := r.overlay.Load()
		if r.overlay.CompareAndSwap(old, !old) {
			return
		}
	}
}

// Overlay reports whether the status overlay is shown
func (r *ArenaRenderer) Overlay() bool {
	return r.overlay.Load()
}

// Draw paints a full frame; callers show the screen afterwards
func (r *ArenaRenderer) Draw(c Canvas, f Frame) {
	w, h := c.Size()
	fill(c, w, h)

	if w < minWidth || h < minHeight {
		drawCentered(c, w, h/2, tooSmallText, styleDim)
		return
	}

	r.drawTopBar(c, w, f.Match)
	r.drawBorder(c, w, h)

	switch f.Match.Phase {
	case match.PhaseStartScreen:
		r.drawStartScreen(c, w, h)
	case match.PhaseCountdown:
		r.drawEntities(c, w, h, f)
		drawCentered(c, w, h/2, fmt.Sprintf("%d", f.Match.Countdown), styleTitle)
	case match.PhasePlaying:
		r.drawEntities(c, w, h, f)
	case match.PhaseEnded:
		r.drawEntities(c, w, h, f)
		r.drawEndScreen(c, w, h, f.Match)
	}

	r.drawHUD(c, w, h, f)

	if r.overlay.Load() {
		for i, line := range f.Status {
			y := 2 + i
			if y >= h-2 {
				break
			}
			drawText(c, 1, y, line, styleDim)
		}
	}
}

// ToScreen maps a world point into the arena interior
func (r *ArenaRenderer) ToScreen(p vmath.Vec2, w, h int) (x, y int) {
	innerW, innerH := w-2, h-4
	if r.world.Empty() || innerW <= 0 || innerH <= 0 {
		return w / 2, h / 2
	}
	p = r.world.ClampPoint(p)
	fx := (p.X - r.world.Min.X) / r.world.Width()
	fy := (p.Y - r.world.Min.Y) / r.world.Height()
	x = 1 + int(fx*float64(innerW-1)+0.5)
	y = 2 + int(fy*float64(innerH-1)+0.5)
	return x, y
}

func (r *ArenaRenderer) drawTopBar(c Canvas, w int, s match.Snapshot) {
	drawText(c, 0, 0, titleText, styleTitle)
	switch s.Phase {
	case match.PhasePlaying, match.PhaseEnded:
		drawCentered(c, w, 0, formatClock(s.Remaining), styleTitle)
	case match.PhaseCountdown:
		drawCentered(c, w, 0, "get ready", styleDim)
	}
	phase := strings.ToLower(s.Phase.String())
	drawText(c, w-len(phase), 0, phase, styleDim)
}

func (r *ArenaRenderer) drawBorder(c Canvas, w, h int) {
	top, bottom := 1, h-2
	for x := 1; x < w-1; x++ {
		c.SetContent(x, top, tcell.RuneHLine, nil, styleBorder)
		c.SetContent(x, bottom, tcell.RuneHLine, nil, styleBorder)
	}
	for y := top + 1; y < bottom; y++ {
		c.SetContent(0, y, tcell.RuneVLine, nil, styleBorder)
		c.SetContent(w-1, y, tcell.RuneVLine, nil, styleBorder)
	}
	c.SetContent(0, top, tcell.RuneULCorner, nil, styleBorder)
	c.SetContent(w-1, top, tcell.RuneURCorner, nil, styleBorder)
	c.SetContent(0, bottom, tcell.RuneLLCorner, nil, styleBorder)
	c.SetContent(w-1, bottom, tcell.RuneLRCorner, nil, styleBorder)
}

func (r *ArenaRenderer) drawStartScreen(c Canvas, w, h int) {
	mid := h / 2
	drawCentered(c, w, mid-2, titleText, styleTitle)
	drawCentered(c, w, mid-1, beginText, styleBase)
	for i, line := range helpLines {
		if y := mid + 1 + i; y < h-2 {
			drawCentered(c, w, y, line, styleDim)
		}
	}
}

func (r *ArenaRenderer) drawEndScreen(c Canvas, w, h int, s match.Snapshot) {
	headline := "Match over"
	if res, ok := s.Result.Get(); ok {
		headline = res.Headline()
	}
	mid := h / 2
	drawCentered(c, w, mid-1, headline, styleTitle)
	drawCentered(c, w, mid, returnText, styleDim)
}

func (r *ArenaRenderer) drawEntities(c Canvas, w, h int, f Frame) {
	for _, p := range f.Pickups {
		x, y := r.ToScreen(p.Position, w, h)
		c.SetContent(x, y, glyphPickup, nil, styleBase.Foreground(maskColor(p.Kind)))
	}
	for _, pv := range f.Match.Players {
		if pv.Health <= 0 {
			continue
		}
		x, y := r.ToScreen(pv.Position, w, h)
		style := styleBase.Foreground(tcell.ColorBlack).Background(tcell.ColorGray).Bold(true)
		if k, ok := pv.Mask.Get(); ok {
			style = style.Background(maskColor(k))
		}
		c.SetContent(x, y, seatGlyph(pv.ID), nil, style)
	}
}

func (r *ArenaRenderer) drawHUD(c Canvas, w, h int, f Frame) {
	y := h - 1
	for _, pv := range f.Match.Players {
		text := hudText(pv, f.Buffed[max(pv.ID.Index(), 0)])
		x := 0
		if pv.ID == core.Player2 {
			x = w - len([]rune(text))
		}
		drawHUDEntry(c, x, y, pv, text)
	}
}

// hudText is "P1 ♥♥· Red" with a '+' when buffed
func hudText(pv match.PlayerView, buffed bool) string {
	var b strings.Builder
	b.WriteRune('P')
	b.WriteRune(seatGlyph(pv.ID))
	b.WriteByte(' ')
	for i := 0; i < pv.MaxHealth; i++ {
		if i < pv.Health {
			b.WriteRune(glyphHeart)
		} else {
			b.WriteRune(glyphEmpty)
		}
	}
	b.WriteByte(' ')
	if k, ok := pv.Mask.Get(); ok {
		b.WriteString(k.String())
	} else {
		b.WriteString("no mask")
	}
	if buffed {
		b.WriteString(" +")
	}
	return b.String()
}

func drawHUDEntry(c Canvas, x, y int, pv match.PlayerView, text string) {
	for i, ch := range []rune(text) {
		style := styleBase
		switch {
		case ch == glyphHeart:
			style = styleHealth
		case i >= 3+pv.MaxHealth+1:
			if k, ok := pv.Mask.Get(); ok {
				style = styleBase.Foreground(maskColor(k))
			}
		}
		c.SetContent(x+i, y, ch, nil, style)
	}
}

func seatGlyph(id core.EntityID) rune {
	if id == core.Player2 {
		return '2'
	}
	return '1'
}

func maskColor(k mask.Kind) tcell.Color {
	return rgbColor(k.Color())
}

func rgbColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// formatClock renders remaining time as m:ss, rounding up so 0:00 only shows at expiry
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func fill(c Canvas, w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.SetContent(x, y, ' ', nil, styleBase)
		}
	}
}

func drawText(c Canvas, x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		c.SetContent(x+i, y, ch, nil, style)
	}
}

func drawCentered(c Canvas, w, y int, s string, style tcell.Style) {
	x := (w - len([]rune(s))) / 2
	drawText(c, max(x, 0), y, s, style)
}
