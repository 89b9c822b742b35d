package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	ActorBody     = '●'
	ActorRising   = '◥'
	ActorLevel    = '▶'
	ActorFalling  = '◢'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
	DirtChar      = '░'
)

// tiltThreshold picks the rising/falling glyph.
const tiltThreshold = 0.2

// actorGlyph returns the nose glyph for a tilt.
func actorGlyph(tilt float64) rune {
	switch {
	case tilt <= -tiltThreshold:
		return ActorRising
	case tilt >= tiltThreshold:
		return ActorFalling
	default:
		return ActorLevel
	}
}

// viewport maps world pixels onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	return viewport{
		sx: float64(dst.Width()) / snap.FieldWidth,
		sy: float64(dst.Height()) / snap.FieldHeight,
	}
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return int(math.Floor(y * v.sy)) }

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws a snapshot to the screen. It works for any screen
// size; the whole field is always scaled to fit.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || snap.FieldWidth <= 0 || snap.FieldHeight <= 0 {
		return
	}
	vp := newViewport(dst, snap)

	groundRow := vp.row(snap.FieldHeight - snap.GroundHeight)
	if groundRow >= dst.Height() {
		groundRow = dst.Height() - 1
	}

	for _, p := range snap.Pipes {
		drawPipe(dst, vp, p, groundRow)
	}

	// Ground band
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorOrange)
	dst.DrawRect(0, groundRow+1, dst.Width(), dst.Height()-groundRow-1, DirtChar, core.ColorOrange)

	// Actor
	ax, ay := vp.col(snap.ActorX), vp.row(snap.ActorY)
	dst.SetColor(ax-1, ay, ActorBody, core.ColorBrightYellow)
	dst.SetColor(ax, ay, actorGlyph(snap.Tilt), core.ColorYellow)

	// HUD
	dst.DrawTextColor(2, 0, fmt.Sprintf(" Score: %d  Best: %d ", snap.Score, snap.Best), core.ColorWhite)

	switch snap.Phase {
	case PhaseNotStarted:
		drawCenteredMessage(dst, "FLAPPY", "Press Space to flap", core.ColorCyan)
	case PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorCyan)
	case PhaseOver:
		title := "GAME OVER"
		if snap.NewBest {
			title = "GAME OVER - NEW BEST!"
		}
		subtitle := fmt.Sprintf("Hit the %s  |  Score: %d  |  Press R to restart", snap.Hit, snap.Score)
		drawCenteredMessage(dst, title, subtitle, core.ColorRed)
	}
}

// drawPipe renders a single pipe above the ground row.
func drawPipe(dst *core.Screen, vp viewport, p PipeView, groundRow int) {
	x0 := vp.col(p.X)
	x1 := vp.col(p.X + p.Width)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	w := x1 - x0
	gapTop := vp.row(p.GapTop)
	gapBottom := int(math.Ceil(p.GapBottom * vp.sy))

	color := core.ColorGreen
	if p.Counted {
		color = core.ColorGray
	}

	// Top section (from top of screen to gap), capped at its lower end
	dst.DrawRect(x0, 0, w, gapTop, PipeChar, color)
	if gapTop > 0 {
		dst.DrawHLine(x0, gapTop-1, w, PipeCapTop, core.ColorBrightGreen)
	}

	// Bottom section (from gap to ground), capped at its upper end
	if gapBottom < groundRow {
		dst.DrawRect(x0, gapBottom, w, groundRow-gapBottom, PipeChar, color)
		dst.DrawHLine(x0, gapBottom, w, PipeCapBottom, core.ColorBrightGreen)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))
	boxW := core.Min(core.Max(titleLen, subtitleLen)+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, c)

	dst.DrawTextColor(boxX+(boxW-titleLen)/2, boxY+1, title, c)
	dst.DrawTextColor(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle, core.ColorWhite)
}
