package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Hit describes what ended a run.
type Hit int

const (
	HitNone Hit = iota
	HitGround
	HitCeiling
	HitPipe
)

// String returns a human-readable name for the hit.
func (h Hit) String() string {
	switch h {
	case HitNone:
		return "none"
	case HitGround:
		return "ground"
	case HitCeiling:
		return "ceiling"
	case HitPipe:
		return "pipe"
	default:
		return "unknown"
	}
}

func circleIntersectsRect(cx, cy, radius float64, r core.Rect) bool {
	return core.CircleIntersectsRect(cx, cy, radius, r)
}

// checkCollision returns the first terminal condition met by the actor,
// testing ground, ceiling and then pipes.
func (g *Game) checkCollision() Hit {
	r := g.cfg.Player.Radius
	y := g.actor.Y

	if y+r >= g.cfg.PlayHeight() {
		return HitGround
	}
	if y-r <= 0 {
		return HitCeiling
	}
	if g.pipes.Collides(g.cfg.Player.X, y, r) {
		return HitPipe
	}
	return HitNone
}
