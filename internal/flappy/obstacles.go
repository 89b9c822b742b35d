package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Pipe is a vertical obstacle with a gap for the actor to pass through.
type Pipe struct {
	X       float64 // Left edge, px
	GapTop  float64 // Y where the gap starts
	Counted bool    // Whether passing this pipe has been scored
}

// Right returns the x-coordinate of the pipe's trailing edge.
func (p Pipe) Right(width float64) float64 {
	return p.X + width
}

// TopRect returns the collision rectangle from the field top to the gap.
func (p Pipe) TopRect(width float64) core.Rect {
	return core.NewRect(p.X, 0, width, p.GapTop)
}

// BottomRect returns the collision rectangle from the gap bottom to the ground band.
func (p Pipe) BottomRect(width, gapSize, playHeight float64) core.Rect {
	bottomY := p.GapTop + gapSize
	return core.NewRect(p.X, bottomY, width, playHeight-bottomY)
}

// PipeManager owns the ordered queue of pipes. Pipes are appended on the
// right and removed on the left only, so the queue is always sorted by X.
type PipeManager struct {
	pipes []Pipe
	rng   *rand.Rand
	cfg   config.FlappyConfig
}

// NewPipeManager creates a pipe manager drawing gap positions from rng.
func NewPipeManager(cfg config.FlappyConfig, rng *rand.Rand) *PipeManager {
	pm := &PipeManager{
		pipes: make([]Pipe, 0, 8),
		cfg:   cfg,
	}
	pm.Reset(rng)
	return pm
}

// Reset clears all pipes and installs a new random source.
func (pm *PipeManager) Reset(rng *rand.Rand) {
	pm.pipes = pm.pipes[:0]
	pm.rng = rng
}

// Spawn appends a new pipe just past the right edge of the field.
// The gap top is uniform in [MinTop, MaxGapTop], which keeps both halves of
// the gap clear of the field top and the ground by their margins.
func (pm *PipeManager) Spawn() Pipe {
	minTop := pm.cfg.Obstacles.MinTop
	maxTop := pm.cfg.MaxGapTop()

	gapTop := minTop
	if maxTop > minTop {
		gapTop = minTop + pm.rng.Float64()*(maxTop-minTop)
	}

	pipe := Pipe{
		X:      pm.cfg.World.Width + pm.cfg.Obstacles.SpawnOffset,
		GapTop: gapTop,
	}
	pm.pipes = append(pm.pipes, pipe)
	return pipe
}

// Advance scrolls every pipe left by speed*dt.
func (pm *PipeManager) Advance(dt, speed float64) {
	dx := speed * dt
	for i := range pm.pipes {
		pm.pipes[i].X -= dx
	}
}

// Prune removes pipes from the front of the queue whose trailing edge has
// left the field. Returns the number removed.
func (pm *PipeManager) Prune() int {
	width := pm.cfg.Obstacles.Width
	n := 0
	for n < len(pm.pipes) && pm.pipes[n].Right(width) < 0 {
		n++
	}
	if n > 0 {
		pm.pipes = append(pm.pipes[:0], pm.pipes[n:]...)
	}
	return n
}

// UpdateScore marks every uncounted pipe whose trailing edge is behind
// actorFrontX and returns how many were newly passed.
func (pm *PipeManager) UpdateScore(actorFrontX float64) int {
	width := pm.cfg.Obstacles.Width
	passed := 0
	for i := range pm.pipes {
		p := &pm.pipes[i]
		if p.X > actorFrontX {
			break // queue is sorted, the rest are further right
		}
		if !p.Counted && actorFrontX > p.Right(width) {
			p.Counted = true
			passed++
		}
	}
	return passed
}

// Collides reports whether the circle hits the top or bottom half of any pipe.
func (pm *PipeManager) Collides(cx, cy, radius float64) bool {
	width := pm.cfg.Obstacles.Width
	gap := pm.cfg.Obstacles.GapSize
	playHeight := pm.cfg.PlayHeight()
	for _, p := range pm.pipes {
		if circleIntersectsRect(cx, cy, radius, p.TopRect(width)) ||
			circleIntersectsRect(cx, cy, radius, p.BottomRect(width, gap, playHeight)) {
			return true
		}
	}
	return false
}

// Pipes returns a copy of the current queue, leftmost first.
func (pm *PipeManager) Pipes() []Pipe {
	out := make([]Pipe, len(pm.pipes))
	copy(out, pm.pipes)
	return out
}

// Len returns the number of pipes in the queue.
func (pm *PipeManager) Len() int {
	return len(pm.pipes)
}
