package flappy

import "time"

// PipeView is the read-only geometry of one pipe.
type PipeView struct {
	X         float64
	Width     float64
	GapTop    float64
	GapBottom float64
	Counted   bool
}

// Snapshot is everything a renderer needs to draw one frame.
type Snapshot struct {
	Phase   Phase
	Hit     Hit
	Score   int
	Best    int
	NewBest bool
	Elapsed time.Duration
	Frames  uint64

	ActorX   float64
	ActorY   float64
	Radius   float64
	Velocity float64
	Tilt     float64

	Pipes []PipeView

	FieldWidth   float64
	FieldHeight  float64
	GroundHeight float64
}

// Snapshot returns the current frame state. The result shares nothing with the game.
func (g *Game) Snapshot() Snapshot {
	width := g.cfg.Obstacles.Width
	gap := g.cfg.Obstacles.GapSize

	pipes := g.pipes.Pipes()
	views := make([]PipeView, len(pipes))
	for i, p := range pipes {
		views[i] = PipeView{
			X:         p.X,
			Width:     width,
			GapTop:    p.GapTop,
			GapBottom: p.GapTop + gap,
			Counted:   p.Counted,
		}
	}

	return Snapshot{
		Phase:        g.phase,
		Hit:          g.hit,
		Score:        g.scores.Score(),
		Best:         g.scores.Best(),
		NewBest:      g.newBest,
		Elapsed:      g.elapsed,
		Frames:       g.runFrames,
		ActorX:       g.cfg.Player.X,
		ActorY:       g.actor.Y,
		Radius:       g.cfg.Player.Radius,
		Velocity:     g.actor.Velocity,
		Tilt:         g.actor.Tilt(),
		Pipes:        views,
		FieldWidth:   g.cfg.World.Width,
		FieldHeight:  g.cfg.World.Height,
		GroundHeight: g.cfg.World.GroundHeight,
	}
}
