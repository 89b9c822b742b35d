// Package flappy implements the Flappy Bird-style simulation.
// The player controls an actor that falls under gravity and must pass
// through the gaps in scrolling pipes. The package is host agnostic: a frame
// driver calls Step once per displayed frame with a monotonic timestamp and
// the intents received since the previous frame.
package flappy

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// GameID identifies the game in score storage.
const GameID = "flappy"

// GameTitle is the display name of the game.
const GameTitle = "Flappy Bird"

// Phase is the state of the run's state machine.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Option configures a Game.
type Option func(*Game)

// WithBestStore sets where the best score is loaded from and saved to.
func WithBestStore(store BestStore) Option {
	return func(g *Game) {
		g.store = store
	}
}

// WithLogger sets the logger used for run and persistence events.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithRandSource replaces how the random source for each run is built.
// newRand receives the run's seed.
func WithRandSource(newRand func(seed int64) *rand.Rand) Option {
	return func(g *Game) {
		if newRand != nil {
			g.newRand = newRand
		}
	}
}

// Game owns all mutable simulation state. Every mutation goes through its
// methods on the caller's goroutine; it does no locking of its own.
type Game struct {
	cfg     config.FlappyConfig
	runtime core.RuntimeConfig

	actor   Actor
	pipes   *PipeManager
	scores  *Scoreboard
	phase   Phase
	hit     Hit
	newBest bool // Whether the finished run set a new best

	lastTick  time.Time     // Reference for the next frame's dt
	hasTick   bool          // Whether lastTick is valid
	spawnAcc  time.Duration // Time since the last spawn
	elapsed   time.Duration // Simulated time of the current run
	runFrames uint64        // Frames simulated in the current run
	runs      int64         // Number of resets, mixed into the seed

	store   BestStore
	logger  *log.Logger
	newRand func(seed int64) *rand.Rand
}

// New creates a game in the not-started state.
func New(cfg config.FlappyConfig, runtime core.RuntimeConfig, opts ...Option) *Game {
	g := &Game{
		cfg:     cfg,
		runtime: runtime,
		logger:  log.New(io.Discard),
		newRand: func(seed int64) *rand.Rand {
			return rand.New(rand.NewSource(seed))
		},
	}
	for _, opt := range opts {
		opt(g)
	}

	g.scores = NewScoreboard(g.store, g.logger)
	g.pipes = NewPipeManager(cfg, g.newRand(runtime.Seed))
	g.resetRun()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Config returns the world configuration.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Reset returns to the not-started state from any phase. The best score is kept.
func (g *Game) Reset() {
	g.runs++
	g.pipes.Reset(g.newRand(g.runtime.Seed + g.runs))
	g.resetRun()
	g.logger.Debug("run reset", "best", g.scores.Best())
}

// resetRun reinitialises every per-run field.
func (g *Game) resetRun() {
	g.actor = Actor{Y: g.cfg.PlayHeight() / 2}
	g.scores.ResetScore()
	g.phase = PhaseNotStarted
	g.hit = HitNone
	g.newBest = false
	g.hasTick = false
	g.lastTick = time.Time{}
	g.spawnAcc = 0
	g.elapsed = 0
	g.runFrames = 0
}

// Flap applies the flap impulse. The first flap starts the run.
// Flaps while paused or after the run is over are ignored.
func (g *Game) Flap() {
	switch g.phase {
	case PhaseNotStarted:
		g.phase = PhaseRunning
		g.hasTick = false
		g.actor.Flap(g.cfg.Physics.FlapImpulse)
		g.logger.Debug("run started", "seed", g.runtime.Seed+g.runs)
	case PhaseRunning:
		g.actor.Flap(g.cfg.Physics.FlapImpulse)
	}
}

// TogglePause pauses a running game or resumes a paused one.
// It has no effect before the first flap or after the run is over.
func (g *Game) TogglePause() {
	switch g.phase {
	case PhaseRunning:
		g.phase = PhasePaused
	case PhasePaused:
		g.phase = PhaseRunning
		// Drop the reference so paused wall time never reaches dt.
		g.hasTick = false
	}
}

// Step applies the intents received since the last frame, then advances the
// simulation to now. Intents are applied as Reset, TogglePause, Flap.
func (g *Game) Step(now time.Time, in core.InputFrame) core.StepResult {
	if in.Has(core.ActionReset) {
		g.Reset()
	}
	if in.Has(core.ActionTogglePause) {
		g.TogglePause()
	}
	if in.Has(core.ActionFlap) {
		g.Flap()
	}

	newBest := g.Tick(now)
	return core.StepResult{State: g.State(), NewBest: newBest}
}

// Tick advances the simulation to the monotonic timestamp now.
// Only a running game moves. The first tick after the run starts or resumes
// sets the time reference and does not move anything. Returns true when
// this tick ended the run with a new best score.
func (g *Game) Tick(now time.Time) bool {
	if g.phase != PhaseRunning {
		return false
	}
	if !g.hasTick {
		g.lastTick = now
		g.hasTick = true
		return false
	}

	dt := now.Sub(g.lastTick)
	g.lastTick = now
	if dt < 0 {
		dt = 0
	}
	if dt > g.cfg.Physics.MaxFrameDelta {
		dt = g.cfg.Physics.MaxFrameDelta
	}

	return g.advance(dt)
}

// advance runs one simulation step of dt.
func (g *Game) advance(dt time.Duration) bool {
	sec := dt.Seconds()
	g.elapsed += dt
	g.runFrames++

	g.actor.Integrate(sec, g.cfg.Physics.Gravity)

	g.pipes.Advance(sec, g.cfg.Physics.ScrollSpeed)
	g.pipes.Prune()

	g.spawnAcc += dt
	for g.spawnAcc > g.cfg.Obstacles.SpawnInterval {
		g.spawnAcc -= g.cfg.Obstacles.SpawnInterval
		g.pipes.Spawn()
	}

	if hit := g.checkCollision(); hit != HitNone {
		return g.finish(hit)
	}

	front := g.cfg.Player.X + g.cfg.Player.Radius
	if passed := g.pipes.UpdateScore(front); passed > 0 {
		g.scores.Add(passed)
	}
	return false
}

// finish moves the game to the terminal phase and commits the score.
func (g *Game) finish(hit Hit) bool {
	g.phase = PhaseOver
	g.hit = hit
	newBest := g.scores.Commit()
	g.newBest = newBest
	g.logger.Info("run over",
		"score", g.scores.Score(),
		"best", g.scores.Best(),
		"hit", hit,
		"elapsed", g.elapsed.Round(time.Millisecond),
	)
	return newBest
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current run's score.
func (g *Game) Score() int {
	return g.scores.Score()
}

// Best returns the best score.
func (g *Game) Best() int {
	return g.scores.Best()
}

// State returns the coarse game state for the host.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.scores.Score(),
		Best:     g.scores.Best(),
		Started:  g.phase != PhaseNotStarted,
		Paused:   g.phase == PhasePaused,
		GameOver: g.phase == PhaseOver,
	}
}
