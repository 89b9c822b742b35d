package flappy

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestGameRender(t *testing.T) {
	rt := testRuntime(1)
	g := New(config.DefaultFlappyConfig(), rt)

	screen := core.NewScreen(rt.ScreenW, rt.ScreenH)
	g.Render(screen)

	str := screen.String()
	if strings.TrimSpace(strings.ReplaceAll(str, "\n", "")) == "" {
		t.Fatal("Render should draw something to the screen")
	}

	// Ground line sits at the top of the ground band
	cfg := g.Config()
	groundRow := int(math.Floor(cfg.PlayHeight() * (float64(rt.ScreenH) / cfg.World.Height)))
	if screen.Get(0, groundRow) != GroundChar {
		t.Errorf("Ground should be drawn at row %d, got %q", groundRow, screen.Get(0, groundRow))
	}
	if screen.Get(0, rt.ScreenH-1) != DirtChar {
		t.Errorf("Ground band should fill the bottom rows, got %q", screen.Get(0, rt.ScreenH-1))
	}

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD should show the score, row 0 = %q", screen.Row(0))
	}
	if !strings.Contains(str, "Press Space to flap") {
		t.Error("not-started overlay should show the help prompt")
	}
}

func TestRenderOverlays(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), testRuntime(1))
	screen := core.NewScreen(80, 24)

	g.Flap()
	g.Tick(frameTime(0))
	g.TogglePause()
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}

	g.TogglePause()
	g.Tick(frameTime(1))
	g.actor.Y = g.cfg.PlayHeight()
	g.Tick(frameTime(2))
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") || !strings.Contains(screen.String(), "Hit the ground") {
		t.Errorf("game over overlay missing:\n%s", screen.String())
	}
}

func TestRenderPipes(t *testing.T) {
	snap := Snapshot{
		Phase:        PhaseRunning,
		FieldWidth:   80,
		FieldHeight:  24,
		GroundHeight: 4,
		ActorX:       10,
		ActorY:       10,
		Pipes: []PipeView{
			{X: 40, Width: 5, GapTop: 6, GapBottom: 12},
		},
	}
	// One world pixel per cell
	screen := core.NewScreen(80, 24)
	RenderSnapshot(screen, snap)

	if screen.Get(42, 2) != PipeChar {
		t.Errorf("top pipe body missing, got %q", screen.Get(42, 2))
	}
	if screen.Get(42, 5) != PipeCapTop {
		t.Errorf("top pipe cap missing, got %q", screen.Get(42, 5))
	}
	if screen.Get(42, 8) != ' ' {
		t.Errorf("gap should be empty, got %q", screen.Get(42, 8))
	}
	if screen.Get(42, 12) != PipeCapBottom {
		t.Errorf("bottom pipe cap missing, got %q", screen.Get(42, 12))
	}
	if screen.Get(42, 15) != PipeChar {
		t.Errorf("bottom pipe body missing, got %q", screen.Get(42, 15))
	}
	if screen.Get(42, 20) != GroundChar {
		t.Errorf("ground should cover the pipe foot, got %q", screen.Get(42, 20))
	}
	if screen.Get(10, 10) != ActorLevel || screen.Get(9, 10) != ActorBody {
		t.Errorf("actor missing at (10, 10): %q%q", screen.Get(9, 10), screen.Get(10, 10))
	}
}

func TestActorGlyph(t *testing.T) {
	if actorGlyph(-0.6) != ActorRising || actorGlyph(0) != ActorLevel || actorGlyph(0.6) != ActorFalling {
		t.Error("actor glyph should follow tilt")
	}
}

func TestRenderEmptyScreen(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), testRuntime(1))
	// Must not panic
	g.Render(core.NewScreen(0, 0))
}

func TestRenderNewBestOnlyWhenSet(t *testing.T) {
	snap := Snapshot{
		Phase:        PhaseOver,
		Hit:          HitPipe,
		Score:        4,
		Best:         4,
		FieldWidth:   480,
		FieldHeight:  640,
		GroundHeight: 80,
	}
	screen := core.NewScreen(80, 24)

	// Tying the stored best is not a new best
	RenderSnapshot(screen, snap)
	if strings.Contains(screen.String(), "NEW BEST") {
		t.Error("tie should not be announced as a new best")
	}

	snap.NewBest = true
	RenderSnapshot(screen, snap)
	if !strings.Contains(screen.String(), "NEW BEST") {
		t.Error("new best should be announced")
	}
	if !strings.Contains(screen.String(), "Hit the pipe") {
		t.Error("overlay should name the hit cause")
	}
}
