package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagLogFile     string
	flagGravity     float64
	flagFlapImpulse float64
	flagSpeed       float64
	flagGap         float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Space/Up/W/Enter - Flap (the first flap starts the run)
  P/Esc            - Pause / resume
  R                - Restart
  Ctrl+S           - Save a screenshot to ~/.flappy/screenshots
  ?                - Show all keys
  Q/Ctrl+C         - Quit

Tuning flags override the values from the config file.

Examples:
  flappy play
  flappy play --seed 42
  flappy play --gap 180 --speed 120
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.flappy/flappy.log", "Path to the play log")
	playCmd.Flags().Float64Var(&flagGravity, "gravity", 0, "Gravity in px/s^2")
	playCmd.Flags().Float64Var(&flagFlapImpulse, "flap", 0, "Flap velocity in px/s (negative is up)")
	playCmd.Flags().Float64Var(&flagSpeed, "speed", 0, "Pipe scroll speed in px/s")
	playCmd.Flags().Float64Var(&flagGap, "gap", 0, "Vertical gap between pipes in px")
}

// applyPlayFlags overrides config values with the tuning flags that were set.
func applyPlayFlags(cmd *cobra.Command, cfg config.FlappyConfig) (config.FlappyConfig, error) {
	flags := cmd.Flags()
	if flags.Changed("gravity") {
		cfg.Physics.Gravity = flagGravity
	}
	if flags.Changed("flap") {
		cfg.Physics.FlapImpulse = flagFlapImpulse
	}
	if flags.Changed("speed") {
		cfg.Physics.ScrollSpeed = flagSpeed
	}
	if flags.Changed("gap") {
		cfg.Obstacles.GapSize = flagGap
	}
	return cfg, cfg.Validate()
}

func runPlay(cmd *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	gameCfg, err = applyPlayFlags(cmd, gameCfg)
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if f, logErr := openLogFile(flagLogFile); logErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", logErr)
	} else {
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "flappy")
	if err != nil {
		return err
	}

	runtime := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without persistence", "error", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}

	opts := []flappy.Option{flappy.WithLogger(logger)}
	if store != nil {
		opts = append(opts, flappy.WithBestStore(store.BestStore(flappy.GameID)))
	}
	game := flappy.New(gameCfg, runtime, opts...)
	logger.Info("starting",
		"seed", runtime.Seed,
		"fps", runtime.TickRate,
		"size", fmt.Sprintf("%dx%d", runtime.ScreenW, runtime.ScreenH),
	)

	if err := tui.Run(game, store, runtime, tui.WithModelLogger(logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
