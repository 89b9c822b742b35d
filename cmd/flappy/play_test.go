package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func newFlagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "play"}
	cmd.Flags().Float64Var(&flagGravity, "gravity", 0, "")
	cmd.Flags().Float64Var(&flagFlapImpulse, "flap", 0, "")
	cmd.Flags().Float64Var(&flagSpeed, "speed", 0, "")
	cmd.Flags().Float64Var(&flagGap, "gap", 0, "")
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	return cmd
}

func TestApplyPlayFlagsOnlyChanged(t *testing.T) {
	cmd := newFlagCmd(t, "--gap", "180")

	cfg, err := applyPlayFlags(cmd, config.DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("applyPlayFlags() failed: %v", err)
	}

	def := config.DefaultFlappyConfig()
	if cfg.Obstacles.GapSize != 180 {
		t.Errorf("GapSize = %v, expected 180", cfg.Obstacles.GapSize)
	}
	if cfg.Physics != def.Physics {
		t.Errorf("unset flags should keep config values, got %+v", cfg.Physics)
	}
}

func TestApplyPlayFlagsValidates(t *testing.T) {
	cmd := newFlagCmd(t, "--speed", "-5")

	if _, err := applyPlayFlags(cmd, config.DefaultFlappyConfig()); err == nil {
		t.Error("negative speed should be rejected")
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	old := flagLogLevel
	t.Cleanup(func() { flagLogLevel = old })

	flagLogLevel = "chatty"
	if _, err := newLogger(io.Discard, "test"); err == nil {
		t.Error("unknown level should be rejected")
	}

	flagLogLevel = "debug"
	if _, err := newLogger(io.Discard, "test"); err != nil {
		t.Errorf("debug should be accepted: %v", err)
	}
}

func TestRunPlayReturnsSetupErrors(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "flappy.yaml")
	if err := os.WriteFile(cfgPath, []byte("physics:\n  gravity: 1500\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	oldConfig, oldLogFile, oldLevel := flagConfig, flagLogFile, flagLogLevel
	t.Cleanup(func() {
		flagConfig, flagLogFile, flagLogLevel = oldConfig, oldLogFile, oldLevel
	})

	flagConfig = cfgPath
	flagLogFile = filepath.Join(dir, "logs", "flappy.log")
	flagLogLevel = "chatty"

	// Fails after the log file is opened; the error must come back to the caller
	if err := runPlay(newFlagCmd(t), nil); err == nil {
		t.Fatal("bad log level should be returned as an error")
	}
	if _, err := os.Stat(flagLogFile); err != nil {
		t.Errorf("log file should have been created: %v", err)
	}

	flagConfig = filepath.Join(dir, "missing.yaml")
	flagLogLevel = "info"
	if err := runPlay(newFlagCmd(t), nil); err == nil {
		t.Error("missing config should be returned as an error")
	}
}
