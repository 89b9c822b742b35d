// Package config provides YAML-based game configuration loading
// for the flappy game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all configuration for the game. Every length is in
// world pixels; the renderer scales the world to the terminal.
type FlappyConfig struct {
	World     FlappyWorld     `yaml:"world"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Player    FlappyPlayer    `yaml:"player"`
}

// FlappyWorld defines the play field.
type FlappyWorld struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// FlappyPhysics defines motion parameters.
type FlappyPhysics struct {
	Gravity       float64       `yaml:"gravity"`         // px/s², positive is down
	FlapImpulse   float64       `yaml:"flap_impulse"`    // px/s, negative is up
	ScrollSpeed   float64       `yaml:"scroll_speed"`    // px/s
	MaxFrameDelta time.Duration `yaml:"max_frame_delta"` // cap on a single frame's dt
}

// FlappyObstacles defines obstacle parameters.
type FlappyObstacles struct {
	Width           float64       `yaml:"width"`
	GapSize         float64       `yaml:"gap_size"`
	SpawnInterval   time.Duration `yaml:"spawn_interval"`
	SpawnOffset     float64       `yaml:"spawn_offset"` // distance past the right edge
	MinTop          float64       `yaml:"min_top"`
	MinBottomMargin float64       `yaml:"min_bottom_margin"`
}

// FlappyPlayer defines the actor.
type FlappyPlayer struct {
	X      float64 `yaml:"x"`
	Radius float64 `yaml:"radius"`
}

// PlayHeight returns the height of the field above the ground band.
func (c FlappyConfig) PlayHeight() float64 {
	return c.World.Height - c.World.GroundHeight
}

// MaxGapTop returns the largest gap top that keeps the gap inside the margins.
func (c FlappyConfig) MaxGapTop() float64 {
	return c.PlayHeight() - c.Obstacles.GapSize - c.Obstacles.MinBottomMargin
}

// Validate checks that the configuration describes a playable field.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.World.GroundHeight < 0 || c.World.GroundHeight >= c.World.Height {
		errs = append(errs, fmt.Errorf("ground_height %v must be within [0, height)", c.World.GroundHeight))
	}
	if c.Physics.ScrollSpeed <= 0 {
		errs = append(errs, fmt.Errorf("scroll_speed must be positive, got %v", c.Physics.ScrollSpeed))
	}
	if c.Physics.MaxFrameDelta <= 0 {
		errs = append(errs, fmt.Errorf("max_frame_delta must be positive, got %v", c.Physics.MaxFrameDelta))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.GapSize <= 0 {
		errs = append(errs, errors.New("obstacle width and gap_size must be positive"))
	}
	if c.Obstacles.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("spawn_interval must be positive, got %v", c.Obstacles.SpawnInterval))
	}
	if c.Obstacles.MinTop < 0 || c.Obstacles.MinBottomMargin < 0 {
		errs = append(errs, errors.New("obstacle margins must not be negative"))
	}
	if c.MaxGapTop() < c.Obstacles.MinTop {
		errs = append(errs, fmt.Errorf("gap of %v with margins %v/%v does not fit a play height of %v",
			c.Obstacles.GapSize, c.Obstacles.MinTop, c.Obstacles.MinBottomMargin, c.PlayHeight()))
	}
	if c.Player.Radius <= 0 {
		errs = append(errs, fmt.Errorf("player radius must be positive, got %v", c.Player.Radius))
	}
	if c.Player.X < 0 || c.Player.X > c.World.Width {
		errs = append(errs, fmt.Errorf("player x %v must be inside the field", c.Player.X))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid flappy config: %w", errors.Join(errs...))
	}
	return nil
}
