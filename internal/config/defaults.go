package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the reference configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: FlappyWorld{
			Width:        480,
			Height:       640,
			GroundHeight: 80,
		},
		Physics: FlappyPhysics{
			Gravity:       1800,
			FlapImpulse:   -420,
			ScrollSpeed:   160,
			MaxFrameDelta: 33 * time.Millisecond,
		},
		Obstacles: FlappyObstacles{
			Width:           70,
			GapSize:         150,
			SpawnInterval:   1400 * time.Millisecond,
			SpawnOffset:     10,
			MinTop:          60,
			MinBottomMargin: 60,
		},
		Player: FlappyPlayer{
			X:      120,
			Radius: 14,
		},
	}
}
