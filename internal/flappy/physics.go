package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Tilt limits for rendering, in radians.
const (
	tiltScale = 500.0
	maxTilt   = 0.6
)

// Actor is the falling entity. Its horizontal position is fixed by the
// config; the world scrolls past it.
type Actor struct {
	Y        float64 // Center, px from the top of the field
	Velocity float64 // px/s, positive is down
}

// Integrate advances the actor by dt seconds under gravity.
// Velocity is updated first and the new velocity moves the position.
func (a *Actor) Integrate(dt, gravity float64) {
	a.Velocity += gravity * dt
	a.Y += a.Velocity * dt
}

// Flap replaces the velocity with the impulse. It does not add to it.
func (a *Actor) Flap(impulse float64) {
	a.Velocity = impulse
}

// Tilt returns the render-only rotation derived from velocity.
func (a Actor) Tilt() float64 {
	return core.ClampF(a.Velocity/tiltScale, -maxTilt, maxTilt)
}
