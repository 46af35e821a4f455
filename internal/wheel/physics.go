package wheel

import (
	"fmt"
	"math"
	"time"
)

// Phase is the spin lifecycle: Idle -> Spinning -> Stopped -> Idle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSpinning
	PhaseStopped
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSpinning:
		return "spinning"
	case PhaseStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// PhysicsConfig holds the spin constants. Velocities are radians per tick.
type PhysicsConfig struct {
	Friction     float64 // velocity multiplier per tick, 0 < f < 1
	MinVelocity  float64 // spin stops once velocity falls to this value
	MinSpinSpeed float64 // lower bound of the random initial velocity
	MaxSpinSpeed float64 // upper bound of the random initial velocity
	TickRate     int     // physics ticks per second of elapsed time
}

// DefaultPhysics returns the standard wheel feel: roughly a 10-15 second spin.
func DefaultPhysics() PhysicsConfig {
	return PhysicsConfig{
		Friction:     0.995,
		MinVelocity:  0.01,
		MinSpinSpeed: 0.3,
		MaxSpinSpeed: 0.7,
		TickRate:     60,
	}
}

// Validate checks that every spin terminates.
func (c PhysicsConfig) Validate() error {
	switch {
	case c.Friction <= 0 || c.Friction >= 1:
		return fmt.Errorf("%w: friction %v must be in (0, 1)", ErrInvalidPhysics, c.Friction)
	case c.MinVelocity <= 0:
		return fmt.Errorf("%w: min velocity %v must be positive", ErrInvalidPhysics, c.MinVelocity)
	case c.MinSpinSpeed <= 0 || c.MaxSpinSpeed < c.MinSpinSpeed:
		return fmt.Errorf("%w: spin speed range [%v, %v] is empty", ErrInvalidPhysics, c.MinSpinSpeed, c.MaxSpinSpeed)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %d must be positive", ErrInvalidPhysics, c.TickRate)
	}
	return nil
}

// TickInterval returns the elapsed time represented by one physics tick.
func (c PhysicsConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// TicksToStop returns the number of ticks a spin started at v0 needs
// before velocity decays to MinVelocity.
func (c PhysicsConfig) TicksToStop(v0 float64) int {
	if v0 <= c.MinVelocity {
		return 0
	}
	return int(math.Ceil(math.Log(c.MinVelocity/v0) / math.Log(c.Friction)))
}

// Travel returns the total rotation a spin started at v0 covers.
func (c PhysicsConfig) Travel(v0 float64) float64 {
	n := c.TicksToStop(v0)
	return v0 * (1 - math.Pow(c.Friction, float64(n))) / (1 - c.Friction)
}

// Physics integrates the wheel rotation. It is not safe for concurrent use;
// the platform calls it from a single frame loop.
type Physics struct {
	cfg      PhysicsConfig
	angle    float64
	velocity float64
	phase    Phase
	pending  time.Duration // elapsed time not yet consumed by whole ticks
	ticks    int           // ticks in the current spin
}

// NewPhysics creates an idle integrator at angle 0.
func NewPhysics(cfg PhysicsConfig) *Physics {
	return &Physics{cfg: cfg}
}

// Config returns the physics constants.
func (p *Physics) Config() PhysicsConfig {
	return p.cfg
}

// Angle returns the accumulated rotation in radians (unbounded).
func (p *Physics) Angle() float64 {
	return p.angle
}

// Velocity returns the current angular velocity in radians per tick.
func (p *Physics) Velocity() float64 {
	return p.velocity
}

// Phase returns the lifecycle phase.
func (p *Physics) Phase() Phase {
	return p.phase
}

// Spinning reports whether a spin is in progress.
func (p *Physics) Spinning() bool {
	return p.phase == PhaseSpinning
}

// Ticks returns the number of ticks run by the current (or last) spin.
func (p *Physics) Ticks() int {
	return p.ticks
}

// Start begins a spin at velocity v. It does nothing and returns false while
// already spinning, or when v is too slow to move the wheel at all.
func (p *Physics) Start(v float64) bool {
	if p.phase == PhaseSpinning || v <= p.cfg.MinVelocity {
		return false
	}
	p.velocity = v
	p.phase = PhaseSpinning
	p.pending = 0
	p.ticks = 0
	return true
}

// Step runs one tick. It returns true on the tick the wheel comes to rest.
func (p *Physics) Step() bool {
	if p.phase != PhaseSpinning {
		return false
	}

	p.angle += p.velocity
	p.velocity *= p.cfg.Friction
	p.ticks++

	if p.velocity <= p.cfg.MinVelocity {
		p.velocity = 0
		p.phase = PhaseStopped
		p.pending = 0
		return true
	}
	return false
}

// Advance consumes elapsed time in whole ticks, carrying the remainder to the
// next call so the trajectory does not depend on the caller's frame rate.
// It returns true if the wheel came to rest during this call.
func (p *Physics) Advance(dt time.Duration) bool {
	if p.phase != PhaseSpinning || dt <= 0 {
		return false
	}

	p.pending += dt
	interval := p.cfg.TickInterval()
	for p.pending >= interval {
		p.pending -= interval
		if p.Step() {
			return true
		}
	}
	return false
}

// Settle moves a stopped wheel back to idle once its result has been handled.
func (p *Physics) Settle() {
	if p.phase == PhaseStopped {
		p.phase = PhaseIdle
	}
}

// SetAngle places the wheel at an absolute rotation.
func (p *Physics) SetAngle(a float64) {
	p.angle = a
}
