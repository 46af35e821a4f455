package wheel

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Result identifies the segment under the pointer.
type Result struct {
	Index   int
	Segment Segment
}

// StopEvent is delivered once per spin, after the wheel comes to rest.
type StopEvent struct {
	Mode      Mode
	Index     int
	Segment   Segment
	Round     int                 // round the spin belonged to
	Angle     float64             // rest angle, before any elimination reset
	Record    *EliminationRecord  // elimination mode only
	Finished  bool                // the tournament has a champion
	Champion  *EliminationRecord  // set together with Finished
	Standings []EliminationRecord // full classification, set together with Finished
}

// FrameEvent is delivered after every frame that moved the wheel.
type FrameEvent struct {
	Angle    float64
	Velocity float64
	Tick     int
}

// Option configures a Wheel.
type Option func(*Wheel)

// WithPhysics overrides the spin constants.
func WithPhysics(cfg PhysicsConfig) Option {
	return func(w *Wheel) {
		w.physicsCfg = cfg
	}
}

// WithSeed seeds the initial-velocity RNG for reproducible spins.
func WithSeed(seed int64) Option {
	return func(w *Wheel) {
		w.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the RNG used for initial velocities.
func WithRand(rng *rand.Rand) Option {
	return func(w *Wheel) {
		w.rng = rng
	}
}

// WithLogger sets the logger used for spin diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(w *Wheel) {
		w.logger = logger
	}
}

// WithStopListener registers a callback for stop events.
func WithStopListener(fn func(StopEvent)) Option {
	return func(w *Wheel) {
		w.onStop = append(w.onStop, fn)
	}
}

// WithFrameListener registers a callback for frame events.
func WithFrameListener(fn func(FrameEvent)) Option {
	return func(w *Wheel) {
		w.onFrame = append(w.onFrame, fn)
	}
}

// Wheel is one wheel instance: a tournament driven by spin physics.
// It is owned by a single caller and must not be shared between goroutines.
type Wheel struct {
	physicsCfg PhysicsConfig
	physics    *Physics
	tournament *Tournament
	rng        *rand.Rand
	logger     *log.Logger
	onStop     []func(StopEvent)
	onFrame    []func(FrameEvent)
	last       *StopEvent
}

// New builds a wheel from the given segments. Inactive segments are dropped;
// at least one active segment is required in normal mode and two in
// elimination mode.
func New(segments []Segment, mode Mode, opts ...Option) (*Wheel, error) {
	if mode != ModeNormal && mode != ModeElimination {
		return nil, fmt.Errorf("%w %q", ErrInvalidMode, mode)
	}

	active := ActiveSegments(segments)
	if len(active) < mode.MinSegments() {
		return nil, fmt.Errorf("%w: %s mode needs at least %d active segments, got %d",
			ErrInvalidSegmentCount, mode, mode.MinSegments(), len(active))
	}

	w := &Wheel{
		physicsCfg: DefaultPhysics(),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := w.physicsCfg.Validate(); err != nil {
		return nil, err
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if w.logger == nil {
		w.logger = log.New(io.Discard)
	}

	w.physics = NewPhysics(w.physicsCfg)
	w.tournament = NewTournament(mode, active)
	return w, nil
}

// Mode returns the wheel mode.
func (w *Wheel) Mode() Mode {
	return w.tournament.Mode()
}

// Angle returns the current rotation in radians.
func (w *Wheel) Angle() float64 {
	return w.physics.Angle()
}

// Velocity returns the current angular velocity in radians per tick.
func (w *Wheel) Velocity() float64 {
	return w.physics.Velocity()
}

// Phase returns the spin lifecycle phase.
func (w *Wheel) Phase() Phase {
	return w.physics.Phase()
}

// Spinning reports whether a spin is in progress.
func (w *Wheel) Spinning() bool {
	return w.physics.Spinning()
}

// Physics returns the spin constants in use.
func (w *Wheel) Physics() PhysicsConfig {
	return w.physicsCfg
}

// Segments returns the segments currently on the wheel.
func (w *Wheel) Segments() []Segment {
	return w.tournament.Remaining()
}

// Original returns the segments the wheel was created with (active only).
func (w *Wheel) Original() []Segment {
	return w.tournament.Original()
}

// Round returns the current round, starting at 1.
func (w *Wheel) Round() int {
	return w.tournament.Round()
}

// Finished reports whether an elimination tournament has a champion.
func (w *Wheel) Finished() bool {
	return w.tournament.Finished()
}

// EliminationOrder returns eliminated segments in the order they left.
func (w *Wheel) EliminationOrder() []EliminationRecord {
	return w.tournament.EliminationOrder()
}

// Standings returns the classification sorted by position.
func (w *Wheel) Standings() []EliminationRecord {
	return w.tournament.Standings()
}

// LastStop returns the most recent stop event, if any since creation or reset.
func (w *Wheel) LastStop() (StopEvent, bool) {
	if w.last == nil {
		return StopEvent{}, false
	}
	return *w.last, true
}

// CanSpin reports whether Spin would start a spin right now.
func (w *Wheel) CanSpin() bool {
	return !w.tournament.Finished() && !w.physics.Spinning()
}

// Spin starts a spin at a random velocity in the configured range.
// It is ignored (returns false) while spinning or after the tournament finished.
func (w *Wheel) Spin() bool {
	if !w.CanSpin() {
		return false
	}
	v := w.physicsCfg.MinSpinSpeed + w.rng.Float64()*(w.physicsCfg.MaxSpinSpeed-w.physicsCfg.MinSpinSpeed)
	return w.SpinWithVelocity(v)
}

// SpinWithVelocity starts a spin at an exact initial velocity (radians per tick).
func (w *Wheel) SpinWithVelocity(v float64) bool {
	if !w.CanSpin() {
		return false
	}
	if !w.physics.Start(v) {
		return false
	}
	w.logger.Debug("spin started",
		"velocity", v,
		"round", w.tournament.Round(),
		"segments", w.tournament.Len(),
		"expected_ticks", w.physicsCfg.TicksToStop(v),
	)
	return true
}

// Winner returns the segment currently under the pointer. During a spin the
// value is only indicative; the authoritative result is the stop event.
func (w *Wheel) Winner() Result {
	idx := Resolve(w.physics.Angle(), w.tournament.Len())
	if idx < 0 {
		return Result{Index: -1}
	}
	return Result{Index: idx, Segment: w.tournament.remaining[idx]}
}

// Step runs a single physics tick and returns the stop event if the wheel
// came to rest on it.
func (w *Wheel) Step() *StopEvent {
	if !w.physics.Spinning() {
		return nil
	}
	stopped := w.physics.Step()
	w.emitFrame()
	if stopped {
		return w.stop()
	}
	return nil
}

// Advance feeds elapsed wall time into the physics and returns the stop event
// if the wheel came to rest during it.
func (w *Wheel) Advance(dt time.Duration) *StopEvent {
	if !w.physics.Spinning() {
		return nil
	}
	stopped := w.physics.Advance(dt)
	w.emitFrame()
	if stopped {
		return w.stop()
	}
	return nil
}

// RunToStop ticks the current spin to completion without a frame source.
// It returns false if no spin was in progress.
func (w *Wheel) RunToStop() (StopEvent, bool) {
	for w.physics.Spinning() {
		if ev := w.Step(); ev != nil {
			return *ev, true
		}
	}
	return StopEvent{}, false
}

// Reset restores the original segments, clears standings, returns to round 1
// and puts the wheel back at angle 0. A spin in progress keeps its velocity
// and still runs to completion.
func (w *Wheel) Reset() {
	w.tournament.Reset()
	w.physics.SetAngle(0)
	w.last = nil
	w.logger.Debug("wheel reset", "segments", w.tournament.Len(), "mode", w.tournament.Mode())
}

// stop resolves the rest angle, applies the tournament rules and notifies listeners.
func (w *Wheel) stop() *StopEvent {
	angle := w.physics.Angle()
	round := w.tournament.Round()
	detail := Explain(angle, w.tournament.Len())

	outcome := w.tournament.Apply(detail.Index)
	w.physics.Settle()

	ev := StopEvent{
		Mode:     w.tournament.Mode(),
		Index:    outcome.Index,
		Segment:  outcome.Segment,
		Round:    round,
		Angle:    angle,
		Record:   outcome.Record,
		Finished: outcome.Finished,
		Champion: outcome.Champion,
	}
	if outcome.Finished {
		ev.Standings = w.tournament.Standings()
	}

	w.logger.Debug("spin stopped",
		"angle", angle,
		"effective", detail.Effective,
		"diff", detail.Diff,
		"index", outcome.Index,
		"segment", outcome.Segment.Text,
		"ticks", w.physics.Ticks(),
	)

	if outcome.Record != nil {
		// The next round starts from the layout position.
		w.physics.SetAngle(0)
		w.logger.Debug("segment eliminated",
			"segment", outcome.Record.Segment.Text,
			"position", outcome.Record.Position,
			"round", outcome.Record.Round,
			"remaining", w.tournament.Len(),
		)
	}
	if outcome.Champion != nil {
		w.logger.Info("tournament finished",
			"champion", outcome.Champion.Segment.Text,
			"rounds", outcome.Champion.Round-1,
		)
	}

	w.last = &ev
	for _, fn := range w.onStop {
		fn(ev)
	}
	return &ev
}

func (w *Wheel) emitFrame() {
	if len(w.onFrame) == 0 {
		return
	}
	ev := FrameEvent{
		Angle:    w.physics.Angle(),
		Velocity: w.physics.Velocity(),
		Tick:     w.physics.Ticks(),
	}
	for _, fn := range w.onFrame {
		fn(ev)
	}
}
