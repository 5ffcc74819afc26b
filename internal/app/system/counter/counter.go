package counter

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Clock reads the current time. Implementations must be monotonic.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock. time.Now carries a monotonic reading, so
// subtracting two values is immune to wall-clock jumps.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Scheduler runs fn once on the next frame. The returned cancel func drops fn
// if it has not run yet; calling it after fn ran is a no-op.
type Scheduler interface {
	RequestFrame(fn func()) (cancel func())
}

// State is the lifecycle position of a Counter.
type State int

const (
	Idle State = iota
	Running
	Settled
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Settled:
		return "settled"
	default:
		return "idle"
	}
}

// Target is what one run animates toward.
type Target struct {
	Value    int
	Duration time.Duration
}

// Frame is the observable state of a Counter after a tick.
type Frame struct {
	Value      int
	Progress   float64
	State      State
	Generation uint64
}

// Option configures a Counter.
type Option func(*Counter)

// WithObserver registers fn to receive every emitted frame.
//
// fn is called with the counter's lock held. It must not block and must not
// call back into the Counter.
func WithObserver(fn func(Frame)) Option {
	return func(c *Counter) { c.observe = fn }
}

// WithLogger sets the logger used for lifecycle debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Counter) {
		if logger != nil {
			c.log = logger
		}
	}
}

// Counter interpolates a displayed integer toward a target, one scheduled
// frame at a time. It is safe for concurrent use.
type Counter struct {
	clock   Clock
	sched   Scheduler
	observe func(Frame)
	log     *zap.Logger

	mu     sync.Mutex
	target Target
	start  time.Time
	gen    uint64
	frame  Frame
	cancel func()
}

// New returns an idle Counter.
func New(clock Clock, sched Scheduler, opts ...Option) *Counter {
	c := &Counter{
		clock: clock,
		sched: sched,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Activate starts a new run toward target. Any run in progress is abandoned:
// its pending frame is cancelled and any of its ticks that still fire are
// ignored. The displayed value restarts from 0.
//
// A non-positive duration means DefaultDuration.
func (c *Counter) Activate(target int, duration time.Duration) {
	if duration <= 0 {
		duration = DefaultDuration
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelPending()
	c.gen++
	c.target = Target{Value: target, Duration: duration}
	c.start = c.clock.Now()
	c.frame = Frame{State: Running, Generation: c.gen}
	c.schedule(c.gen)

	c.log.Debug("counter activated",
		zap.Int("target", target),
		zap.Duration("duration", duration),
		zap.Uint64("generation", c.gen))
}

// Stop tears the counter down. The pending frame is cancelled, the current
// run is invalidated and the counter returns to Idle.
func (c *Counter) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelPending()
	c.gen++
	c.frame = Frame{State: Idle, Generation: c.gen}
}

// Snapshot returns the most recent frame.
func (c *Counter) Snapshot() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame
}

// Target returns the target of the current or most recent run.
func (c *Counter) Target() Target {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *Counter) tick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen || c.frame.State != Running {
		return
	}
	c.cancel = nil

	elapsed := c.clock.Now().Sub(c.start)
	value, progress := Interpolate(c.target.Value, c.target.Duration, elapsed)
	c.frame.Value = value
	c.frame.Progress = progress

	if progress >= 1 {
		c.frame.State = Settled
		c.log.Debug("counter settled",
			zap.Int("value", value),
			zap.Duration("elapsed", elapsed),
			zap.Uint64("generation", gen))
	} else {
		c.schedule(gen)
	}

	if c.observe != nil {
		c.observe(c.frame)
	}
}

// schedule requires c.mu.
func (c *Counter) schedule(gen uint64) {
	c.cancel = c.sched.RequestFrame(func() { c.tick(gen) })
}

// cancelPending requires c.mu.
func (c *Counter) cancelPending() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
