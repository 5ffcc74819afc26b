package counter

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// DefaultFrameInterval is roughly one 60Hz display refresh.
const DefaultFrameInterval = 16 * time.Millisecond

type frameRequest struct {
	id uint64
	fn func()
}

// FrameLoop is the server-side refresh cycle. It implements Scheduler.
//
// A single goroutine ticks at a fixed interval. Each tick runs, in request
// order, every callback that was queued before the tick began. Callbacks
// requested while a frame is running wait for the next one, so a counter
// advances at most once per frame.
type FrameLoop struct {
	interval time.Duration
	log      *zap.Logger

	mu      sync.Mutex
	nextID  uint64
	queue   []frameRequest
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup

	frames atomic.Uint64
}

// NewFrameLoop creates a stopped loop. A non-positive interval means
// DefaultFrameInterval.
func NewFrameLoop(interval time.Duration, logger *zap.Logger) *FrameLoop {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FrameLoop{
		interval: interval,
		log:      logger,
	}
}

// Start begins ticking. Calling Start on a running loop does nothing.
func (l *FrameLoop) Start() {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return
	}
	l.running = true
	l.stopCh = make(chan struct{})
	stopCh := l.stopCh
	l.mu.Unlock()

	l.wg.Add(1)
	go l.run(stopCh)
	l.log.Info("frame loop started", zap.Duration("interval", l.interval))
}

// Stop halts ticking and waits for the current frame to finish. Callbacks
// still queued stay queued and run if the loop is started again.
func (l *FrameLoop) Stop() {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return
	}
	l.running = false
	close(l.stopCh)
	l.mu.Unlock()

	l.wg.Wait()
	l.log.Info("frame loop stopped", zap.Uint64("frames", l.frames.Load()))
}

// Running reports whether the loop is ticking.
func (l *FrameLoop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// Interval returns the time between frames.
func (l *FrameLoop) Interval() time.Duration { return l.interval }

// Frames returns how many frames have run since the loop was created.
func (l *FrameLoop) Frames() uint64 { return l.frames.Load() }

// Pending returns the number of callbacks waiting for a frame.
func (l *FrameLoop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// RequestFrame queues fn for the next frame.
func (l *FrameLoop) RequestFrame(fn func()) func() {
	l.mu.Lock()
	l.nextID++
	id := l.nextID
	l.queue = append(l.queue, frameRequest{id: id, fn: fn})
	l.mu.Unlock()

	return func() { l.remove(id) }
}

func (l *FrameLoop) remove(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, req := range l.queue {
		if req.id == id {
			l.queue = append(l.queue[:i], l.queue[i+1:]...)
			return
		}
	}
}

func (l *FrameLoop) run(stopCh <-chan struct{}) {
	defer l.wg.Done()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			l.frame()
		}
	}
}

func (l *FrameLoop) frame() {
	l.mu.Lock()
	batch := l.queue
	l.queue = nil
	l.mu.Unlock()

	for _, req := range batch {
		l.call(req)
	}
	l.frames.Add(1)
}

func (l *FrameLoop) call(req frameRequest) {
	defer func() {
		if rec := recover(); rec != nil {
			l.log.Error("frame callback panicked",
				zap.Uint64("request_id", req.id),
				zap.Any("panic", rec))
		}
	}()
	req.fn()
}
