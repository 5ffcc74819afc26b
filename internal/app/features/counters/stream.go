package counters

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/dalemusser/earthpulse/internal/app/system/counter"
	"github.com/dalemusser/earthpulse/internal/app/system/numfmt"
	"github.com/dalemusser/earthpulse/internal/app/system/timeouts"
	"github.com/dalemusser/earthpulse/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// frameJSON is the data payload of an "event: frame".
type frameJSON struct {
	ID       string  `json:"id"`
	Value    int     `json:"value"`
	Display  string  `json:"display"`
	Progress float64 `json:"progress"`
	Settled  bool    `json:"settled"`
}

type doneJSON struct {
	Set    string `json:"set"`
	Frames int    `json:"frames"`
}

// mailbox keeps the newest frame per counter. Observers write into it from
// the frame loop and the stream writer drains it, so a slow client skips
// intermediate values but always sees the latest one.
type mailbox struct {
	mu     sync.Mutex
	latest map[string]counter.Frame
	notify chan struct{}
}

func newMailbox() *mailbox {
	return &mailbox{
		latest: make(map[string]counter.Frame),
		notify: make(chan struct{}, 1),
	}
}

func (m *mailbox) put(id string, f counter.Frame) {
	m.mu.Lock()
	m.latest[id] = f
	m.mu.Unlock()

	select {
	case m.notify <- struct{}{}:
	default:
	}
}

func (m *mailbox) take() map[string]counter.Frame {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.latest
	m.latest = make(map[string]counter.Frame, len(out))
	return out
}

// ServeStream handles GET /counters/{set}/stream.
//
// Every counter in the set is activated on the shared frame loop. Frames are
// sent as server-sent events until all counters settle, then "event: done"
// closes the stream. A client disconnect stops the counters.
func (h *Handler) ServeStream(w http.ResponseWriter, r *http.Request) {
	set, ok := h.lookup(w, r)
	if !ok {
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		h.writeError(w, r, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	streamID := uuid.NewString()
	tag := numfmt.ResolveTag(r)
	log := h.Log.With(
		zap.String("stream_id", streamID),
		zap.String("set", set.Name),
		zap.Duration("duration", set.Duration),
	)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.StreamBudget(set.Duration), log, "counter stream")
	defer cancel()

	box := newMailbox()
	counters := make([]*counter.Counter, len(set.Counters))
	for i, spec := range set.Counters {
		id := spec.ID
		counters[i] = counter.New(h.Clock, h.Sched,
			counter.WithLogger(log),
			counter.WithObserver(func(f counter.Frame) { box.put(id, f) }),
		)
	}
	defer func() {
		for _, c := range counters {
			c.Stop()
		}
	}()

	hdr := w.Header()
	hdr.Set("Content-Type", "text/event-stream")
	hdr.Set("Cache-Control", "no-cache")
	hdr.Set("Connection", "keep-alive")
	hdr.Set("X-Content-Type-Options", "nosniff")
	hdr.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, ": stream %s\n\n", streamID)
	flusher.Flush()

	for i, spec := range set.Counters {
		counters[i].Activate(spec.Target, set.Duration)
	}
	log.Debug("counter stream opened", zap.Int("counters", len(counters)))

	ev := &eventWriter{w: w, streamID: streamID}
	settled := make(map[string]bool, len(set.Counters))

	for {
		select {
		case <-ctx.Done():
			log.Debug("counter stream closed early",
				zap.Error(ctx.Err()),
				zap.Int("frames", ev.seq))
			return
		case <-box.notify:
		}

		frames := box.take()
		for _, spec := range set.Counters {
			f, ok := frames[spec.ID]
			if !ok {
				continue
			}
			if err := ev.frame(spec, f, tag); err != nil {
				log.Debug("counter stream write failed", zap.Error(err))
				return
			}
			if f.State == counter.Settled {
				settled[spec.ID] = true
			}
		}
		flusher.Flush()

		if len(settled) == len(set.Counters) {
			if err := ev.done(set.Name); err != nil {
				log.Debug("counter stream write failed", zap.Error(err))
				return
			}
			flusher.Flush()
			log.Debug("counter stream finished", zap.Int("frames", ev.seq))
			return
		}
	}
}

type eventWriter struct {
	w        http.ResponseWriter
	streamID string
	seq      int
}

func (e *eventWriter) frame(spec models.CounterSpec, f counter.Frame, tag language.Tag) error {
	e.seq++
	data, err := json.Marshal(frameJSON{
		ID:       spec.ID,
		Value:    f.Value,
		Display:  numfmt.Display(tag, spec, f.Value),
		Progress: f.Progress,
		Settled:  f.State == counter.Settled,
	})
	if err != nil {
		return fmt.Errorf("marshal frame %s: %w", spec.ID, err)
	}
	_, err = fmt.Fprintf(e.w, "event: frame\nid: %s-%d\ndata: %s\n\n", e.streamID, e.seq, data)
	return err
}

func (e *eventWriter) done(set string) error {
	data, err := json.Marshal(doneJSON{Set: set, Frames: e.seq})
	if err != nil {
		return fmt.Errorf("marshal done: %w", err)
	}
	_, err = fmt.Fprintf(e.w, "event: done\ndata: %s\n\n", data)
	return err
}
