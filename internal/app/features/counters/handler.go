package counters

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dalemusser/earthpulse/internal/app/store/catalog"
	"github.com/dalemusser/earthpulse/internal/app/system/counter"
	"github.com/dalemusser/earthpulse/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// Bounds for the ?duration= override, in milliseconds.
const (
	MinDuration = 100 * time.Millisecond
	MaxDuration = 10 * time.Second
)

// Handler serves counter sets as JSON and as animated event streams.
type Handler struct {
	Sched    counter.Scheduler
	Clock    counter.Clock
	Duration time.Duration // used when a set has no duration of its own
	Log      *zap.Logger
}

func NewHandler(sched counter.Scheduler, clock counter.Clock, duration time.Duration, logger *zap.Logger) *Handler {
	if duration <= 0 {
		duration = counter.DefaultDuration
	}
	return &Handler{
		Sched:    sched,
		Clock:    clock,
		Duration: duration,
		Log:      logger,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: msg})
}

// lookup resolves {set} and the optional duration override. On failure it
// has already written the error response.
func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (models.CounterSet, bool) {
	name := chi.URLParam(r, "set")
	set, ok := catalog.CounterSet(name)
	if !ok {
		h.writeError(w, r, http.StatusNotFound, "unknown counter set")
		return models.CounterSet{}, false
	}
	set = catalog.WithDuration(set, h.Duration)

	if v := r.URL.Query().Get("duration"); v != "" {
		// Range-check in milliseconds; converting first can overflow.
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil || ms < MinDuration.Milliseconds() || ms > MaxDuration.Milliseconds() {
			h.writeError(w, r, http.StatusBadRequest, "duration must be between 100 and 10000 milliseconds")
			return models.CounterSet{}, false
		}
		set.Duration = time.Duration(ms) * time.Millisecond
	}
	return set, true
}
