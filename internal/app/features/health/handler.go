package health

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// FrameStatus is the view of the frame loop the health check needs.
type FrameStatus interface {
	Running() bool
	Interval() time.Duration
	Frames() uint64
	Pending() int
}

// Handler holds dependencies needed for health checks.
type Handler struct {
	Frames  FrameStatus
	BaseURL string
	Log     *zap.Logger
}

// NewHandler constructs a health Handler with the frame loop and logger.
func NewHandler(frames FrameStatus, baseURL string, logger *zap.Logger) *Handler {
	return &Handler{
		Frames:  frames,
		BaseURL: baseURL,
		Log:     logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status    string          `json:"status"`
	FrameLoop frameLoopStatus `json:"frame_loop"`
	BaseURL   string          `json:"base_url,omitempty"`
	Message   string          `json:"message,omitempty"`
}

type frameLoopStatus struct {
	Running    bool   `json:"running"`
	IntervalMS int64  `json:"interval_ms"`
	Frames     uint64 `json:"frames"`
	Pending    int    `json:"pending"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "frame_loop":{"running":true,"interval_ms":16,"frames":1234,"pending":0} }
//
// When the frame loop is stopped: 503 and
//
//	{ "status":"error", "frame_loop":{"running":false,...}, "message":"Frame loop stopped" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:  "ok",
		BaseURL: h.BaseURL,
		FrameLoop: frameLoopStatus{
			Running:    h.Frames.Running(),
			IntervalMS: h.Frames.Interval().Milliseconds(),
			Frames:     h.Frames.Frames(),
			Pending:    h.Frames.Pending(),
		},
	}

	if !resp.FrameLoop.Running {
		h.Log.Error("health-check: frame loop stopped")
		resp.Status = "error"
		resp.Message = "Frame loop stopped"
		render.Status(r, http.StatusServiceUnavailable)
	}

	render.JSON(w, r, resp)
}
