package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/earthpulse/internal/app/features/health"
	"github.com/dalemusser/earthpulse/internal/app/system/counter"
	"go.uber.org/zap"
)

type healthBody struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	FrameLoop struct {
		Running    bool   `json:"running"`
		IntervalMS int64  `json:"interval_ms"`
		Frames     uint64 `json:"frames"`
		Pending    int    `json:"pending"`
	} `json:"frame_loop"`
}

func serve(t *testing.T, loop *counter.FrameLoop) (*httptest.ResponseRecorder, healthBody) {
	t.Helper()
	handler := health.NewHandler(loop, "http://localhost:8080", zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	var body healthBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return rec, body
}

func TestServe_LoopRunning(t *testing.T) {
	loop := counter.NewFrameLoop(16*time.Millisecond, zap.NewNop())
	loop.Start()
	t.Cleanup(loop.Stop)

	rec, body := serve(t, loop)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type: got %q, want application/json", ct)
	}
	if body.Status != "ok" {
		t.Errorf("status: got %q, want %q", body.Status, "ok")
	}
	if !body.FrameLoop.Running {
		t.Error("frame_loop.running: got false, want true")
	}
	if body.FrameLoop.IntervalMS != 16 {
		t.Errorf("frame_loop.interval_ms: got %d, want 16", body.FrameLoop.IntervalMS)
	}
}

func TestServe_LoopStopped(t *testing.T) {
	loop := counter.NewFrameLoop(0, zap.NewNop())

	rec, body := serve(t, loop)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
	if body.Status != "error" || body.Message == "" {
		t.Errorf("body: got %+v, want error with message", body)
	}
}
