package counters_test

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/earthpulse/internal/app/features/counters"
	"github.com/dalemusser/earthpulse/internal/app/store/catalog"
	"github.com/dalemusser/earthpulse/internal/app/system/counter"
	"github.com/dalemusser/earthpulse/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, loop *counter.FrameLoop) http.Handler {
	t.Helper()
	h := counters.NewHandler(loop, counter.SystemClock{}, 0, zap.NewNop())
	r := chi.NewRouter()
	r.Mount("/counters", counters.Routes(h))
	return r
}

func newRunningLoop(t *testing.T) *counter.FrameLoop {
	t.Helper()
	loop := counter.NewFrameLoop(time.Millisecond, zap.NewNop())
	loop.Start()
	t.Cleanup(loop.Stop)
	return loop
}

type sseEvent struct {
	Name string
	ID   string
	Data string
}

func parseEvents(t *testing.T, body string) []sseEvent {
	t.Helper()
	var events []sseEvent
	var cur sseEvent
	sc := bufio.NewScanner(strings.NewReader(body))
	for sc.Scan() {
		line := sc.Text()
		switch {
		case line == "":
			if cur.Name != "" {
				events = append(events, cur)
			}
			cur = sseEvent{}
		case strings.HasPrefix(line, "event: "):
			cur.Name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "id: "):
			cur.ID = strings.TrimPrefix(line, "id: ")
		case strings.HasPrefix(line, "data: "):
			cur.Data = strings.TrimPrefix(line, "data: ")
		}
	}
	return events
}

type frameData struct {
	ID       string  `json:"id"`
	Value    int     `json:"value"`
	Display  string  `json:"display"`
	Progress float64 `json:"progress"`
	Settled  bool    `json:"settled"`
}

func TestServeStream_RunsSetToTargets(t *testing.T) {
	router := newTestRouter(t, newRunningLoop(t))

	req := httptest.NewRequest("GET", "/counters/hero/stream?duration=100", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type: got %q, want text/event-stream", ct)
	}
	for name, want := range map[string]string{
		"Cache-Control":          "no-cache",
		"X-Content-Type-Options": "nosniff",
	} {
		if got := rec.Header().Get(name); got != want {
			t.Errorf("%s: got %q, want %q", name, got, want)
		}
	}

	events := parseEvents(t, rec.Body.String())
	if len(events) < 2 {
		t.Fatalf("events: got %d, want frames plus done", len(events))
	}
	if last := events[len(events)-1]; last.Name != "done" {
		t.Fatalf("last event: got %q, want done", last.Name)
	}

	final := map[string]frameData{}
	prev := map[string]int{}
	for _, ev := range events[:len(events)-1] {
		if ev.Name != "frame" {
			t.Fatalf("unexpected event %q before done", ev.Name)
		}
		var f frameData
		if err := json.Unmarshal([]byte(ev.Data), &f); err != nil {
			t.Fatalf("decode frame %q: %v", ev.Data, err)
		}
		if f.Value < prev[f.ID] {
			t.Errorf("%s decreased: %d -> %d", f.ID, prev[f.ID], f.Value)
		}
		prev[f.ID] = f.Value
		final[f.ID] = f
	}

	set, _ := catalog.CounterSet(catalog.SetHero)
	for _, spec := range set.Counters {
		f, ok := final[spec.ID]
		if !ok {
			t.Errorf("%s: no frames", spec.ID)
			continue
		}
		if f.Value != spec.Target || !f.Settled || f.Progress != 1 {
			t.Errorf("%s final frame: got %+v, want settled at %d", spec.ID, f, spec.Target)
		}
	}
	if got := final["species-tracked"].Display; got != "2.5M+" {
		t.Errorf("species-tracked display: got %q, want 2.5M+", got)
	}
	if got := final["countries"].Display; got != "150+" {
		t.Errorf("countries display: got %q, want 150+", got)
	}
}

func TestServeStream_EventIDsShareStreamPrefix(t *testing.T) {
	router := newTestRouter(t, newRunningLoop(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/counters/dashboard/stream?duration=100", nil))

	var prefix string
	for _, ev := range parseEvents(t, rec.Body.String()) {
		if ev.Name != "frame" {
			continue
		}
		i := strings.LastIndexByte(ev.ID, '-')
		if i < 0 {
			t.Fatalf("event id %q has no sequence", ev.ID)
		}
		if prefix == "" {
			prefix = ev.ID[:i]
		} else if ev.ID[:i] != prefix {
			t.Fatalf("event id %q does not share prefix %q", ev.ID, prefix)
		}
	}
	if prefix == "" {
		t.Fatal("no frame events")
	}
}

func TestServeStream_LocaleDisplay(t *testing.T) {
	router := newTestRouter(t, newRunningLoop(t))

	req := httptest.NewRequest("GET", "/counters/wildlife/stream?duration=100", nil)
	req.Header.Set("Accept-Language", "de-DE")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if !strings.Contains(rec.Body.String(), `"display":"4.080"`) {
		t.Errorf("expected German grouping for 4080 in stream")
	}
}

func TestServeStream_DisconnectStopsCounters(t *testing.T) {
	loop := counter.NewFrameLoop(time.Millisecond, zap.NewNop())
	router := newTestRouter(t, loop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest("GET", "/counters/preview/stream", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if strings.Contains(rec.Body.String(), "event: done") {
		t.Error("cancelled stream should not finish")
	}
	if got := loop.Pending(); got != 0 {
		t.Errorf("pending frames after disconnect: got %d, want 0", got)
	}
}

func TestServeStream_BudgetEndsStalledStream(t *testing.T) {
	t.Cleanup(timeouts.Reset)
	timeouts.Configure(timeouts.Config{StreamGrace: time.Millisecond})

	// A loop that never starts leaves every counter stuck at its first frame.
	loop := counter.NewFrameLoop(time.Millisecond, zap.NewNop())
	router := newTestRouter(t, loop)

	done := make(chan struct{})
	rec := httptest.NewRecorder()
	go func() {
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/counters/hero/stream?duration=100", nil))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("stream outlived its budget")
	}
	if strings.Contains(rec.Body.String(), "event: done") {
		t.Error("stalled stream should not report done")
	}
	if got := loop.Pending(); got != 0 {
		t.Errorf("pending frames after timeout: got %d, want 0", got)
	}
}

func TestServeStream_UnknownSet(t *testing.T) {
	router := newTestRouter(t, newRunningLoop(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/counters/nope/stream", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body.Error == "" {
		t.Errorf("expected JSON error body, got %q", rec.Body.String())
	}
}

func TestServeStream_BadDuration(t *testing.T) {
	router := newTestRouter(t, newRunningLoop(t))

	for _, v := range []string{"abc", "50", "10001", "-5", "288230376151712504", "99999999999999999999"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/counters/hero/stream?duration="+v, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("duration=%s: got %d, want 400", v, rec.Code)
		}
	}
}

func TestServeSet(t *testing.T) {
	router := newTestRouter(t, newRunningLoop(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/counters/hero", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	var body struct {
		Name       string `json:"name"`
		DurationMS int64  `json:"duration_ms"`
		Stream     string `json:"stream"`
		Counters   []struct {
			ID      string `json:"id"`
			Target  int    `json:"target"`
			Display string `json:"display"`
		} `json:"counters"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Name != "hero" {
		t.Errorf("name: got %q", body.Name)
	}
	if body.DurationMS != counter.DefaultDuration.Milliseconds() {
		t.Errorf("duration_ms: got %d, want %d", body.DurationMS, counter.DefaultDuration.Milliseconds())
	}
	if body.Stream != "/counters/hero/stream" {
		t.Errorf("stream: got %q", body.Stream)
	}
	if len(body.Counters) != 2 || body.Counters[0].Display != "2.5M+" {
		t.Errorf("counters: got %+v", body.Counters)
	}
}

func TestServeSet_DurationOverride(t *testing.T) {
	router := newTestRouter(t, newRunningLoop(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/counters/wildlife?duration=2500", nil))
	if !strings.Contains(rec.Body.String(), `"duration_ms":2500`) {
		t.Errorf("override not applied: %s", rec.Body.String())
	}
}

func TestServeSet_DurationBounds(t *testing.T) {
	router := newTestRouter(t, newRunningLoop(t))

	tests := []struct {
		value    string
		wantCode int
	}{
		{"100", http.StatusOK},
		{"10000", http.StatusOK},
		{"99", http.StatusBadRequest},
		{"10001", http.StatusBadRequest},
		// Large enough to wrap into range if multiplied before checking.
		{"288230376151712504", http.StatusBadRequest},
		{"-9223372036854775808", http.StatusBadRequest},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/counters/hero?duration="+tt.value, nil))
		if rec.Code != tt.wantCode {
			t.Errorf("duration=%s: got %d, want %d (%s)", tt.value, rec.Code, tt.wantCode, rec.Body.String())
		}
	}
}

func TestServeSet_Unknown(t *testing.T) {
	router := newTestRouter(t, newRunningLoop(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/counters/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}
