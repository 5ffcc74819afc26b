package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/earthpulse/internal/app/system/numfmt"
	"github.com/dalemusser/earthpulse/internal/app/system/timeouts"
	"github.com/dalemusser/earthpulse/internal/app/system/viewdata"
	"github.com/dalemusser/earthpulse/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

func testAppConfig() AppConfig {
	return AppConfig{
		SiteName:             "EarthPulse",
		ShortName:            "EP",
		BaseURL:              "https://earthpulse.test",
		CounterDuration:      100 * time.Millisecond,
		CounterFrameInterval: time.Millisecond,
		PageTimeout:          2 * time.Second,
		StreamGrace:          2 * time.Second,
		DefaultLang:          "en",
		StreamRateLimit:      2,
	}
}

func resetShared(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		timeouts.Reset()
		numfmt.Configure(language.English)
		viewdata.Init(models.SiteSettings{})
	})
}

// startApp runs the lifecycle hooks up to BuildHandler and stops the frame
// loop when the test ends.
func startApp(t *testing.T, appCfg AppConfig) (http.Handler, DBDeps) {
	t.Helper()
	resetShared(t)

	ctx := context.Background()
	coreCfg := &config.CoreConfig{}
	logger := zap.NewNop()

	deps, err := ConnectDB(ctx, coreCfg, appCfg, logger)
	if err != nil {
		t.Fatalf("ConnectDB: %v", err)
	}
	if err := EnsureSchema(ctx, coreCfg, appCfg, deps, logger); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	if err := Startup(ctx, coreCfg, appCfg, deps, logger); err != nil {
		t.Fatalf("Startup: %v", err)
	}
	t.Cleanup(func() { _ = Shutdown(ctx, coreCfg, appCfg, deps, logger) })

	h, err := BuildHandler(coreCfg, appCfg, deps, logger)
	if err != nil {
		t.Fatalf("BuildHandler: %v", err)
	}
	return h, deps
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"defaults", func(*AppConfig) {}, false},
		{"regional language", func(c *AppConfig) { c.DefaultLang = "en-GB" }, false},
		{"german", func(c *AppConfig) { c.DefaultLang = "de" }, false},
		{"zero duration", func(c *AppConfig) { c.CounterDuration = 0 }, true},
		{"negative duration", func(c *AppConfig) { c.CounterDuration = -time.Second }, true},
		{"zero interval", func(c *AppConfig) { c.CounterFrameInterval = 0 }, true},
		{"negative grace", func(c *AppConfig) { c.StreamGrace = -time.Second }, true},
		{"malformed language", func(c *AppConfig) { c.DefaultLang = "not a language" }, true},
		{"unsupported language", func(c *AppConfig) { c.DefaultLang = "ja" }, true},
		{"rate limit disabled", func(c *AppConfig) { c.StreamRateLimit = 0 }, false},
		{"negative rate limit", func(c *AppConfig) { c.StreamRateLimit = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testAppConfig()
			tt.mutate(&cfg)
			err := ValidateConfig(&config.CoreConfig{}, cfg, zap.NewNop())
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStartup_AppliesConfig(t *testing.T) {
	cfg := testAppConfig()
	cfg.DefaultLang = "de"
	cfg.StreamGrace = 3 * time.Second
	cfg.BannerHTML = `<strong>Live</strong><script>alert(1)</script>`

	_, deps := startApp(t, cfg)

	if !deps.Frames.Running() {
		t.Error("frame loop should be running after Startup")
	}
	if got := numfmt.Default(); got != language.German {
		t.Errorf("default language: got %v, want de", got)
	}
	if got := timeouts.StreamGrace(); got != 3*time.Second {
		t.Errorf("stream grace: got %v, want 3s", got)
	}
	s := viewdata.Settings()
	if s.SiteName != "EarthPulse" {
		t.Errorf("site name: got %q", s.SiteName)
	}
	if strings.Contains(s.BannerHTML, "<script") {
		t.Errorf("banner not sanitized: %q", s.BannerHTML)
	}
}

func TestStartup_RequiresFrameLoop(t *testing.T) {
	resetShared(t)
	err := Startup(context.Background(), &config.CoreConfig{}, testAppConfig(), DBDeps{}, zap.NewNop())
	if err == nil {
		t.Error("Startup without a frame loop should fail")
	}
}

func TestShutdown_StopsFrameLoop(t *testing.T) {
	h, deps := startApp(t, testAppConfig())

	if err := Shutdown(context.Background(), &config.CoreConfig{}, testAppConfig(), deps, zap.NewNop()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if deps.Frames.Running() {
		t.Error("frame loop still running after Shutdown")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("health after shutdown: got %d, want 503", rec.Code)
	}
}

func TestBuildHandler_Pages(t *testing.T) {
	h, _ := startApp(t, testAppConfig())

	paths := []string{"/", "/wildlife", "/marine", "/forest", "/research", "/dashboard", "/about"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("status: got %d, want 200", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("content type: got %q", ct)
			}
			if !strings.Contains(rec.Body.String(), "EarthPulse") {
				t.Error("page does not carry the configured site name")
			}
		})
	}
}

func TestBuildHandler_NotFound(t *testing.T) {
	h, _ := startApp(t, testAppConfig())

	for _, path := range []string{"/nope", "/wildlife/tigers"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: got %d, want 404", path, rec.Code)
		}
	}
}

func TestBuildHandler_MethodNotAllowed(t *testing.T) {
	h, _ := startApp(t, testAppConfig())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want 405", rec.Code)
	}
}

func TestBuildHandler_Health(t *testing.T) {
	h, _ := startApp(t, testAppConfig())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var body struct {
		Status    string `json:"status"`
		FrameLoop struct {
			Running bool `json:"running"`
		} `json:"frame_loop"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "ok" || !body.FrameLoop.Running {
		t.Errorf("body: got %+v", body)
	}
}

func TestBuildHandler_CounterSet(t *testing.T) {
	h, _ := startApp(t, testAppConfig())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/counters/hero", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var body struct {
		Name       string `json:"name"`
		DurationMS int64  `json:"duration_ms"`
		Counters   []struct {
			ID string `json:"id"`
		} `json:"counters"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Name != "hero" || len(body.Counters) == 0 {
		t.Errorf("body: got %+v", body)
	}
	if body.DurationMS != 100 {
		t.Errorf("duration_ms: got %d, want the configured 100", body.DurationMS)
	}
}

func TestBuildHandler_CounterStreamRunsToDone(t *testing.T) {
	h, _ := startApp(t, testAppConfig())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/counters/preview/stream?duration=100", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Errorf("content type: got %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "event: frame") {
		t.Error("stream carried no frames")
	}
	if !strings.Contains(body, "event: done") {
		t.Error("stream did not finish with a done event")
	}
}

func TestBuildHandler_StreamRateLimit(t *testing.T) {
	h, _ := startApp(t, testAppConfig())

	codes := make([]int, 3)
	for i := range codes {
		r := httptest.NewRequest(http.MethodGet, "/counters/hero/stream?duration=100", nil)
		r.RemoteAddr = "198.51.100.7:4000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		codes[i] = rec.Code
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("first two streams: got %v, want 200s", codes[:2])
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third stream: got %d, want 429", codes[2])
	}

	// The JSON description is not limited.
	r := httptest.NewRequest(http.MethodGet, "/counters/hero", nil)
	r.RemoteAddr = "198.51.100.7:4000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	if rec.Code != http.StatusOK {
		t.Errorf("set description: got %d, want 200", rec.Code)
	}
}
