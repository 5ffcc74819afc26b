package about_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/earthpulse/internal/app/features/about"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *about.Handler {
	t.Helper()
	return about.NewHandler(zap.NewNop())
}

func TestNewHandler(t *testing.T) {
	h := newTestHandler(t)
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
}

func TestServeAbout(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeAbout(rec, httptest.NewRequest("GET", "/about", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"About Digital Nervous System",
		"glass-nav",
		`href="/wildlife"`,
		`href="/citizen"`,
		"Education Hub",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}
