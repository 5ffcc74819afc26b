package dashboard_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/earthpulse/internal/app/features/dashboard"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *dashboard.Handler {
	t.Helper()
	return dashboard.NewHandler(zap.NewNop())
}

func TestServeDashboard(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeDashboard(rec, httptest.NewRequest("GET", "/dashboard", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"Conservation Insights",
		"bg-primary/10 border-primary/20",
		`data-counter-stream="/counters/dashboard/stream?lang=en"`,
		`data-counter="active-projects"`,
		`data-target="128"`,
		"Collaborators",
		"Scientists and organizations connected.",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestServeDashboard_CountersStartAtZero(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeDashboard(rec, httptest.NewRequest("GET", "/dashboard", nil))

	if got := strings.Count(rec.Body.String(), `data-start="0">`); got != 3 {
		t.Errorf("counters starting at 0: got %d, want 3", got)
	}
}
