package errors_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/earthpulse/internal/app/features/errors"
	"go.uber.org/zap"
)

func TestNotFound(t *testing.T) {
	h := errors.NewHandler(zap.NewNop())

	rec := httptest.NewRecorder()
	h.NotFound(rec, httptest.NewRequest("GET", "/nowhere", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
	body := rec.Body.String()
	for _, want := range []string{">404<", "Page not found", `href="/"`, "glass-nav"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := errors.NewHandler(zap.NewNop())

	rec := httptest.NewRecorder()
	h.MethodNotAllowed(rec, httptest.NewRequest("POST", "/", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestRenderServerError(t *testing.T) {
	rec := httptest.NewRecorder()
	errors.RenderServerError(rec, httptest.NewRequest("GET", "/", nil), zap.NewNop())

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(rec.Body.String(), "Something went wrong") {
		t.Error("body missing error title")
	}
}
