package numfmt_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/earthpulse/internal/app/system/numfmt"
	"github.com/dalemusser/earthpulse/internal/domain/models"
	"golang.org/x/text/language"
)

func TestInteger(t *testing.T) {
	tests := []struct {
		tag  language.Tag
		n    int
		want string
	}{
		{language.English, 0, "0"},
		{language.English, 432, "432"},
		{language.English, 4080, "4,080"},
		{language.English, 12847, "12,847"},
		{language.German, 4080, "4.080"},
		{language.Spanish, 2500000, "2.500.000"},
	}
	for _, tt := range tests {
		if got := numfmt.Integer(tt.tag, tt.n); got != tt.want {
			t.Errorf("Integer(%v, %d): got %q, want %q", tt.tag, tt.n, got, tt.want)
		}
	}
}

func TestCompact(t *testing.T) {
	tests := []struct {
		tag  language.Tag
		n    int
		want string
	}{
		{language.English, 0, "0"},
		{language.English, 999, "999"},
		{language.English, 1000, "1K"},
		{language.English, 12847, "12.8K"},
		{language.English, 2500000, "2.5M"},
		{language.English, 2499999, "2.4M"},
		{language.English, 3000000000, "3B"},
		{language.German, 2500000, "2,5M"},
	}
	for _, tt := range tests {
		if got := numfmt.Compact(tt.tag, tt.n); got != tt.want {
			t.Errorf("Compact(%v, %d): got %q, want %q", tt.tag, tt.n, got, tt.want)
		}
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name  string
		spec  models.CounterSpec
		value int
		want  string
	}{
		{"compact with suffix", models.CounterSpec{Compact: true, Suffix: "+"}, 2500000, "2.5M+"},
		{"grouped with suffix", models.CounterSpec{Suffix: "+"}, 150, "150+"},
		{"grouped", models.CounterSpec{}, 5500, "5,500"},
		{"mid-run compact", models.CounterSpec{Compact: true}, 512, "512"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := numfmt.Display(language.English, tt.spec, tt.value); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveTag(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		accept string
		want   language.Tag
	}{
		{"default", "/", "", language.English},
		{"query", "/?lang=de", "", language.German},
		{"query beats header", "/?lang=fr", "de-DE", language.French},
		{"header", "/", "es-MX,es;q=0.9", language.Spanish},
		{"regional header", "/", "de-AT", language.German},
		{"bad query falls back to header", "/?lang=!!", "de", language.German},
		{"unsupported", "/", "ja", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			if tt.accept != "" {
				r.Header.Set("Accept-Language", tt.accept)
			}
			if got := numfmt.ResolveTag(r); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { numfmt.Configure(language.English) })

	if !numfmt.Configure(language.MustParse("de")) {
		t.Fatal("Configure(de) rejected a supported tag")
	}
	if got := numfmt.Default(); got != language.German {
		t.Errorf("default: got %v, want de", got)
	}
	if numfmt.Configure(language.Japanese) {
		t.Error("Configure(ja) accepted an unsupported tag")
	}
	if got := numfmt.Default(); got != language.German {
		t.Errorf("default changed by rejected tag: got %v", got)
	}
}
