// Package numfmt formats counter values for display in the visitor's locale.
//
// The language comes from the ?lang query parameter, then Accept-Language,
// then the configured default. Only the tags in Supported are ever returned.
package numfmt

import (
	"math"
	"net/http"
	"strings"
	"sync"

	"github.com/dalemusser/earthpulse/internal/domain/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// LangParam selects a language explicitly.
const LangParam = "lang"

var supported = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

var (
	mu         sync.RWMutex
	defaultTag = language.English
)

// Supported returns the tags numbers can be formatted in.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Configure sets the fallback language. It returns false and leaves the
// default unchanged when tag is not matched by any supported language.
func Configure(tag language.Tag) bool {
	best, ok := Match(tag)
	if !ok {
		return false
	}
	mu.Lock()
	defaultTag = best
	mu.Unlock()
	return true
}

// Default returns the fallback language.
func Default() language.Tag {
	mu.RLock()
	defer mu.RUnlock()
	return defaultTag
}

// Match picks the supported tag closest to the given preferences.
func Match(tags ...language.Tag) (language.Tag, bool) {
	if len(tags) == 0 {
		return language.Und, false
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return language.Und, false
	}
	return supported[idx], true
}

// ResolveTag determines the display language for r.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}
	if v := strings.TrimSpace(r.URL.Query().Get(LangParam)); v != "" {
		if tag, err := language.Parse(v); err == nil {
			if best, ok := Match(tag); ok {
				return best
			}
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			if best, ok := Match(tags...); ok {
				return best
			}
		}
	}
	return Default()
}

// Integer formats n with the locale's digit grouping, e.g. 4,080 or 4.080.
func Integer(tag language.Tag, n int) string {
	return message.NewPrinter(tag).Sprintf("%d", n)
}

var compactUnits = []struct {
	size   float64
	suffix string
}{
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// Compact abbreviates n to one decimal place with a K, M or B suffix. The
// decimal is floored so a value still counting up never displays above
// itself: 2,499,999 shows as 2.4M, not 2.5M. Values below 1000 use Integer.
func Compact(tag language.Tag, n int) string {
	abs := math.Abs(float64(n))
	for _, u := range compactUnits {
		if abs < u.size {
			continue
		}
		scaled := math.Floor(abs/u.size*10) / 10
		if n < 0 {
			scaled = -scaled
		}
		return message.NewPrinter(tag).Sprint(number.Decimal(scaled, number.MaxFractionDigits(1))) + u.suffix
	}
	return Integer(tag, n)
}

// Display renders a counter value: compact or grouped, then the counter's
// suffix.
func Display(tag language.Tag, spec models.CounterSpec, value int) string {
	var s string
	if spec.Compact {
		s = Compact(tag, value)
	} else {
		s = Integer(tag, value)
	}
	return s + spec.Suffix
}
