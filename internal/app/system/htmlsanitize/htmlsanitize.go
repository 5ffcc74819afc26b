// Package htmlsanitize cleans operator-supplied HTML, such as the
// announcement banner, before it is written into a page.
package htmlsanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func bannerPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("class").Globally()
		p.AddTargetBlankToFullyQualifiedLinks(true)
		policy = p
	})
	return policy
}

// Sanitize strips scripts, event handlers, iframes and unsafe URLs from s.
// Formatting, links and class attributes survive.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(bannerPolicy().Sanitize(s))
}

// IsPlainText reports whether s contains no markup.
func IsPlainText(s string) bool {
	return !strings.ContainsAny(s, "<>")
}
