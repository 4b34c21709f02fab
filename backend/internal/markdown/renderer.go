// Package markdown turns user markdown into a safe HTML fragment.
//
// Rendering is two separate stages: Parse converts markdown to HTML with raw
// HTML passed through untouched, and Sanitize filters any HTML through an
// allow-list. Render runs both. Sanitize alone is idempotent on its output,
// so already rendered fragments can be re-filtered safely.
package markdown

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/goodways/goodways/backend/internal/metrics"
	"github.com/goodways/goodways/shared/logger"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmark_html "github.com/yuin/goldmark/renderer/html"
)

type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			goldmark_html.WithHardWraps(),
			// raw HTML reaches Sanitize, which decides what survives
			goldmark_html.WithUnsafe(),
		),
	)
	return &Renderer{md: md, policy: newPolicy()}
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"h1", "h2", "h3", "h4", "h5", "h6",
		"p", "br", "hr",
		"strong", "b", "em", "i", "del", "s",
		"ul", "ol", "li",
		"blockquote", "pre", "code",
		"table", "thead", "tbody", "tr", "th", "td",
	)
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("src", "alt").OnElements("img")

	p.AllowURLSchemes("http", "https", "mailto")
	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(true)
	p.RequireNoFollowOnLinks(false)

	return p
}

// Parse converts markdown to unfiltered HTML. It never fails: when the
// parser errors or panics the source comes back as one escaped paragraph.
func (r *Renderer) Parse(src string) (out string) {
	defer func() {
		if rec := recover(); rec != nil {
			out = fallback(src, fmt.Errorf("panic: %v", rec))
		}
	}()

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return fallback(src, err)
	}
	return strings.TrimSpace(buf.String())
}

// Sanitize filters html through the allow-list.
func (r *Renderer) Sanitize(unsafeHTML string) string {
	return r.policy.Sanitize(unsafeHTML)
}

func (r *Renderer) Render(src string) string {
	return r.Sanitize(r.Parse(src))
}

func fallback(src string, err error) string {
	logger.Component("markdown").Warn("markdown parse failed, rendering as text", "error", err)
	metrics.RenderFallbacks.Inc()
	return "<p>" + html.EscapeString(src) + "</p>"
}
