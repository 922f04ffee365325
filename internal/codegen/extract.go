// Package codegen recovers the generated code artifact from the model's
// free-form reply.
package codegen

import (
	"log"
	"regexp"
	"strings"
)

var (
	fencedHTMLRe = regexp.MustCompile("(?s)```html\\s*(.*?)\\s*```")
	htmlSpanRe   = regexp.MustCompile(`(?s)(<html.*?>.*?</html>)`)
)

// A matcher tries one extraction strategy and reports whether it matched.
type matcher func(raw string) (string, bool)

// Strategies in priority order. A fenced html block containing the <html>
// root wins outright; a bare <html>...</html> span anywhere in the reply
// outranks a fenced block that lacks the root tag, because an explicit tag
// pair is stronger evidence of a complete artifact than fence markers alone.
var matchers = []matcher{
	matchFencedWithRoot,
	matchRootSpan,
	matchFencedAny,
}

// ExtractHTML pulls the code artifact out of a raw model reply. It never
// fails: when no strategy matches, the reply is returned unmodified with a
// logged diagnostic.
func ExtractHTML(raw string) string {
	for _, m := range matchers {
		if artifact, ok := m(raw); ok {
			return artifact
		}
	}

	prefix := raw
	if len(prefix) > 200 {
		prefix = prefix[:200]
	}
	log.Printf("[HTML Extraction] No <html> tags or markdown HTML blocks found in the generated content. First 200 chars: %s", prefix)
	return raw
}

func matchFencedWithRoot(raw string) (string, bool) {
	m := fencedHTMLRe.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	body := strings.TrimSpace(m[1])
	if !strings.Contains(body, "<html") {
		return "", false
	}
	return body, true
}

func matchRootSpan(raw string) (string, bool) {
	m := htmlSpanRe.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func matchFencedAny(raw string) (string, bool) {
	m := fencedHTMLRe.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}
