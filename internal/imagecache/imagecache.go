// Package imagecache derives the alt-text to image URL mapping from
// previously generated markup, so images that were already produced or
// uploaded survive regeneration instead of being replaced by placeholders.
package imagecache

import (
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const placeholderHost = "https://placehold.co"

// BuildAltURLMapping parses html and maps every <img> alt text to its src,
// skipping placeholder images that have not been filled in yet. Unparseable
// input yields an empty mapping.
func BuildAltURLMapping(html string) map[string]string {
	mapping := map[string]string{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.Printf("[IMAGE CACHE] failed to parse previous code: %v", err)
		return mapping
	}

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, ok := s.Attr("src")
		if !ok || src == "" || strings.HasPrefix(src, placeholderHost) {
			return
		}
		alt, ok := s.Attr("alt")
		if !ok || alt == "" {
			return
		}
		mapping[alt] = src
	})

	return mapping
}
