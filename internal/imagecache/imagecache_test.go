package imagecache

import "testing"

func TestBuildAltURLMapping(t *testing.T) {
	html := `<html><body>
		<img src="https://example.com/hero.png" alt="Hero banner">
		<img src="https://placehold.co/600x400" alt="Product shot">
		<img src="/assets/abc123" alt="Company logo">
		<img src="https://example.com/no-alt.png">
		<img alt="No source">
	</body></html>`

	mapping := BuildAltURLMapping(html)

	if len(mapping) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(mapping), mapping)
	}
	if mapping["Hero banner"] != "https://example.com/hero.png" {
		t.Errorf("hero mapping wrong: %q", mapping["Hero banner"])
	}
	if mapping["Company logo"] != "/assets/abc123" {
		t.Errorf("logo mapping wrong: %q", mapping["Company logo"])
	}
	if _, ok := mapping["Product shot"]; ok {
		t.Error("placeholder image should not be cached")
	}
}

func TestBuildAltURLMappingEmptyInput(t *testing.T) {
	if m := BuildAltURLMapping(""); len(m) != 0 {
		t.Errorf("expected empty mapping, got %v", m)
	}
	if m := BuildAltURLMapping("just plain text"); len(m) != 0 {
		t.Errorf("expected empty mapping for non-HTML, got %v", m)
	}
}
