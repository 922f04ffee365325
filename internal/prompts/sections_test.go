package prompts

import (
	"encoding/base64"
	"strings"
	"testing"

	"screencraft-backend/internal/models"
)

func cssDataURL(css string) string {
	return "data:text/css;base64," + base64.StdEncoding.EncodeToString([]byte(css))
}

func TestBuildStyleSectionEmbedsContentVerbatim(t *testing.T) {
	css := ".button { background: #1a73e8; color: white; }"
	section := BuildStyleSection([]models.AuxFile{
		{Category: "style", FileName: "theme.css", FileType: "text/css", DataURL: cssDataURL(css)},
	})

	if !strings.Contains(section, "theme.css") {
		t.Error("section missing file name")
	}
	if !strings.Contains(section, css) {
		t.Error("section missing sanitized CSS content verbatim")
	}
	if !strings.Contains(section, "```css") {
		t.Error("CSS excerpt not fenced")
	}
}

func TestBuildStyleSectionNoStyleFiles(t *testing.T) {
	if s := BuildStyleSection(nil); s != "" {
		t.Errorf("expected empty section, got %q", s)
	}
	if s := BuildStyleSection([]models.AuxFile{{Category: "asset", FileName: "logo.png"}}); s != "" {
		t.Errorf("expected empty section for asset-only input, got %q", s)
	}
}

func TestBuildStyleSectionSkipsBrokenFilesKeepsRest(t *testing.T) {
	good := ".nav { display: flex; }"
	section := BuildStyleSection([]models.AuxFile{
		{Category: "style", FileName: "broken.css", DataURL: "not-a-data-url"},
		{Category: "style", FileName: "empty.css", DataURL: cssDataURL("   \n  ")},
		{Category: "style", FileName: "good.css", DataURL: cssDataURL(good)},
	})

	if strings.Contains(section, "broken.css") || strings.Contains(section, "empty.css") {
		t.Error("unusable files should not be referenced")
	}
	if !strings.Contains(section, "good.css") || !strings.Contains(section, good) {
		t.Error("usable sibling file should still be emitted")
	}
}

func TestBuildStyleSectionAllFilesUnusable(t *testing.T) {
	section := BuildStyleSection([]models.AuxFile{
		{Category: "style", FileName: "broken.css", DataURL: "garbage"},
	})
	if section != "" {
		t.Errorf("expected empty section when nothing decodes, got %q", section)
	}
}

func TestBuildAssetSectionKnownReference(t *testing.T) {
	known := []models.AssetReference{
		{ID: "abc", URL: "/assets/abc", FileName: "logo.png", Category: "asset"},
	}
	section, parts := BuildAssetSection([]models.AuxFile{
		{Category: "asset", FileName: "logo.png", DataURL: "data:image/png;base64,aGk="},
	}, known, "http://localhost:7001")

	if !strings.Contains(section, "http://localhost:7001/assets/abc") {
		t.Errorf("section missing absolute asset URL: %q", section)
	}
	if len(parts) != 1 {
		t.Fatalf("expected 1 image part, got %d", len(parts))
	}
	if parts[0].Type != PartImage || parts[0].URL != "data:image/png;base64,aGk=" {
		t.Errorf("image part should carry the raw data URL, got %+v", parts[0])
	}
	if !strings.Contains(section, "Use the provided URLs exactly as given") {
		t.Error("missing exact-URL closing directive")
	}
	if !strings.Contains(section, "only ONCE") {
		t.Error("missing at-most-once closing directive")
	}
}

func TestBuildAssetSectionUnknownReference(t *testing.T) {
	section, parts := BuildAssetSection([]models.AuxFile{
		{Category: "asset", FileName: "hero.jpg", DataURL: "data:image/jpeg;base64,aGk="},
	}, nil, "http://localhost:7001")

	if strings.Contains(section, "/assets/") {
		t.Errorf("unmatched asset must not get an /assets/ URL: %q", section)
	}
	if !strings.Contains(section, "hero.jpg") {
		t.Error("section missing file name")
	}
	if len(parts) != 1 {
		t.Errorf("expected 1 image part, got %d", len(parts))
	}
}

func TestBuildAssetSectionEmptyDataURLSkipped(t *testing.T) {
	section, parts := BuildAssetSection([]models.AuxFile{
		{Category: "asset", FileName: "ghost.png", DataURL: ""},
		{Category: "asset", FileName: "real.png", DataURL: "data:image/png;base64,aGk="},
	}, nil, "http://localhost:7001")

	if strings.Contains(section, "ghost.png") {
		t.Error("asset with empty dataUrl should emit no instruction")
	}
	if len(parts) != 1 {
		t.Errorf("expected 1 image part, got %d", len(parts))
	}
}

func TestBuildAssetSectionNoAssets(t *testing.T) {
	section, parts := BuildAssetSection([]models.AuxFile{
		{Category: "style", FileName: "a.css", DataURL: cssDataURL(".a{}")},
	}, nil, "http://localhost:7001")
	if section != "" || parts != nil {
		t.Errorf("expected no-op, got %q / %v", section, parts)
	}
}
