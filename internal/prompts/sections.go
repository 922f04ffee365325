package prompts

import (
	"fmt"
	"log"
	"strings"

	"screencraft-backend/internal/dataurl"
	"screencraft-backend/internal/models"
)

const styleSectionHeader = `

STRICT CSS REFERENCE RULES:
- COPY the provided CSS exactly into your <style> section, word-for-word.
- USE only the exact class names from the provided CSS. Do NOT create any new CSS classes.
- IGNORE screenshot colors if they differ from the CSS reference. The CSS reference is the only truth; the screenshot is just a rough visual guide.

`

const styleSectionFooter = `
HARDCODED RULES - NO EXCEPTIONS:
1. COPY the provided CSS into the <style> section exactly as written.
2. If the CSS has a .button class, use <button class='button'> - never an invented variant.
3. Do NOT extract colors from the screenshot - use ONLY colors from the CSS reference.
4. Any new CSS classes you create mean the result is wrong.

`

// BuildStyleSection renders the CSS reference instructions for every style
// file that decodes to non-empty content. Files that fail to decode are
// skipped without aborting the rest; no style files means no section at all.
func BuildStyleSection(files []models.AuxFile) string {
	var styleFiles []models.AuxFile
	for _, f := range files {
		if f.Category == models.FileCategoryStyle {
			styleFiles = append(styleFiles, f)
		}
	}
	if len(styleFiles) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(styleSectionHeader)

	emitted := 0
	for _, f := range styleFiles {
		result := dataurl.DecodeText(f.DataURL)
		if result.Status != dataurl.StatusOK {
			log.Printf("[CSS] skipping style file %q: no usable content", f.FileName)
			continue
		}
		fmt.Fprintf(&b, "/* %s - USER PROVIDED STYLES */\n", f.FileName)
		fmt.Fprintf(&b, "```css\n%s\n```\n\n", strings.TrimSpace(result.Content))
		emitted++
	}
	if emitted == 0 {
		// every style file was empty or malformed
		return ""
	}

	b.WriteString(styleSectionFooter)
	return b.String()
}

const assetSectionHeader = "\n\nThe following images are assets that appear in the screenshot and should be used in your implementation with their provided URLs:\n\n"

const assetSectionFooter = "\nIMPORTANT: Use the provided URLs exactly as given for these asset images - do not use placeholder URLs for these specific images.\n" +
	"\nEach image/logo should be implemented only ONCE in the code. Do not duplicate the same image multiple times unless it genuinely appears multiple times in the screenshot.\n"

// BuildAssetSection renders the asset usage instructions and collects one
// image part per asset so the model can see each reference image. Assets whose
// fileName matches a known uploaded reference get a directive to use that
// reference's absolute URL; unmatched assets may be placed freely.
func BuildAssetSection(files []models.AuxFile, known []models.AssetReference, baseURL string) (string, []ContentPart) {
	var assetFiles []models.AuxFile
	for _, f := range files {
		if f.Category == models.FileCategoryAsset {
			assetFiles = append(assetFiles, f)
		}
	}
	if len(assetFiles) == 0 {
		return "", nil
	}

	var b strings.Builder
	b.WriteString(assetSectionHeader)

	var parts []ContentPart
	for _, f := range assetFiles {
		if f.DataURL == "" {
			continue
		}

		resolved := ""
		for _, ref := range known {
			if ref.FileName == f.FileName {
				resolved = baseURL + ref.URL
				break
			}
		}

		if resolved != "" {
			fmt.Fprintf(&b, "- %s: Use the URL '%s' for this image asset that appears in the screenshot.\n", f.FileName, resolved)
		} else {
			fmt.Fprintf(&b, "- %s: This image asset is displayed on the website from the screenshot. Feel free to use it at the appropriate spot in your implementation.\n", f.FileName)
		}

		parts = append(parts, ImagePart(f.DataURL))
	}

	b.WriteString(assetSectionFooter)
	return b.String(), parts
}
