package prompts

import (
	"context"
	"fmt"

	"screencraft-backend/internal/imagecache"
	"screencraft-backend/internal/models"
)

// VideoAssembler turns a video data URL into a complete turn sequence. The
// assembler only forwards its result; video preprocessing lives elsewhere.
type VideoAssembler interface {
	AssembleVideoTurns(ctx context.Context, videoDataURL string) ([]Turn, error)
}

// AltCacheFunc derives the alt-text to image URL mapping from previously
// generated markup.
type AltCacheFunc func(html string) map[string]string

// Assembler builds the ordered turn sequence for one generation request. It
// is stateless and safe for concurrent use.
type Assembler struct {
	baseURL  string
	video    VideoAssembler
	altCache AltCacheFunc
}

func NewAssembler(baseURL string, video VideoAssembler) *Assembler {
	return &Assembler{
		baseURL:  baseURL,
		video:    video,
		altCache: imagecache.BuildAltURLMapping,
	}
}

// historyPlan fixes where in the history slice turn conversion starts and
// which role the first converted item gets; subsequent items alternate.
type historyPlan struct {
	start     int
	firstRole Role
}

// planKey → historyPlan is the decision table for role assignment. Sessions
// that began from imported code burn history[0] into the system turn and
// resume with "user"; fresh update sessions replay the whole history starting
// with "assistant". Fresh create sessions have no plan and append nothing.
type planKey struct {
	imported bool
	update   bool
}

var historyPlans = map[planKey]historyPlan{
	{imported: true, update: false}: {start: 1, firstRole: RoleUser},
	{imported: true, update: true}:  {start: 1, firstRole: RoleUser},
	{imported: false, update: true}: {start: 0, firstRole: RoleAssistant},
}

// Assemble builds the role-tagged turn sequence for req and the alt-text to
// URL cache carried over from the previous generation. Deterministic: the
// same request always yields the same sequence.
func (a *Assembler) Assemble(ctx context.Context, req models.GenerateRequest) ([]Turn, map[string]string, error) {
	if !req.Stack.Valid() {
		return nil, nil, fmt.Errorf("unsupported stack %q", req.Stack)
	}

	imageCache := map[string]string{}

	var turns []Turn
	if req.IsImportedFromCode {
		if len(req.History) == 0 {
			return nil, nil, fmt.Errorf("imported-code session requires history")
		}
		turns = a.assembleImportedCode(req.History[0].Text, req.Stack)
	} else {
		switch req.InputMode {
		case models.InputModeText:
			turns = a.assembleTextPrompt(req.Prompt, req.Stack, req.AssetURLs)
		default:
			// image mode, and anything unrecognized falls back to it
			if len(req.Prompt.Images) == 0 {
				return nil, nil, fmt.Errorf("image-mode request has no reference image")
			}
			turns = a.assembleScreenshotPrompt(req.Prompt, req.Stack, req.AssetURLs)
		}
	}

	plan, ok := historyPlans[planKey{
		imported: req.IsImportedFromCode,
		update:   req.GenerationType == models.GenerationUpdate,
	}]
	if ok {
		for i := plan.start; i < len(req.History); i++ {
			role := plan.firstRole
			if (i-plan.start)%2 == 1 {
				role = otherRole(role)
			}
			turns = append(turns, a.turnFromHistoryItem(req.History[i], role))
		}

		if !req.IsImportedFromCode && len(req.History) >= 2 {
			imageCache = a.altCache(req.History[len(req.History)-2].Text)
		}
	}

	if req.InputMode == models.InputModeVideo {
		if a.video == nil {
			return nil, nil, fmt.Errorf("video input is not configured")
		}
		if len(req.Prompt.Images) == 0 {
			return nil, nil, fmt.Errorf("video-mode request has no video data")
		}
		videoTurns, err := a.video.AssembleVideoTurns(ctx, req.Prompt.Images[0])
		if err != nil {
			return nil, nil, fmt.Errorf("assemble video turns: %w", err)
		}
		turns = videoTurns
	}

	return turns, imageCache, nil
}

func otherRole(r Role) Role {
	if r == RoleUser {
		return RoleAssistant
	}
	return RoleUser
}

// assembleImportedCode folds the imported source and the stack instruction
// into a single system turn.
func (a *Assembler) assembleImportedCode(code string, stack models.Stack) []Turn {
	intro := "Here is the code of the app: "
	if stack == models.StackSVG {
		intro = "Here is the code of the SVG: "
	}
	return []Turn{
		TextTurn(RoleSystem, importedCodeSystemPrompts[stack]+"\n "+intro+code),
	}
}

// assembleScreenshotPrompt builds the system turn plus the initial user turn
// for image-mode requests: primary screenshot first, then asset reference
// images, then the combined instruction text.
func (a *Assembler) assembleScreenshotPrompt(prompt models.PromptContent, stack models.Stack, assetURLs []models.AssetReference) []Turn {
	userPrompt := userPromptWebPage
	if stack == models.StackSVG {
		userPrompt = userPromptSVG
	}

	styleSection := BuildStyleSection(prompt.AdditionalFiles)
	assetSection, assetParts := BuildAssetSection(prompt.AdditionalFiles, assetURLs, a.baseURL)

	parts := []ContentPart{ImagePart(prompt.Images[0])}
	parts = append(parts, assetParts...)
	parts = append(parts, TextPart(userPrompt+styleSection+assetSection))

	return []Turn{
		TextTurn(RoleSystem, screenshotSystemPrompts[stack]),
		{Role: RoleUser, Parts: parts},
	}
}

// assembleTextPrompt builds the system turn plus the initial user turn for
// text-mode requests. There is no primary image; asset reference images still
// ride along.
func (a *Assembler) assembleTextPrompt(prompt models.PromptContent, stack models.Stack, assetURLs []models.AssetReference) []Turn {
	styleSection := BuildStyleSection(prompt.AdditionalFiles)
	assetSection, assetParts := BuildAssetSection(prompt.AdditionalFiles, assetURLs, a.baseURL)

	var parts []ContentPart
	parts = append(parts, assetParts...)
	parts = append(parts, TextPart(textPromptPrefix+prompt.Text+styleSection+assetSection))

	return []Turn{
		TextTurn(RoleSystem, textSystemPrompts[stack]),
		{Role: RoleUser, Parts: parts},
	}
}

// turnFromHistoryItem converts one prior turn. User turns that carried images
// become multipart (images in original order, then any asset reference
// images, then one combined text part); everything else is a plain text turn.
func (a *Assembler) turnFromHistoryItem(item models.HistoryItem, role Role) Turn {
	if role != RoleUser || len(item.Images) == 0 {
		return TextTurn(role, item.Text)
	}

	var parts []ContentPart
	for _, img := range item.Images {
		parts = append(parts, ImagePart(img))
	}

	text := item.Text
	if len(item.AdditionalFiles) > 0 {
		styleSection := BuildStyleSection(item.AdditionalFiles)
		assetSection, assetParts := BuildAssetSection(item.AdditionalFiles, nil, a.baseURL)
		parts = append(parts, assetParts...)
		text += styleSection + assetSection
	}
	parts = append(parts, TextPart(text))

	return Turn{Role: RoleUser, Parts: parts}
}
