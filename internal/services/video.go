package services

import (
	"context"
	"fmt"
	"strings"

	"screencraft-backend/internal/prompts"
)

const videoSystemPrompt = `You are an expert at building single page apps from screen recordings.
The user gives you a recording of a web page or app. Reconstruct it as a functional prototype: match layout, colors, text, and the interactions visible across the recording.
Write the full code; never leave placeholder comments.
Return only the full code in <html></html> tags.
Do not include markdown "` + "```" + `" or "` + "```html" + `" at the start or end.`

const videoUserPrompt = "Build a functional prototype of the app shown in this recording."

// VideoPromptAssembler builds the turn sequence for video-mode requests. It
// satisfies prompts.VideoAssembler; the conversation assembler forwards its
// output as-is.
type VideoPromptAssembler struct{}

func NewVideoPromptAssembler() *VideoPromptAssembler {
	return &VideoPromptAssembler{}
}

func (v *VideoPromptAssembler) AssembleVideoTurns(_ context.Context, videoDataURL string) ([]prompts.Turn, error) {
	if !strings.HasPrefix(videoDataURL, "data:") {
		return nil, fmt.Errorf("video input is not a data URL")
	}
	return []prompts.Turn{
		prompts.TextTurn(prompts.RoleSystem, videoSystemPrompt),
		{
			Role: prompts.RoleUser,
			Parts: []prompts.ContentPart{
				prompts.VideoPart(videoDataURL),
				prompts.TextPart(videoUserPrompt),
			},
		},
	}, nil
}
