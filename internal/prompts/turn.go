package prompts

// Role tags one message in the assembled conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// PartType discriminates the content parts of a turn.
type PartType string

const (
	PartText  PartType = "text"
	PartImage PartType = "image"
	PartVideo PartType = "video"
)

// ContentPart is one piece of a turn: text, or an image/video carried as a
// data URL.
type ContentPart struct {
	Type PartType `json:"type"`
	Text string   `json:"text,omitempty"`
	URL  string   `json:"url,omitempty"`
}

// Turn is one role-tagged message sent to the generation model.
type Turn struct {
	Role  Role          `json:"role"`
	Parts []ContentPart `json:"parts"`
}

func TextPart(text string) ContentPart {
	return ContentPart{Type: PartText, Text: text}
}

func ImagePart(dataURL string) ContentPart {
	return ContentPart{Type: PartImage, URL: dataURL}
}

func VideoPart(dataURL string) ContentPart {
	return ContentPart{Type: PartVideo, URL: dataURL}
}

// TextTurn builds a single-part text turn.
func TextTurn(role Role, text string) Turn {
	return Turn{Role: role, Parts: []ContentPart{TextPart(text)}}
}
