package models

// GenerateRequest is the payload for code generation and for prompt dry-runs.
type GenerateRequest struct {
	Stack              Stack            `json:"stack"`
	InputMode          InputMode        `json:"inputMode"`
	GenerationType     string           `json:"generationType"` // "create" | "update"
	Prompt             PromptContent    `json:"prompt"`
	History            []HistoryItem    `json:"history"`
	IsImportedFromCode bool             `json:"isImportedFromCode"`
	AssetURLs          []AssetReference `json:"assetUrls,omitempty"`
}

// GenerateResponse carries the recovered code artifact plus the alt-text to
// image URL cache derived from the previous generation.
type GenerateResponse struct {
	Code       string            `json:"code"`
	ImageCache map[string]string `json:"imageCache"`
}
