package models

// Stack identifies the target presentation stack for generated code.
type Stack string

const (
	StackHTMLCSS       Stack = "html_css"
	StackHTMLTailwind  Stack = "html_tailwind"
	StackReactTailwind Stack = "react_tailwind"
	StackBootstrap     Stack = "bootstrap"
	StackIonicTailwind Stack = "ionic_tailwind"
	StackVueTailwind   Stack = "vue_tailwind"
	StackSVG           Stack = "svg"
)

// Valid reports whether s is one of the supported stacks.
func (s Stack) Valid() bool {
	switch s {
	case StackHTMLCSS, StackHTMLTailwind, StackReactTailwind,
		StackBootstrap, StackIonicTailwind, StackVueTailwind, StackSVG:
		return true
	}
	return false
}

// InputMode is how the user described the desired UI.
type InputMode string

const (
	InputModeImage InputMode = "image"
	InputModeText  InputMode = "text"
	InputModeVideo InputMode = "video"
)

// Generation types
const (
	GenerationCreate = "create"
	GenerationUpdate = "update"
)

// AuxFile categories
const (
	FileCategoryStyle = "style"
	FileCategoryAsset = "asset"
)

// AuxFile is a user-supplied stylesheet or image asset attached to a request,
// distinct from the primary reference image.
type AuxFile struct {
	Category string `json:"category"` // "style" | "asset" | "other"
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	DataURL  string `json:"dataUrl"`
}

// PromptContent carries the text, images, and additional files of one fresh
// request. Images[0] is the primary reference image when present.
type PromptContent struct {
	Text            string    `json:"text"`
	Images          []string  `json:"images"`
	AdditionalFiles []AuxFile `json:"additionalFiles,omitempty"`
}

// HistoryItem is one prior turn in an editing session. Roles are not stored;
// they are derived from position when the conversation is assembled.
type HistoryItem struct {
	Text            string    `json:"text"`
	Images          []string  `json:"images"`
	AdditionalFiles []AuxFile `json:"additionalFiles,omitempty"`
}
