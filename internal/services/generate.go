package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"screencraft-backend/internal/dataurl"
	"screencraft-backend/internal/prompts"
)

const generationModel = "gemini-3-flash-preview"

// GenerateService sends assembled conversations to Gemini and returns the raw
// reply text. Artifact recovery happens in the codegen package.
type GenerateService struct {
	client   *genai.Client
	rateChan chan struct{} // Token bucket
}

func NewGenerateService(apiKey string, concurrentReqs int) (*GenerateService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	rateChan := make(chan struct{}, concurrentReqs)
	for i := 0; i < concurrentReqs; i++ {
		rateChan <- struct{}{}
	}

	return &GenerateService{client: client, rateChan: rateChan}, nil
}

func (s *GenerateService) Close() {
	s.client.Close()
}

// acquireRate blocks until a rate slot is available
func (s *GenerateService) acquireRate(ctx context.Context) error {
	select {
	case <-s.rateChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(5 * time.Minute):
		return fmt.Errorf("timeout waiting for Gemini rate slot")
	}
}

func (s *GenerateService) releaseRate() {
	s.rateChan <- struct{}{}
}

// GenerateCode runs the assembled turn sequence against the model. The last
// turn is sent as the live message; everything before it becomes system
// instruction and chat history.
func (s *GenerateService) GenerateCode(ctx context.Context, turns []prompts.Turn) (string, error) {
	if len(turns) == 0 {
		return "", fmt.Errorf("empty turn sequence")
	}

	if err := s.acquireRate(ctx); err != nil {
		return "", err
	}
	defer s.releaseRate()

	model := s.client.GenerativeModel(generationModel)
	model.SetTemperature(0)

	start := 0
	if len(turns) > 1 && turns[0].Role == prompts.RoleSystem {
		model.SystemInstruction = &genai.Content{Parts: toGenaiParts(turns[0].Parts)}
		start = 1
	}

	last := turns[len(turns)-1]
	lastParts := toGenaiParts(last.Parts)
	if len(lastParts) == 0 {
		return "", fmt.Errorf("final turn has no sendable content")
	}

	cs := model.StartChat()
	for i := start; i < len(turns)-1; i++ {
		parts := toGenaiParts(turns[i].Parts)
		if len(parts) == 0 {
			continue
		}
		cs.History = append(cs.History, &genai.Content{
			Role:  genaiRole(turns[i].Role),
			Parts: parts,
		})
	}

	resp, err := cs.SendMessage(ctx, lastParts...)
	if err != nil {
		return "", fmt.Errorf("Gemini generation error: %w", err)
	}

	text := extractText(resp)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("Gemini returned empty response")
	}
	return text, nil
}

// genaiRole maps conversation roles onto the two roles Gemini chat history
// accepts.
func genaiRole(role prompts.Role) string {
	if role == prompts.RoleAssistant {
		return "model"
	}
	return "user"
}

// toGenaiParts converts turn parts to genai parts. Image and video parts
// arrive as data URLs and are inlined as blobs; parts that fail to decode are
// dropped with a diagnostic rather than failing the whole request.
func toGenaiParts(parts []prompts.ContentPart) []genai.Part {
	out := make([]genai.Part, 0, len(parts))
	for _, p := range parts {
		switch p.Type {
		case prompts.PartText:
			out = append(out, genai.Text(p.Text))
		case prompts.PartImage, prompts.PartVideo:
			bytes, mime, err := dataurl.DecodeBinary(p.URL, "application/octet-stream")
			if err != nil {
				log.Printf("[GENERATE] dropping undecodable %s part: %v", p.Type, err)
				continue
			}
			out = append(out, genai.Blob{MIMEType: mime, Data: bytes})
		}
	}
	return out
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
