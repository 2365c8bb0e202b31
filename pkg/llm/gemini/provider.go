package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kilhoshin/aissam/pkg/llm"
)

const endpointFormat = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

// Provider talks to the Google Generative Language API. It supports text
// prompts with an optional inline image part for vision requests.
type Provider struct {
	APIKey    string
	ModelName string
	Client    *http.Client
}

var _ llm.Provider = &Provider{}

func NewProvider(apiKey, modelName string) *Provider {
	return &Provider{
		APIKey:    apiKey,
		ModelName: modelName,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// --- Request/Response structs (internal to this package) ---

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiSafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type geminiGenerationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
	TopK        int     `json:"topK"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	SafetySettings   []geminiSafetySetting   `json:"safetySettings,omitempty"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiCandidate struct {
	Content *geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

func defaultSafetySettings() []geminiSafetySetting {
	categories := []string{
		"HARM_CATEGORY_HARASSMENT",
		"HARM_CATEGORY_HATE_SPEECH",
		"HARM_CATEGORY_SEXUALLY_EXPLICIT",
		"HARM_CATEGORY_DANGEROUS_CONTENT",
	}
	settings := make([]geminiSafetySetting, len(categories))
	for i, c := range categories {
		settings[i] = geminiSafetySetting{Category: c, Threshold: "BLOCK_MEDIUM_AND_ABOVE"}
	}
	return settings
}

func (p *Provider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	options := &llm.Options{
		Temperature: 0.3,
	}
	for _, opt := range opts {
		opt(options)
	}

	parts := []geminiPart{{Text: prompt}}
	if len(options.ImageData) > 0 {
		mime := options.ImageMIME
		if mime == "" {
			mime = "image/jpeg"
		}
		parts = append(parts, geminiPart{
			InlineData: &geminiInlineData{
				MimeType: mime,
				Data:     base64.StdEncoding.EncodeToString(options.ImageData),
			},
		})
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{Parts: parts, Role: "user"},
		},
		SafetySettings: defaultSafetySettings(),
		GenerationConfig: &geminiGenerationConfig{
			Temperature: options.Temperature,
			TopP:        1,
			TopK:        1,
		},
	}

	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	model := p.ModelName
	if options.Model != "" {
		model = options.Model
	}

	req, err := http.NewRequestWithContext(
		ctx,
		"POST",
		fmt.Sprintf(endpointFormat, model),
		bytes.NewBuffer(payloadJson),
	)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("x-goog-api-key", p.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes geminiResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(geminiRes.Candidates) == 0 || geminiRes.Candidates[0].Content == nil || len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}
