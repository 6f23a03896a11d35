package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newGeminiImpl creates a new Gemini implementation
func newGeminiImpl(cfg Config) *geminiImpl {
	return &geminiImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a generation request to the Gemini API
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	wireReq := g.transformRequest(req)

	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var wireResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}

	return g.transformResponse(&wireResp), nil
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

// transformRequest converts the normalized request to the wire format
func (g *geminiImpl) transformRequest(req *Request) *generateRequest {
	wireReq := &generateRequest{
		Contents: make([]wireContent, 0, len(req.Messages)),
	}

	if req.SystemInstruction != "" {
		wireReq.SystemInstruction = &wireContent{
			Parts: []wirePart{{Text: req.SystemInstruction}},
		}
	}

	for _, msg := range req.Messages {
		role := msg.Role
		// Gemini uses "model" for assistant turns
		if role == "assistant" {
			role = "model"
		}
		wireReq.Contents = append(wireReq.Contents, wireContent{
			Role:  role,
			Parts: []wirePart{{Text: msg.Text}},
		})
	}

	if req.Temperature != 0 || req.MaxTokens != 0 {
		wireReq.GenerationConfig = &generationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	return wireReq
}

// transformResponse converts the wire response to the normalized format
func (g *geminiImpl) transformResponse(resp *generateResponse) *Response {
	out := &Response{
		Usage: &Usage{
			InputTokens:  resp.UsageMetadata.PromptTokenCount,
			OutputTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  resp.UsageMetadata.TotalTokenCount,
		},
	}

	if len(resp.Candidates) == 0 {
		return out
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			if out.Text != "" {
				out.Text += "\n"
			}
			out.Text += part.Text
		}
	}

	return out
}
