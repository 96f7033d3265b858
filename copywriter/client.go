package copywriter

import (
	"context"
	"strings"
	"time"

	"google.golang.org/genai"
)

// CallLog records one text generation call for monitoring.
type CallLog struct {
	Style        StyleMode  `json:"style"`
	Prompt       string     `json:"prompt"`
	Response     string     `json:"response"`
	LatencyMs    int64      `json:"latency_ms"`
	TokenUsage   TokenUsage `json:"token_usage"`
	ModelName    string     `json:"model_name"`
	ModelVersion string     `json:"model_version"`
	RequestedAt  time.Time  `json:"requested_at"`
	GeneratedAt  time.Time  `json:"generated_at"`
}

type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}

// Client calls the text generation service. It is constructed once at
// startup and shared; each GenerateCopy call is independent.
type Client struct {
	genai *genai.Client
	model string
}

// NewClient builds the generation client from an explicit API key and
// model name rather than ambient process state.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	cl, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	return &Client{genai: cl, model: model}, nil
}

// GenerateCopy asks the model for poster copy in the given style and
// returns the normalized result. One attempt only; the operator retries
// by repeating the action.
func (c *Client) GenerateCopy(ctx context.Context, mode StyleMode) (*PosterCopy, *CallLog, error) {
	startedAt := time.Now()
	prompt := BuildPrompt(mode)

	result, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, nil, err
	}

	raw := collectText(result)

	callLog := &CallLog{
		Style:       mode,
		Prompt:      prompt,
		Response:    raw,
		LatencyMs:   time.Since(startedAt).Milliseconds(),
		ModelName:   c.model,
		RequestedAt: startedAt,
		GeneratedAt: time.Now(),
	}
	if result != nil {
		callLog.ModelVersion = result.ModelVersion
		if result.UsageMetadata != nil {
			callLog.TokenUsage = TokenUsage{
				InputTokens:  int64(result.UsageMetadata.PromptTokenCount),
				OutputTokens: int64(result.UsageMetadata.CandidatesTokenCount),
				TotalTokens:  int64(result.UsageMetadata.TotalTokenCount),
			}
		}
	}

	copySpec, err := ParseResponse(raw)
	if err != nil {
		return nil, callLog, err
	}
	return copySpec, callLog, nil
}

// collectText joins the text parts of every candidate. Some responses
// only populate the aggregate Text() accessor, so fall back to it.
func collectText(result *genai.GenerateContentResponse) string {
	if result == nil {
		return ""
	}

	var chunks []string
	for _, cand := range result.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.Text != "" {
				chunks = append(chunks, part.Text)
			}
		}
	}
	if len(chunks) == 0 {
		return strings.TrimSpace(result.Text())
	}
	return strings.TrimSpace(strings.Join(chunks, "\n"))
}
