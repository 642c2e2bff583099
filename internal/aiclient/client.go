// Package aiclient talks to the Gemini generateContent REST API for the
// safety assistant. No retries: a failed call surfaces to the caller,
// who maps it to an HTTP status.
package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/suraksha-dev/suraksha/shared/logger"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-pro"
	defaultTimeout = 15 * time.Second

	// historyWindow limits how much chat context travels upstream.
	historyWindow = 5
)

var (
	ErrMissingKey = errors.New("assistant api key is not configured")
	ErrTimeout    = errors.New("assistant request timed out")
	ErrQuota      = errors.New("assistant quota exceeded")
	ErrUpstream   = errors.New("assistant upstream error")
	ErrEmpty      = errors.New("assistant returned an empty response")
)

const systemPrompt = `You are a helpful assistant specializing in Indian government schemes and women's safety programs. Be concise and direct in your responses. Your role is to:

1. Help users find relevant government schemes
2. Guide through application process
3. Provide eligibility criteria
4. Share contact information
5. Explain documentation needs
6. Give step-by-step guidance

Focus on schemes for:
- Women's safety
- Legal aid
- Financial assistance
- Education
- Healthcare
- Employment

Keep responses under 150 words and action-oriented.`

type Message struct {
	Role    string // "user", "assistant" or "system"
	Content string
}

type Client struct {
	BaseURL    string
	HttpClient *http.Client

	apiKey  string
	model   string
	timeout time.Duration
}

func New(apiKey, model string, timeout time.Duration) *Client {
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		BaseURL:    defaultBaseURL,
		HttpClient: &http.Client{},
		apiKey:     apiKey,
		model:      model,
		timeout:    timeout,
	}
}

// Wire types for the generateContent endpoint.

type generateRequest struct {
	SystemInstruction *content         `json:"system_instruction,omitempty"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Chat sends the conversation and returns the assistant's reply. Only
// the trailing window of messages is forwarded; system messages are
// folded into the system instruction.
func (c *Client) Chat(ctx context.Context, messages []Message) (string, error) {
	if len(messages) > historyWindow {
		messages = messages[len(messages)-historyWindow:]
	}

	contents := make([]content, 0, len(messages))
	for _, m := range messages {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		} else if m.Role == "system" {
			continue
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: m.Content}}})
	}
	return c.generate(ctx, contents)
}

// SearchSchemes asks for a structured rundown of government schemes
// matching the query.
func (c *Client) SearchSchemes(ctx context.Context, query string) (string, error) {
	prompt := fmt.Sprintf(`Briefly describe government schemes related to: %s
Include:
1. Name
2. Description
3. Eligibility
4. How to apply
5. Documents needed
6. Contact info

Keep response concise and clear.`, query)

	return c.generate(ctx, []content{{Role: "user", Parts: []part{{Text: prompt}}}})
}

func (c *Client) generate(ctx context.Context, contents []content) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingKey
	}

	body, err := json.Marshal(generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemPrompt}}},
		Contents:          contents,
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.9,
			MaxOutputTokens: 1024,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode assistant request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.BaseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create assistant request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return "", ErrTimeout
		}
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", ErrQuota
	case resp.StatusCode != http.StatusOK:
		logger.Log.Error("assistant upstream returned an error", "status", resp.StatusCode, "body", string(respBody))
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmpty
	}
	text := decoded.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", ErrEmpty
	}
	return text, nil
}
