package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// anthropicAPIURL is a var to allow test overrides via httptest.
var anthropicAPIURL = "https://api.anthropic.com/v1/messages"

// AnthropicAPIURL returns the current Anthropic API endpoint URL.
func AnthropicAPIURL() string { return anthropicAPIURL }

// SetAnthropicAPIURL overrides the Anthropic API endpoint URL.
// Intended for use in tests only.
func SetAnthropicAPIURL(u string) { anthropicAPIURL = u }

const anthropicVersion = "2023-06-01"

// jsonPrefill opens the assistant turn so the model continues a JSON object.
const jsonPrefill = "{"

type anthropicProvider struct {
	model  string
	apiKey string // unexported; never serialized by encoding/json
}

type anthropicRequest struct {
	Model       string        `json:"model"`
	MaxTokens   int           `json:"max_tokens"`
	System      string        `json:"system,omitempty"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
}

// chatMessage is the role/content pair both HTTP backends accept.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Model   string `json:"model"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (p *anthropicProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	body := anthropicRequest{
		Model:       modelFor(req, p.model),
		MaxTokens:   maxTokensFor(req),
		System:      req.SystemPrompt,
		Messages:    []chatMessage{{Role: "user", Content: req.UserPrompt}},
		Temperature: req.Temperature,
	}
	// No JSON mode on this backend: prefill the assistant turn instead.
	if req.JSON {
		body.Messages = append(body.Messages, chatMessage{Role: "assistant", Content: jsonPrefill})
	}

	var ar anthropicResponse
	reply, err := postJSON(ctx, anthropicAPIURL, map[string]string{
		"x-api-key":         p.apiKey,
		"anthropic-version": anthropicVersion,
	}, body, &ar)
	if err != nil {
		return nil, err
	}
	if reply.status != http.StatusOK {
		if ar.Error != nil {
			err := fmt.Errorf("anthropic: %s: %s", ar.Error.Type, ar.Error.Message)
			return nil, classify(err, ar.Error.Message)
		}
		return nil, reply.errorf("anthropic")
	}

	var sb strings.Builder
	for _, block := range ar.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return nil, fmt.Errorf("anthropic: no text content in response (got %d content blocks)", len(ar.Content))
	}
	content := sb.String()
	if req.JSON {
		content = jsonPrefill + content
	}

	return &Response{
		Content: content,
		Model:   "anthropic:" + ar.Model,
	}, nil
}
