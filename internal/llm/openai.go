package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// openaiAPIURL is a var to allow test overrides via httptest.
var openaiAPIURL = "https://api.openai.com/v1/chat/completions"

// OpenAIAPIURL returns the current OpenAI API endpoint URL.
func OpenAIAPIURL() string { return openaiAPIURL }

// SetOpenAIAPIURL overrides the OpenAI API endpoint URL.
// Intended for use in tests only.
func SetOpenAIAPIURL(u string) { openaiAPIURL = u }

type openaiProvider struct {
	model  string
	apiKey string // unexported; never serialized by encoding/json
}

type openaiRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    *float64        `json:"temperature,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type openaiResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

func (p *openaiProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	var messages []chatMessage
	if req.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.SystemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.UserPrompt})

	body := openaiRequest{
		Model:       modelFor(req, p.model),
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	if req.JSON {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	var or openaiResponse
	reply, err := postJSON(ctx, openaiAPIURL, map[string]string{
		"Authorization": "Bearer " + p.apiKey,
	}, body, &or)
	if err != nil {
		return nil, err
	}
	if reply.status != http.StatusOK {
		if or.Error != nil {
			err := fmt.Errorf("openai: %s: %s", or.Error.Type, or.Error.Message)
			return nil, classify(err, or.Error.Code+" "+or.Error.Message)
		}
		return nil, reply.errorf("openai")
	}

	if len(or.Choices) == 0 || or.Choices[0].Message.Content == "" {
		return nil, errors.New("openai: empty choices in response")
	}

	return &Response{
		Content: or.Choices[0].Message.Content,
		Model:   "openai:" + or.Model,
	}, nil
}
