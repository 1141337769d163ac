package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// sharedHTTPClient is used by the HTTP providers; a 5-minute timeout covers slow LLM responses.
var sharedHTTPClient = &http.Client{
	Timeout: 5 * time.Minute,
}

// defaultMaxTokens is the fallback when Request.MaxTokens is not set.
const defaultMaxTokens = 8192

// ErrInputTooLarge is wrapped by providers when the backend rejects a request
// because the prompt exceeds the model's context window.
var ErrInputTooLarge = errors.New("input exceeds the model context window")

// Request holds the parameters for an LLM completion call.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	// Temperature is sent as given, zero included; nil leaves the backend default.
	Temperature *float64
	MaxTokens   int
	// Model overrides the provider's configured model when non-empty.
	Model string
	// JSON asks the backend for a bare JSON response where it supports that.
	JSON bool
	// Schema constrains the JSON response on backends with structured output.
	Schema *Schema
}

// Response holds the result of an LLM completion call.
type Response struct {
	Content string
	Model   string // actual model used, echoed back for meta
}

// Provider is the interface for LLM completion backends.
type Provider interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
}

// NewProvider parses a "provider:model" string and returns the appropriate Provider.
// The API key is read from the environment at construction time and validated immediately.
// Example: "gemini:gemini-2.5-flash", "anthropic:claude-sonnet-4-6" or "openai:gpt-4o".
func NewProvider(providerModel string) (Provider, error) {
	parts := strings.SplitN(providerModel, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid model format %q: expected provider:model (e.g. gemini:gemini-2.5-flash)", providerModel)
	}
	switch parts[0] {
	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			apiKey = os.Getenv("GOOGLE_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
		return newGeminiProvider(context.Background(), parts[1], apiKey)
	case "anthropic":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
		return &anthropicProvider{model: parts[1], apiKey: apiKey}, nil
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		return &openaiProvider{model: parts[1], apiKey: apiKey}, nil
	default:
		return nil, fmt.Errorf("unknown provider %q: supported providers are gemini, anthropic, openai", parts[0])
	}
}

// contextLengthHints are fragments backends use when a prompt is too long.
var contextLengthHints = []string{
	"context_length_exceeded",
	"prompt is too long",
	"maximum context length",
	"exceeds the maximum number of tokens",
	"input token count",
	"too many tokens",
}

// classify wraps err with ErrInputTooLarge when msg looks like a context-window rejection.
func classify(err error, msg string) error {
	lower := strings.ToLower(msg)
	for _, h := range contextLengthHints {
		if strings.Contains(lower, h) {
			return fmt.Errorf("%w: %w", ErrInputTooLarge, err)
		}
	}
	return err
}

// truncate limits a string to maxLen runes, appending "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
