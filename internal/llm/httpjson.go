package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxResponseBytes caps how much of a backend reply is read.
const maxResponseBytes = 10 * 1024 * 1024

// jsonReply keeps the HTTP status and raw body of a backend reply for error
// reporting.
type jsonReply struct {
	status int
	raw    string
}

// errorf formats a backend failure that carries no structured error body.
func (r jsonReply) errorf(backend string) error {
	return fmt.Errorf("%s: HTTP %d: %s", backend, r.status, truncate(r.raw, 200))
}

// postJSON sends body as JSON to url with the given headers and decodes the
// reply into out. A non-200 status is not an error here; callers inspect
// jsonReply.status after looking for a structured error in out.
func postJSON(ctx context.Context, url string, headers map[string]string, body, out any) (jsonReply, error) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return jsonReply{}, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return jsonReply{}, fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := sharedHTTPClient.Do(httpReq)
	if err != nil {
		return jsonReply{}, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return jsonReply{}, fmt.Errorf("reading response body: %w", err)
	}
	reply := jsonReply{status: resp.StatusCode, raw: string(respBytes)}

	if err := json.Unmarshal(respBytes, out); err != nil {
		return reply, fmt.Errorf("parsing response JSON (HTTP %d, body: %s): %w", resp.StatusCode, truncate(reply.raw, 200), err)
	}
	return reply, nil
}

// modelFor returns the request's model override, or def when there is none.
func modelFor(req *Request, def string) string {
	if req.Model != "" {
		return req.Model
	}
	return def
}

// maxTokensFor returns the request's token budget, or defaultMaxTokens.
func maxTokensFor(req *Request) int {
	if req.MaxTokens > 0 {
		return req.MaxTokens
	}
	return defaultMaxTokens
}
