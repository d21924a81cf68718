package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultEndpoint = "https://text.pollinations.ai/"

// TextProvider talks to a Pollinations-style text completion endpoint: POST a
// message array with a model name, receive the reply as a plain text body.
type TextProvider struct {
	endpoint string
	client   *http.Client
}

// TextOption configures a TextProvider.
type TextOption func(*TextProvider)

// WithEndpoint sets the completion endpoint URL.
func WithEndpoint(url string) TextOption {
	return func(p *TextProvider) {
		p.endpoint = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) TextOption {
	return func(p *TextProvider) {
		p.client = client
	}
}

// NewTextProvider creates a new provider.
func NewTextProvider(opts ...TextOption) *TextProvider {
	p := &TextProvider{
		endpoint: defaultEndpoint,
		client:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// textRequest is the upstream request body. The fixed seed keeps the
// assistant's personality stable across calls.
type textRequest struct {
	Messages []Message `json:"messages"`
	Model    string    `json:"model"`
	Seed     int       `json:"seed"`
	JSONMode bool      `json:"jsonMode"`
}

// Complete sends one exchange to the named model. A non-success status or an
// empty body is an error: free models under load return 200 with nothing,
// and the caller should move on to the next model in the chain.
func (p *TextProvider) Complete(ctx context.Context, model string, messages []Message) (string, error) {
	body, err := json.Marshal(textRequest{
		Messages: messages,
		Model:    model,
		Seed:     42,
		JSONMode: false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("model %s failed (status %d)", model, resp.StatusCode)
	}

	text := string(respBody)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("model %s returned an empty response", model)
	}
	return text, nil
}
