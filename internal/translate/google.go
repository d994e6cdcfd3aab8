package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// defaultEndpoint is the public Google Translate web endpoint, the same
// one browser extensions use. It needs no API key but offers no SLA;
// callers must treat failures as routine.
const defaultEndpoint = "https://translate.googleapis.com/translate_a/single"

// GoogleWeb translates via the public Google Translate web endpoint.
type GoogleWeb struct {
	// Client is the HTTP client to use. Nil means a client with a 15s
	// timeout.
	Client *http.Client

	// Endpoint overrides the translate URL; tests point it at a local
	// server.
	Endpoint string

	// Logger for request diagnostics. Nil discards output.
	Logger *slog.Logger
}

// NewGoogleWeb creates a GoogleWeb translator with default settings.
func NewGoogleWeb() *GoogleWeb {
	return &GoogleWeb{}
}

// Translate implements Translator. Matching language codes and blank text
// short-circuit locally; everything else is one GET against the endpoint.
func (g *GoogleWeb) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if out, done := skip(text, sourceLang, targetLang); done {
		return out, nil
	}

	endpoint := g.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	client := g.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", mapLanguage(sourceLang))
	params.Set("tl", mapLanguage(targetLang))
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build translate request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate endpoint returned %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read translate response: %w", err)
	}

	out, err := parseResponse(body)
	if err != nil {
		return "", err
	}

	if g.Logger != nil {
		g.Logger.Debug("translated",
			"source", sourceLang, "target", targetLang,
			"in_chars", len(text), "out_chars", len(out))
	}
	return out, nil
}

// parseResponse extracts the translated text from the endpoint's nested
// array payload: the first element is a list of segments, each of which
// carries the translated fragment at index 0.
func parseResponse(body []byte) (string, error) {
	var outer []json.RawMessage
	if err := json.Unmarshal(body, &outer); err != nil {
		return "", fmt.Errorf("malformed translate response: %w", err)
	}
	if len(outer) == 0 {
		return "", fmt.Errorf("empty translate response")
	}

	var segments [][]any
	if err := json.Unmarshal(outer[0], &segments); err != nil {
		return "", fmt.Errorf("malformed translate segments: %w", err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		if fragment, ok := seg[0].(string); ok {
			sb.WriteString(fragment)
		}
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", fmt.Errorf("translate response carried no text")
	}
	return out, nil
}
