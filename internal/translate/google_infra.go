package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	googleTranslateURL = "https://translate.googleapis.com/translate_a/single"
	browserUserAgent   = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

// GoogleClient calls the free web translate endpoint. The response is a
// nested JSON array whose first element lists translated segments; the
// segments concatenate into the full translation.
type GoogleClient struct {
	baseURL string
	client  *http.Client
}

func NewGoogleClient() *GoogleClient {
	return &GoogleClient{
		baseURL: googleTranslateURL,
		client:  &http.Client{},
	}
}

func (c *GoogleClient) Translate(ctx context.Context, text, targetCode, sourceHint string) (string, error) {
	if sourceHint == "" {
		sourceHint = "auto"
	}

	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", sourceHint)
	q.Set("tl", targetCode)
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request: %v", ErrTranslate, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 {
		return "", fmt.Errorf("%w: status %d: %s", ErrTranslate, resp.StatusCode, body)
	}

	translated, err := parseSegments(body)
	if err != nil {
		return "", err
	}
	return translated, nil
}

// parseSegments extracts and concatenates the translated segments from
// the endpoint's nested-array response:
// [[["Hola","Hello",...],["¿qué tal?","how are you",...]],...]
func parseSegments(body []byte) (string, error) {
	var outer []json.RawMessage
	if err := json.Unmarshal(body, &outer); err != nil || len(outer) == 0 {
		return "", fmt.Errorf("%w: decode response: %v", ErrTranslate, err)
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(outer[0], &segments); err != nil {
		return "", fmt.Errorf("%w: decode segments: %v", ErrTranslate, err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(seg[0], &part); err != nil {
			continue
		}
		sb.WriteString(part)
	}

	out := sb.String()
	if strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("%w: empty translation", ErrTranslate)
	}
	return out, nil
}
