package stt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

const googleSpeechURL = "http://www.google.com/speech-api/v2/recognize"

// GoogleWebClient talks to the Google web speech endpoint. The response
// is line-delimited JSON; the first non-empty result carries the
// alternatives.
type GoogleWebClient struct {
	apiKey  string
	lang    string
	baseURL string
	client  *http.Client
}

func NewGoogleWebClient() *GoogleWebClient {
	key := os.Getenv("GOOGLE_SPEECH_API_KEY")
	if key == "" {
		panic("GOOGLE_SPEECH_API_KEY not set")
	}

	lang := os.Getenv("GOOGLE_SPEECH_LANG")
	if lang == "" {
		lang = "en-US"
	}

	return &GoogleWebClient{
		apiKey:  key,
		lang:    lang,
		baseURL: googleSpeechURL,
		client:  &http.Client{},
	}
}

func (c *GoogleWebClient) Transcribe(ctx context.Context, wavPath string) (string, error) {
	data, err := os.ReadFile(wavPath)
	if err != nil {
		return "", fmt.Errorf("read audio file: %w", err)
	}

	url := fmt.Sprintf("%s?client=chromium&lang=%s&key=%s", c.baseURL, c.lang, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "audio/l16; rate=16000")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: google speech request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 {
		return "", fmt.Errorf("%w: google speech: %s", ErrUnavailable, body)
	}

	transcript, err := parseChromiumResponse(body)
	if err != nil {
		return "", err
	}
	return transcript, nil
}

// parseChromiumResponse walks the line-delimited JSON the endpoint
// emits and returns the first transcript it finds.
func parseChromiumResponse(body []byte) (string, error) {
	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var parsed struct {
			Result []struct {
				Alternative []struct {
					Transcript string `json:"transcript"`
				} `json:"alternative"`
			} `json:"result"`
		}
		if err := json.Unmarshal([]byte(line), &parsed); err != nil {
			return "", fmt.Errorf("%w: decode google speech: %v", ErrUnavailable, err)
		}

		for _, r := range parsed.Result {
			if len(r.Alternative) > 0 && strings.TrimSpace(r.Alternative[0].Transcript) != "" {
				return strings.TrimSpace(r.Alternative[0].Transcript), nil
			}
		}
	}
	return "", ErrUnintelligible
}
