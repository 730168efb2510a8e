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

const deepgramURL = "https://api.deepgram.com/v1/listen?model=nova-2&smart_format=true&detect_language=true"

type DeepgramClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewDeepgramClient() *DeepgramClient {
	key := os.Getenv("DEEPGRAM_API_KEY")
	if key == "" {
		panic("DEEPGRAM_API_KEY not set")
	}

	return &DeepgramClient{
		apiKey:  key,
		baseURL: deepgramURL,
		client:  &http.Client{},
	}
}

func (c *DeepgramClient) Transcribe(ctx context.Context, wavPath string) (string, error) {
	data, err := os.ReadFile(wavPath)
	if err != nil {
		return "", fmt.Errorf("read audio file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", "audio/wav")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: deepgram request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 {
		return "", fmt.Errorf("%w: deepgram: %s", ErrUnavailable, body)
	}

	var parsed struct {
		Results struct {
			Channels []struct {
				Alternatives []struct {
					Transcript string `json:"transcript"`
				} `json:"alternatives"`
			} `json:"channels"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: decode deepgram: %v", ErrUnavailable, err)
	}

	if len(parsed.Results.Channels) == 0 ||
		len(parsed.Results.Channels[0].Alternatives) == 0 {
		return "", ErrUnintelligible
	}

	transcript := strings.TrimSpace(parsed.Results.Channels[0].Alternatives[0].Transcript)
	if transcript == "" {
		return "", ErrUnintelligible
	}
	return transcript, nil
}
