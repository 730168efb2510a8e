package tts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// Default multilingual voice used when no per-deployment override is set.
const defaultElevenVoiceID = "21m00Tcm4TlvDq8ikWAM"

type ElevenLabsClient struct {
	apiKey  string
	voiceID string
	baseURL string
	client  *http.Client
}

func NewElevenLabsClient() *ElevenLabsClient {
	key := os.Getenv("ELEVENLABS_API_KEY")
	if key == "" {
		panic("ELEVENLABS_API_KEY not set")
	}

	voiceID := os.Getenv("ELEVENLABS_VOICE_ID")
	if voiceID == "" {
		voiceID = defaultElevenVoiceID
	}

	return &ElevenLabsClient{
		apiKey:  key,
		voiceID: voiceID,
		baseURL: "https://api.elevenlabs.io",
		client:  &http.Client{},
	}
}

// Synthesize renders text through the multilingual model; the voice
// code steers pronunciation via language_code.
func (c *ElevenLabsClient) Synthesize(ctx context.Context, text, voice, outPath string) error {
	url := fmt.Sprintf("%s/v1/text-to-speech/%s", c.baseURL, c.voiceID)

	payload := []byte(fmt.Sprintf(`{"text": %q, "model_id": "eleven_multilingual_v2", "language_code": %q}`, text, voice))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("tts failed: %s", string(b))
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}
