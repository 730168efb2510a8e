package tts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"unicode/utf8"
)

const (
	googleTTSURL = "https://translate.google.com/translate_tts"

	// The endpoint rejects long q params; stay under its limit.
	maxChunkRunes = 200
)

// GoogleClient uses the free translate TTS endpoint. Text is split
// into sentence chunks of at most 200 runes; the MP3 chunks
// concatenate into one playable stream.
type GoogleClient struct {
	baseURL string
	client  *http.Client
}

func NewGoogleClient() *GoogleClient {
	return &GoogleClient{
		baseURL: googleTTSURL,
		client:  &http.Client{},
	}
}

func (c *GoogleClient) Synthesize(ctx context.Context, text, voice, outPath string) error {
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	for _, chunk := range splitChunks(text, maxChunkRunes) {
		data, err := c.fetchChunk(ctx, chunk, voice)
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			return err
		}
	}
	return nil
}

func (c *GoogleClient) fetchChunk(ctx context.Context, chunk, voice string) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", voice)
	q.Set("q", chunk)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("tts status %d: %s", resp.StatusCode, body)
	}
	return body, nil
}

// splitChunks breaks text at sentence boundaries, folding sentences
// longer than limit at word boundaries.
func splitChunks(text string, limit int) []string {
	var chunks []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			chunks = append(chunks, s)
		}
		current.Reset()
	}

	for _, word := range strings.Fields(text) {
		if current.Len() > 0 && utf8.RuneCountInString(current.String())+utf8.RuneCountInString(word)+1 > limit {
			flush()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)

		if endsSentence(word) && utf8.RuneCountInString(current.String()) > limit/2 {
			flush()
		}
	}
	flush()

	return chunks
}

func endsSentence(word string) bool {
	return strings.HasSuffix(word, ".") || strings.HasSuffix(word, "!") ||
		strings.HasSuffix(word, "?") || strings.HasSuffix(word, "。")
}
