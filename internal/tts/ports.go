package tts

import (
	"context"
	"errors"
)

// ErrSynthesis means the text-to-speech service failed. The session
// layer retries once with the English voice before giving up.
var ErrSynthesis = errors.New("speech synthesis failed")

// Client writes synthesized speech for text in the given voice to
// outPath as MP3.
type Client interface {
	Synthesize(ctx context.Context, text, voice, outPath string) error
}
