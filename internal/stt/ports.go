package stt

import (
	"context"
	"errors"
)

var (
	// ErrUnintelligible means the recognizer could not map the audio
	// to any text.
	ErrUnintelligible = errors.New("could not understand audio")

	// ErrUnavailable means the recognition service itself failed
	// (transport, quota, 5xx).
	ErrUnavailable = errors.New("speech recognition service unavailable")
)

// Client turns a recorded WAV file into text. No retries; errors
// propagate to the caller for user-facing display.
type Client interface {
	Transcribe(ctx context.Context, wavPath string) (string, error)
}
