package capture

import (
	"context"
	"errors"
)

// ErrNoSpeech is returned when nothing crosses the speech gate before
// the onset timeout expires.
var ErrNoSpeech = errors.New("no speech detected")

// Recorder captures one utterance from the microphone and writes it to
// a temporary WAV file. The caller owns the returned file and must
// remove it on every exit path.
type Recorder interface {
	Record(ctx context.Context) (string, error)
}
