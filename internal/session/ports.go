package session

import (
	"context"

	"github.com/Vovarama1992/voxlate/internal/detect"
)

// Ports the orchestrator drives. Each is one pipeline stage; the
// orchestrator owns the sequencing and all session state.

type Recorder interface {
	Record(ctx context.Context) (string, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, wavPath string) (string, error)
}

type Detector interface {
	Detect(text string) detect.Detection
}

type Translator interface {
	Translate(ctx context.Context, text, targetCode, sourceHint string) (string, error)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text, langCode string) ([]byte, error)
}

type SpeedAdjuster interface {
	Adjust(ctx context.Context, data []byte, speed float64) []byte
}

// Speaker plays audio on the host. Optional; nil disables local playback.
type Speaker interface {
	Play(data []byte) error
}
