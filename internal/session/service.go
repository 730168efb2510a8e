package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/Vovarama1992/voxlate/internal/audio"
	"github.com/Vovarama1992/voxlate/internal/detect"
	"github.com/Vovarama1992/voxlate/internal/language"
	"github.com/Vovarama1992/voxlate/internal/stt"
)

var (
	ErrNoInput       = errors.New("nothing to translate, record something first")
	ErrUnknownTarget = errors.New("unknown target language")
	ErrSpeedRange    = errors.New("speech speed must be between 0.5 and 2.0")
)

// State is the session for one interactive user. Fields are overwritten
// by their pipeline stage and live until the process exits.
type State struct {
	InputText      string           `json:"inputText"`
	Detected       detect.Detection `json:"detectedLanguage"`
	TranslatedText string           `json:"translatedText"`
	TargetLanguage string           `json:"targetLanguage"`
	SpeechSpeed    float64          `json:"speechSpeed"`
}

type RecordResult struct {
	InputText string           `json:"inputText"`
	Detected  detect.Detection `json:"detectedLanguage"`
}

type TranslateResult struct {
	TranslatedText  string  `json:"translatedText"`
	Audio           []byte  `json:"audio,omitempty"`
	AudioFormat     string  `json:"audioFormat"`
	DurationSeconds float64 `json:"durationSeconds"`
	VoiceFallback   bool    `json:"voiceFallback"`
	Warning         string  `json:"warning,omitempty"`
}

// Orchestrator sequences the pipeline and is the only writer of the
// session state. Components never touch the state directly.
type Orchestrator struct {
	recorder   Recorder
	transcribe Transcriber
	detector   Detector
	translator Translator
	synth      Synthesizer
	adjuster   SpeedAdjuster
	speaker    Speaker
	log        *zap.SugaredLogger

	durationOf func([]byte) float64

	mu    sync.Mutex
	state State
}

func NewOrchestrator(
	recorder Recorder,
	transcribe Transcriber,
	detector Detector,
	translator Translator,
	synth Synthesizer,
	adjuster SpeedAdjuster,
	speaker Speaker, // nil disables local playback
	log *zap.SugaredLogger,
) *Orchestrator {
	return &Orchestrator{
		recorder:   recorder,
		transcribe: transcribe,
		detector:   detector,
		translator: translator,
		synth:      synth,
		adjuster:   adjuster,
		speaker:    speaker,
		log:        log,
		durationOf: audio.DurationOf,
		state: State{
			TargetLanguage: language.FallbackCode,
			SpeechSpeed:    1.0,
		},
	}
}

// Record runs capture → transcription → detection. State is updated
// only when transcription succeeds; the recorded WAV never outlives
// the call.
func (o *Orchestrator) Record(ctx context.Context) (RecordResult, error) {
	wavPath, err := o.recorder.Record(ctx)
	if err != nil {
		return RecordResult{}, err
	}
	defer os.Remove(wavPath)

	raw, err := o.transcribe.Transcribe(ctx, wavPath)
	if err != nil {
		return RecordResult{}, err
	}

	text := stt.Normalize(raw)
	if text == "" {
		return RecordResult{}, stt.ErrUnintelligible
	}

	det := o.detector.Detect(text)

	o.mu.Lock()
	o.state.InputText = text
	o.state.Detected = det
	o.mu.Unlock()

	o.log.Infow("voice recorded", "text", text, "language", det.Name)
	return RecordResult{InputText: text, Detected: det}, nil
}

// Translate runs translation → synthesis → speed adjustment → playback.
// Speed is bound here, at request time, not at playback time. State is
// updated only after translation succeeds; a synthesis failure after the
// English retry degrades to a text-only result with a warning.
func (o *Orchestrator) Translate(ctx context.Context, targetCode string, speed float64) (TranslateResult, error) {
	if _, ok := language.Lookup(targetCode); !ok {
		return TranslateResult{}, fmt.Errorf("%w: %q", ErrUnknownTarget, targetCode)
	}
	if speed < 0.5 || speed > 2.0 {
		return TranslateResult{}, fmt.Errorf("%w: got %.1f", ErrSpeedRange, speed)
	}

	o.mu.Lock()
	input := o.state.InputText
	o.mu.Unlock()
	if input == "" {
		return TranslateResult{}, ErrNoInput
	}

	translated, err := o.translator.Translate(ctx, input, targetCode, "auto")
	if err != nil {
		return TranslateResult{}, err
	}

	o.mu.Lock()
	o.state.TranslatedText = translated
	o.state.TargetLanguage = targetCode
	o.state.SpeechSpeed = speed
	o.mu.Unlock()

	res := TranslateResult{
		TranslatedText: translated,
		AudioFormat:    "audio/mpeg",
	}

	data, synthErr := o.synth.Synthesize(ctx, translated, targetCode)
	if synthErr != nil && targetCode != language.FallbackCode {
		o.log.Warnw("synthesis failed, retrying with English voice",
			"target", targetCode, "err", synthErr)
		data, synthErr = o.synth.Synthesize(ctx, translated, language.FallbackCode)
		if synthErr == nil {
			res.VoiceFallback = true
		}
	}
	if synthErr != nil {
		o.log.Warnw("synthesis exhausted", "target", targetCode, "err", synthErr)
		res.Warning = "couldn't generate audio for the translation"
		return res, nil
	}

	data = o.adjuster.Adjust(ctx, data, speed)
	res.Audio = data
	res.DurationSeconds = o.durationOf(data)

	if o.speaker != nil {
		if err := o.speaker.Play(data); err != nil {
			o.log.Warnw("local playback failed", "err", err)
		}
	}

	o.log.Infow("translated", "target", targetCode, "speed", speed,
		"audioBytes", len(data), "fallback", res.VoiceFallback)
	return res, nil
}

// Snapshot returns a copy of the session state for the UI.
func (o *Orchestrator) Snapshot() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}
