package capture

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"github.com/gen2brain/malgo"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"go.uber.org/zap"
)

const sampleRate = 16000

// Option configures the MicRecorder.
type Option func(*MicRecorder)

// WithSpeechThreshold sets the mean-amplitude gate (0..1) a frame must
// cross to count as speech.
func WithSpeechThreshold(v float64) Option {
	return func(r *MicRecorder) { r.threshold = v }
}

// WithOnsetTimeout sets how long to wait for speech before giving up.
func WithOnsetTimeout(d time.Duration) Option {
	return func(r *MicRecorder) { r.onsetTimeout = d }
}

// WithMaxUtterance caps the length of a single recording.
func WithMaxUtterance(d time.Duration) Option {
	return func(r *MicRecorder) { r.maxUtterance = d }
}

// WithTailSilence sets how much trailing silence ends the recording.
func WithTailSilence(d time.Duration) Option {
	return func(r *MicRecorder) { r.tailSilence = d }
}

// WithTempDir sets the directory for recorded WAV files.
func WithTempDir(dir string) Option {
	return func(r *MicRecorder) { r.tempDir = dir }
}

// MicRecorder records one utterance from the default capture device:
// 16 kHz mono s16. Recording starts when a frame crosses the speech
// gate and stops on trailing silence or the utterance cap.
type MicRecorder struct {
	log *zap.SugaredLogger

	threshold    float64
	onsetTimeout time.Duration
	maxUtterance time.Duration
	tailSilence  time.Duration
	tempDir      string
}

func NewMicRecorder(log *zap.SugaredLogger, opts ...Option) *MicRecorder {
	r := &MicRecorder{
		log:          log,
		threshold:    0.01,
		onsetTimeout: 5 * time.Second,
		maxUtterance: 15 * time.Second,
		tailSilence:  900 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *MicRecorder) Record(ctx context.Context) (string, error) {
	mctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return "", fmt.Errorf("init audio context: %w", err)
	}
	defer func() {
		_ = mctx.Uninit()
		mctx.Free()
	}()

	cfg := malgo.DefaultDeviceConfig(malgo.Capture)
	cfg.Capture.Format = malgo.FormatS16
	cfg.Capture.Channels = 1
	cfg.SampleRate = sampleRate
	cfg.Alsa.NoMMap = 1

	frames := make(chan []int16, 64)
	onFrames := func(_, in []byte, frameCount uint32) {
		f := make([]int16, len(in)/2)
		for i := range f {
			f[i] = int16(binary.LittleEndian.Uint16(in[i*2:]))
		}
		select {
		case frames <- f:
		default:
			// device outpaced the consumer, drop the frame
		}
	}

	dev, err := malgo.InitDevice(mctx.Context, cfg, malgo.DeviceCallbacks{Data: onFrames})
	if err != nil {
		return "", fmt.Errorf("open capture device: %w", err)
	}
	defer dev.Uninit()

	if err := dev.Start(); err != nil {
		return "", fmt.Errorf("start capture device: %w", err)
	}
	defer func() { _ = dev.Stop() }()

	u := newUtterance(sampleRate, r.threshold, r.onsetTimeout, r.maxUtterance, r.tailSilence)
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case f := <-frames:
			done, err := u.feed(f)
			if err != nil {
				return "", err
			}
			if done {
				r.log.Infow("utterance captured", "samples", len(u.samples))
				return r.writeWAV(u.samples)
			}
		}
	}
}

func (r *MicRecorder) writeWAV(samples []int) (string, error) {
	out, err := os.CreateTemp(r.tempDir, "voxlate-rec-*.wav")
	if err != nil {
		return "", fmt.Errorf("create temp wav: %w", err)
	}

	enc := wav.NewEncoder(out, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Data:           samples,
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		out.Close()
		os.Remove(out.Name())
		return "", fmt.Errorf("encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		out.Close()
		os.Remove(out.Name())
		return "", fmt.Errorf("finalize wav: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(out.Name())
		return "", err
	}

	return out.Name(), nil
}
