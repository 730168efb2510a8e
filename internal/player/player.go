package player

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	mp3 "github.com/hajimehoshi/go-mp3"
	"go.uber.org/zap"
)

// Speaker plays MP3 audio through the host's default output device.
// Optional: the browser's inline player is the primary playback path,
// so playback errors are logged and swallowed upstream.
type Speaker struct {
	log *zap.SugaredLogger

	mu         sync.Mutex
	ctx        *oto.Context
	sampleRate int
}

func NewSpeaker(log *zap.SugaredLogger) *Speaker {
	return &Speaker{log: log}
}

// Play decodes and plays data synchronously.
func (s *Speaker) Play(data []byte) error {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode mp3: %w", err)
	}

	ctx, err := s.contextFor(dec.SampleRate())
	if err != nil {
		return err
	}

	p := ctx.NewPlayer(dec)
	p.Play()
	for p.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return p.Close()
}

// contextFor returns the process-wide oto context. oto allows one
// context per process, so a sample-rate change after init is rejected.
func (s *Speaker) contextFor(rate int) (*oto.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx != nil {
		if s.sampleRate != rate {
			return nil, fmt.Errorf("audio context is at %d Hz, stream is %d Hz", s.sampleRate, rate)
		}
		return s.ctx, nil
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 2, // go-mp3 always decodes to 16-bit stereo
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio output: %w", err)
	}
	<-ready

	s.ctx = ctx
	s.sampleRate = rate
	s.log.Debugw("audio output initialized", "rate", rate)
	return ctx, nil
}
