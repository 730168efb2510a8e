package tts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Vovarama1992/voxlate/internal/language"
)

// Service wraps a synthesis client with voice resolution, an in-memory
// cache, and the temp-file read-back cycle. The temp file never
// outlives the call.
type Service struct {
	client  Client
	cache   *Cache
	log     *zap.SugaredLogger
	tempDir string
}

func NewService(client Client, cache *Cache, log *zap.SugaredLogger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		log:    log,
	}
}

// Synthesize renders text in the voice mapped to langCode (unmapped
// codes use the "en" voice) and returns the MP3 bytes.
func (s *Service) Synthesize(ctx context.Context, text, langCode string) ([]byte, error) {
	voice := language.VoiceFor(langCode)

	if s.cache != nil {
		if data, ok := s.cache.Get(voice, text); ok {
			s.log.Debugw("synthesis cache hit", "voice", voice, "bytes", len(data))
			return data, nil
		}
	}

	dir := s.tempDir
	if dir == "" {
		dir = os.TempDir()
	}
	outPath := filepath.Join(dir, "voxlate-tts-"+uuid.NewString()+".mp3")
	defer os.Remove(outPath)

	if err := s.client.Synthesize(ctx, text, voice, outPath); err != nil {
		return nil, fmt.Errorf("%w: voice %s: %v", ErrSynthesis, voice, err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read synthesis output: %v", ErrSynthesis, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty synthesis output for voice %s", ErrSynthesis, voice)
	}

	if s.cache != nil {
		s.cache.Put(voice, text, data)
	}
	return data, nil
}
