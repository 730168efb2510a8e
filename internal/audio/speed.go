package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"
)

// Adjuster rewrites MP3 playback speed without changing pitch, via
// ffmpeg's atempo filter. Best effort: any failure returns the input
// bytes unchanged.
type Adjuster struct {
	log *zap.SugaredLogger
	bin string
}

func NewAdjuster(log *zap.SugaredLogger) *Adjuster {
	return &Adjuster{log: log, bin: "ffmpeg"}
}

func (a *Adjuster) Adjust(ctx context.Context, data []byte, speed float64) []byte {
	if speed == 1.0 {
		return data
	}

	// atempo accepts 0.5–2.0 in a single filter pass.
	if speed < 0.5 {
		speed = 0.5
	}
	if speed > 2.0 {
		speed = 2.0
	}

	out, err := a.run(ctx, data, speed)
	if err != nil {
		a.log.Warnw("speed adjustment skipped", "speed", speed, "err", err)
		return data
	}
	return out
}

func (a *Adjuster) run(ctx context.Context, data []byte, speed float64) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "voxlate-speed-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	input := filepath.Join(tmpDir, "in.mp3")
	if err := os.WriteFile(input, data, 0644); err != nil {
		return nil, err
	}
	output := filepath.Join(tmpDir, "out.mp3")

	cmd := exec.CommandContext(
		ctx,
		a.bin,
		"-i", input,
		"-filter:a", fmt.Sprintf("atempo=%.2f", speed),
		"-y",
		output,
	)
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg: %w", err)
	}

	out, err := os.ReadFile(output)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("ffmpeg produced empty output")
	}
	return out, nil
}
