package audio

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Duration returns the playback length of an audio file in seconds.
func Duration(path string) (float64, error) {
	out, err := exec.Command("ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	).Output()
	if err != nil {
		return 0, err
	}

	return strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
}

// DurationOf probes in-memory audio through a throwaway temp file.
// Degrades to 0 when ffprobe is unavailable or the data is unreadable.
func DurationOf(data []byte) float64 {
	path := filepath.Join(os.TempDir(), "voxlate-probe-"+uuid.NewString()+".mp3")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0
	}
	defer os.Remove(path)

	d, err := Duration(path)
	if err != nil {
		return 0
	}
	return d
}
