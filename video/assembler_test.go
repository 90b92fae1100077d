package video

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"timervid/types"
)

func TestCommandArguments(t *testing.T) {
	args := command("/work/frame_%04d.png", "/work/track.wav", "out.mp4").GetArgs()
	joined := " " + strings.Join(args, " ") + " "

	for _, want := range []string{
		"-framerate",
		"/work/frame_%04d.png",
		"/work/track.wav",
		"libx264",
		"aac",
		"yuv420p",
		"-shortest",
		"out.mp4",
		"-y",
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("ffmpeg args %q missing %q", joined, want)
		}
	}
}

func TestAssembleFailureLeavesNoOutput(t *testing.T) {
	// Nonexistent inputs make ffmpeg exit non-zero (or the exec itself fail
	// when ffmpeg is absent); either way the output must not survive.
	out := filepath.Join(t.TempDir(), "out.mp4")
	if err := os.WriteFile(out, []byte("stale partial output"), 0o644); err != nil {
		t.Fatalf("write stale output: %v", err)
	}

	err := Assemble(filepath.Join(t.TempDir(), "frame_%04d.png"), filepath.Join(t.TempDir(), "missing.wav"), out)
	var eerr *types.EncodingError
	if !errors.As(err, &eerr) {
		t.Fatalf("Assemble error = %v; want an EncodingError", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatalf("partial output %s still exists after failure", out)
	}
}
