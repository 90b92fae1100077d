package frames

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gobold"

	"timervid/config"
)

func TestFormatRemaining(t *testing.T) {
	cases := []struct {
		name string
		t    int
		want string
	}{
		{"zero", 0, "00:00"},
		{"seconds only", 5, "00:05"},
		{"minute and a half", 90, "01:30"},
		{"ten minutes", 600, "10:00"},
		{"just under an hour", 3599, "59:59"},
		{"hundred minutes", 6000, "100:00"},
		{"negative clamps", -3, "00:00"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := FormatRemaining(c.t); got != c.want {
				t.Fatalf("FormatRemaining(%d) = %q; want %q", c.t, got, c.want)
			}
		})
	}
}

func TestGenerateFrameCounts(t *testing.T) {
	cases := []struct {
		name    string
		minutes int
		seconds int
		want    int
	}{
		{"zero duration still renders one frame", 0, 0, 1},
		{"five seconds", 0, 5, 6},
		{"a minute and one", 1, 1, 62},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Minutes = c.minutes
			cfg.Seconds = c.seconds

			dir := t.TempDir()
			got, err := Generate(dir, cfg)
			if err != nil {
				t.Fatalf("Generate error: %v", err)
			}
			if len(got) != c.want {
				t.Fatalf("Generate produced %d frames; want %d", len(got), c.want)
			}

			total := c.minutes*60 + c.seconds
			for i, fr := range got {
				if fr.Remaining != total-i {
					t.Fatalf("frame %d shows %d remaining; want %d", i, fr.Remaining, total-i)
				}
				if fr.Label != FormatRemaining(fr.Remaining) {
					t.Fatalf("frame %d label %q; want %q", i, fr.Label, FormatRemaining(fr.Remaining))
				}
			}
			if got[len(got)-1].Label != "00:00" {
				t.Fatalf("last frame label %q; want 00:00", got[len(got)-1].Label)
			}
		})
	}
}

func TestGenerateWritesDecodablePNGs(t *testing.T) {
	cfg := testConfig(t)
	cfg.Seconds = 2

	dir := t.TempDir()
	got, err := Generate(dir, cfg)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	for _, fr := range got {
		f, err := os.Open(fr.Path)
		if err != nil {
			t.Fatalf("frame file missing: %v", err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("frame %s is not a PNG: %v", fr.Path, err)
		}
		b := img.Bounds()
		if b.Dx() != config.FrameWidth || b.Dy() != config.FrameHeight {
			t.Fatalf("frame %s is %dx%d; want %dx%d", fr.Path, b.Dx(), b.Dy(), config.FrameWidth, config.FrameHeight)
		}
	}

	// Frame numbering must match the pattern the assembler reads.
	if got[0].Path != filepath.Join(dir, "frame_0000.png") {
		t.Fatalf("first frame at %s; want frame_0000.png", got[0].Path)
	}
}

func TestLoadFaceFallsBack(t *testing.T) {
	face, source, err := LoadFace(filepath.Join(t.TempDir(), "missing.ttf"), config.FontSize)
	if err != nil {
		t.Fatalf("LoadFace error: %v", err)
	}
	defer face.Close()
	if !source.Fallback {
		t.Fatalf("expected fallback for a missing font, got source %+v", source)
	}
	if source.Reason == "" {
		t.Fatalf("fallback reason is empty")
	}
}

func TestLoadFacePreferred(t *testing.T) {
	// Any valid TTF works; the embedded Go Bold bytes are a handy one.
	path := filepath.Join(t.TempDir(), "font.ttf")
	if err := os.WriteFile(path, gobold.TTF, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}

	face, source, err := LoadFace(path, config.FontSize)
	if err != nil {
		t.Fatalf("LoadFace error: %v", err)
	}
	defer face.Close()
	if source.Fallback {
		t.Fatalf("unexpected fallback: %s", source.Reason)
	}
	if source.Path != path {
		t.Fatalf("source path %q; want %q", source.Path, path)
	}
}

func TestLoadFaceRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-font.ttf")
	if err := os.WriteFile(path, []byte("definitely not a font"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	face, source, err := LoadFace(path, config.FontSize)
	if err != nil {
		t.Fatalf("LoadFace error: %v", err)
	}
	defer face.Close()
	if !source.Fallback {
		t.Fatalf("expected fallback for an unparsable font")
	}
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Config{
		FontPath:      "", // force the embedded font, tests must not depend on system fonts
		AlarmSeconds:  config.DefaultAlarmSeconds,
		ToneFrequency: config.DefaultToneFrequency,
	}
	return cfg
}
