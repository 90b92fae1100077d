// Package frames renders the countdown stills: one 1280x720 PNG per second,
// large centered MM:SS digits on black.
package frames

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"timervid/config"
	"timervid/logging"
	"timervid/types"
)

var (
	countdownColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// zeroColor marks the moment the alarm starts.
	zeroColor = color.RGBA{R: 220, G: 40, B: 40, A: 255}
)

// Generate writes one frame per remaining second, counting down from the
// configured duration to zero, into workdir. It returns the frames in display
// order. Frame indices match the frame_%04d.png pattern the assembler reads.
func Generate(workdir string, cfg config.Config) ([]types.Frame, error) {
	face, source, err := LoadFace(cfg.FontPath, config.FontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()
	if source.Fallback {
		logging.Warnf("preferred font unavailable (%s), using %s", source.Reason, source.Path)
	}

	total := cfg.TotalSeconds()
	frames := make([]types.Frame, 0, total+1)
	for i := 0; i <= total; i++ {
		remaining := total - i
		label := FormatRemaining(remaining)

		col := countdownColor
		if remaining == 0 {
			col = zeroColor
		}
		img := render(label, face, col)

		path := filepath.Join(workdir, fmt.Sprintf("frame_%04d.png", i))
		if err := writePNG(path, img); err != nil {
			return nil, fmt.Errorf("failed to write frame %d: %w", i, err)
		}
		frames = append(frames, types.Frame{Remaining: remaining, Label: label, Path: path})
	}
	return frames, nil
}

// FormatRemaining renders whole seconds as zero-padded MM:SS. Minutes widen
// past two digits for timers of 100 minutes and more.
func FormatRemaining(t int) string {
	if t < 0 {
		t = 0
	}
	return fmt.Sprintf("%02d:%02d", t/60, t%60)
}

// Pattern is the printf-style frame path ffmpeg consumes as its image input.
func Pattern(workdir string) string {
	return filepath.Join(workdir, "frame_%04d.png")
}

func render(label string, face font.Face, col color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, config.FrameWidth, config.FrameHeight))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
	}
	width := d.MeasureString(label)
	metrics := face.Metrics()

	// Center the baseline so ascent and descent split the leftover space.
	d.Dot = fixed.Point26_6{
		X: (fixed.I(config.FrameWidth) - width) / 2,
		Y: (fixed.I(config.FrameHeight) + metrics.Ascent - metrics.Descent) / 2,
	}
	d.DrawString(label)
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
