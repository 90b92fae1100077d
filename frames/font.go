package frames

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"

	"timervid/types"
)

const fontDPI = 72

// LoadFace loads the preferred TTF font at the given size. Any problem with
// the preferred font (missing file, not a font) degrades to the embedded Go
// Bold face; the returned FontSource says which one was used and why.
func LoadFace(path string, size float64) (font.Face, types.FontSource, error) {
	reason := ""
	if path == "" {
		reason = "no font path configured"
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			reason = fmt.Sprintf("read %s: %v", path, err)
		} else {
			face, err := faceFromBytes(data, size)
			if err != nil {
				reason = fmt.Sprintf("parse %s: %v", path, err)
			} else {
				return face, types.FontSource{Path: path}, nil
			}
		}
	}

	face, err := faceFromBytes(gobold.TTF, size)
	if err != nil {
		// The embedded font is known good; failing here means something
		// is deeply wrong, so give up instead of rendering nothing.
		return nil, types.FontSource{}, fmt.Errorf("failed to load fallback font: %w", err)
	}
	return face, types.FontSource{Path: "go-bold (embedded)", Fallback: true, Reason: reason}, nil
}

func faceFromBytes(data []byte, size float64) (font.Face, error) {
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
}
