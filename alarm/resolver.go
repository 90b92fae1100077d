// Package alarm resolves the alarm audio and builds the final audio track.
// All audio runs through beep at one canonical format so clips from any
// source can be spliced together.
package alarm

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"

	"timervid/config"
	"timervid/types"
)

// Every clip is resampled into this format before use.
var canonical = beep.Format{
	SampleRate:  beep.SampleRate(config.SampleRate),
	NumChannels: 2,
	Precision:   2,
}

// toneGain keeps the synthesized beep below full scale.
const toneGain = -0.4

// Clip is a resolved alarm sound, buffered in memory at the canonical format.
type Clip struct {
	buf *beep.Buffer

	// Synthesized is true when no alarm file was found and a beep was
	// generated instead.
	Synthesized bool

	// Source is the file the clip came from, or a description of the tone.
	Source string
}

// Duration is the clip length.
func (c *Clip) Duration() time.Duration {
	return canonical.SampleRate.D(c.buf.Len())
}

// Samples is the clip length in samples.
func (c *Clip) Samples() int {
	return c.buf.Len()
}

func (c *Clip) streamer() beep.StreamSeeker {
	return c.buf.Streamer(0, c.buf.Len())
}

// Resolve loads the alarm clip from path, or synthesizes a tone when the file
// does not exist. A file that exists but cannot be decoded is the user's
// mistake and comes back as a ConfigError.
func Resolve(path string, freq int, d time.Duration) (*Clip, error) {
	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			buf, derr := decodeFile(path)
			if derr != nil {
				return nil, &types.ConfigError{
					Reason: fmt.Sprintf("alarm file %s is not decodable audio", path),
					Err:    derr,
				}
			}
			return &Clip{buf: buf, Source: path}, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, &types.ConfigError{
				Reason: fmt.Sprintf("alarm file %s is not readable", path),
				Err:    err,
			}
		}
	}
	return Synthesize(freq, d)
}

// Synthesize generates a sine beep of the given frequency and length.
func Synthesize(freq int, d time.Duration) (*Clip, error) {
	tone, err := generators.SinTone(canonical.SampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("failed to generate %d Hz tone: %w", freq, err)
	}
	quieter := &effects.Gain{Streamer: tone, Gain: toneGain}

	buf := beep.NewBuffer(canonical)
	buf.Append(beep.Take(canonical.SampleRate.N(d), quieter))
	return &Clip{
		buf:         buf,
		Synthesized: true,
		Source:      fmt.Sprintf("%d Hz sine", freq),
	}, nil
}

// decodeFile decodes an audio file by extension and buffers it at the
// canonical format.
func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != canonical.SampleRate {
		src = beep.Resample(4, format.SampleRate, canonical.SampleRate, streamer)
	}

	buf := beep.NewBuffer(canonical)
	buf.Append(src)
	return buf, nil
}
