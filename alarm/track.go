package alarm

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"

	"timervid/logging"
	"timervid/types"
)

// BuildTrack writes the complete audio track as a WAV at outPath: a bed
// covering the countdown, then the alarm tail. The bed is silence, or the
// background music looped and cut to the countdown length. The alarm clip is
// likewise looped and cut to alarmDur, so a one-second chime still fills the
// whole tail.
func BuildTrack(clip *Clip, backgroundPath string, countdown, alarmDur time.Duration, outPath string) error {
	if clip.Samples() == 0 {
		return &types.ConfigError{Reason: fmt.Sprintf("alarm clip %s contains no audio", clip.Source)}
	}

	bed, err := bedStreamer(backgroundPath, countdown)
	if err != nil {
		return err
	}

	tail := beep.Take(
		canonical.SampleRate.N(alarmDur),
		beep.Loop(-1, clip.streamer()),
	)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create audio track: %w", err)
	}
	if err := wav.Encode(f, beep.Seq(bed, tail), canonical); err != nil {
		f.Close()
		os.Remove(outPath)
		return fmt.Errorf("failed to encode audio track: %w", err)
	}
	return f.Close()
}

func bedStreamer(backgroundPath string, countdown time.Duration) (beep.Streamer, error) {
	n := canonical.SampleRate.N(countdown)
	if backgroundPath == "" {
		return beep.Silence(n), nil
	}

	if _, err := os.Stat(backgroundPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.Warnf("background music %s not found, using silence", backgroundPath)
			return beep.Silence(n), nil
		}
		return nil, &types.ConfigError{
			Reason: fmt.Sprintf("background music %s is not readable", backgroundPath),
			Err:    err,
		}
	}

	buf, err := decodeFile(backgroundPath)
	if err != nil {
		return nil, &types.ConfigError{
			Reason: fmt.Sprintf("background music %s is not decodable audio", backgroundPath),
			Err:    err,
		}
	}
	if buf.Len() == 0 {
		logging.Warnf("background music %s contains no audio, using silence", backgroundPath)
		return beep.Silence(n), nil
	}
	return beep.Take(n, beep.Loop(-1, buf.Streamer(0, buf.Len()))), nil
}
