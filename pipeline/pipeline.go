// Package pipeline runs the three stages in order: render frames, build the
// audio track, encode the video. Stages share nothing but the per-run
// workspace, which is removed on every exit path.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"timervid/alarm"
	"timervid/config"
	"timervid/frames"
	"timervid/logging"
	"timervid/video"
)

// Stage identifies a pipeline step for progress reporting.
type Stage string

const (
	StageFrames Stage = "frames"
	StageAudio  Stage = "audio"
	StageEncode Stage = "encode"
)

// Event reports a stage starting. Emitted once per stage, in order.
type Event struct {
	Stage   Stage
	Message string
}

// Run executes the full pipeline for cfg. emit receives a progress event as
// each stage starts; pass nil to ignore them.
func Run(cfg config.Config, emit func(Event)) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if emit == nil {
		emit = func(Event) {}
	}

	workdir := filepath.Join(os.TempDir(), "timervid-"+uuid.NewString())
	if err := os.MkdirAll(workdir, 0o755); err != nil {
		return fmt.Errorf("failed to create workspace: %w", err)
	}
	defer os.RemoveAll(workdir)
	logging.Debugf("workspace: %s", workdir)

	total := cfg.TotalSeconds()
	emit(Event{Stage: StageFrames, Message: fmt.Sprintf("rendering %d frames", total+1)})
	rendered, err := frames.Generate(workdir, cfg)
	if err != nil {
		return fmt.Errorf("frame generation failed: %w", err)
	}
	logging.Debugf("rendered %d frames, %s down to %s",
		len(rendered), rendered[0].Label, rendered[len(rendered)-1].Label)

	emit(Event{Stage: StageAudio, Message: "building audio track"})
	clip, err := alarm.Resolve(cfg.AlarmPath, cfg.ToneFrequency, cfg.AlarmDuration())
	if err != nil {
		return err
	}
	if clip.Synthesized {
		logging.Warnf("alarm file %s not found, synthesized a %s beep", cfg.AlarmPath, clip.Source)
	} else {
		logging.Debugf("alarm loaded from %s (%s)", clip.Source, clip.Duration())
	}

	audioPath := filepath.Join(workdir, "track.wav")
	if err := alarm.BuildTrack(clip, cfg.BackgroundPath, cfg.Duration(), cfg.AlarmDuration(), audioPath); err != nil {
		return err
	}

	emit(Event{Stage: StageEncode, Message: fmt.Sprintf("encoding %s", cfg.OutputPath)})
	if err := video.Assemble(frames.Pattern(workdir), audioPath, cfg.OutputPath); err != nil {
		return err
	}
	return nil
}
