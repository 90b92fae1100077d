// Package video muxes the rendered frame sequence and the audio track into
// the final mp4 with ffmpeg.
package video

import (
	"fmt"
	"os"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"timervid/config"
	"timervid/types"
)

// Assemble encodes the frames matching framePattern at the countdown frame
// rate, muxed with the audio track, into outputPath. The audio track runs
// past the last frame by design; -shortest cuts the container at the video
// end so the alarm starts exactly when 00:00 appears.
//
// ffmpeg failing or missing from PATH is fatal. A partial output file is
// never left behind.
func Assemble(framePattern, audioPath, outputPath string) error {
	if err := command(framePattern, audioPath, outputPath).Run(); err != nil {
		os.Remove(outputPath)
		return &types.EncodingError{Err: fmt.Errorf("ffmpeg: %w", err)}
	}
	return nil
}

// command builds the ffmpeg invocation. Split out so tests can inspect the
// compiled arguments without running ffmpeg.
func command(framePattern, audioPath, outputPath string) *ffmpeg.Stream {
	frames := ffmpeg.Input(framePattern, ffmpeg.KwArgs{
		"framerate": config.FrameRate,
	})
	audio := ffmpeg.Input(audioPath)

	return ffmpeg.Output([]*ffmpeg.Stream{frames, audio}, outputPath, ffmpeg.KwArgs{
		"c:v":      config.VideoCodec,
		"c:a":      config.AudioCodec,
		"b:a":      config.AudioBitrate,
		"preset":   config.VideoPreset,
		"pix_fmt":  config.PixelFormat,
		"shortest": "",
	}).OverWriteOutput()
}
