package config

// Frame Rendering Constants
const (
	// FrameWidth is the output frame width
	FrameWidth = 1280

	// FrameHeight is the output frame height
	FrameHeight = 720

	// FrameRate is the countdown frame rate (one frame per second)
	FrameRate = 1

	// FontSize is the point size of the countdown digits
	FontSize = 120
)

// Audio Constants
const (
	// SampleRate is the canonical sample rate every clip is resampled to
	SampleRate = 44100

	// DefaultAlarmSeconds is the length of the alarm tail in seconds
	DefaultAlarmSeconds = 5

	// DefaultToneFrequency is the synthesized beep frequency in Hz
	DefaultToneFrequency = 1000
)

// Video Output Constants
const (
	// VideoCodec is the video encoding codec
	VideoCodec = "libx264"

	// AudioCodec is the audio encoding codec
	AudioCodec = "aac"

	// AudioBitrate is the audio quality bitrate
	AudioBitrate = "192k"

	// VideoPreset is the ffmpeg encoding speed preset
	VideoPreset = "fast"

	// PixelFormat keeps the output playable in common players
	PixelFormat = "yuv420p"
)

// Default Path Constants
const (
	// DefaultAlarmPath is the alarm file looked up when none is given;
	// a missing file here means "synthesize a beep instead"
	DefaultAlarmPath = "alarm.mp3"

	// DefaultOutputPath is the output video filename
	DefaultOutputPath = "timer.mp4"

	// DefaultFontPath is the preferred countdown font
	DefaultFontPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"
)
