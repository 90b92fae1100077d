package types

import "fmt"

// ConfigError means the user asked for something the pipeline cannot do:
// a zero-length timer, an alarm file that exists but is not audio, and so on.
// These exit with a usage-style status instead of a runtime failure.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ConfigError) Unwrap() error { return e.Err }

// EncodingError wraps a failed or missing ffmpeg. Always fatal; the assembler
// removes any partial output before returning one.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding failed: %v", e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }
