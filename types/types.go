package types

// Frame is one rendered countdown still. Frames are written into a per-run
// workspace and consumed by the assembler in index order.
type Frame struct {
	// Remaining is the countdown value shown on the frame, in whole seconds.
	Remaining int

	// Label is the rendered MM:SS text.
	Label string

	// Path is the PNG location inside the run workspace.
	Path string
}

// FontSource reports where the countdown font came from. Loading never fails
// hard: when the preferred font is unusable the embedded fallback is used and
// Reason says why.
type FontSource struct {
	Path     string
	Fallback bool
	Reason   string
}
