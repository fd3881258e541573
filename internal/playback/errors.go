package playback

import "errors"

// Domain errors for playback configuration and control.
var (
	// ErrInvalidStep indicates a non-positive reveal step.
	ErrInvalidStep = errors.New("playback: step must be positive")

	// ErrInvalidWindow indicates a highlight window with end <= start.
	ErrInvalidWindow = errors.New("playback: highlight window end must be after start")

	// ErrNotRunning indicates a tick was delivered before Start.
	ErrNotRunning = errors.New("playback: controller not running")

	// ErrStopped indicates a tick was delivered after the stop signal.
	// It is a terminal condition, not a failure.
	ErrStopped = errors.New("playback: controller stopped")
)
