package playback

// Window is a half-open [Start, End) time interval whose visibility is
// recomputed from the revealed time every tick. It holds no state, so it
// toggles off on its own when a restarted cycle drops below Start.
type Window struct {
	Start float64
	End   float64
}

// NewWindow validates the interval at construction time.
func NewWindow(start, end float64) (Window, error) {
	if end <= start {
		return Window{}, ErrInvalidWindow
	}
	return Window{Start: start, End: end}, nil
}

// Visible reports whether the revealed time lies inside the window.
func (w Window) Visible(revealedUpTo float64) bool {
	return revealedUpTo >= w.Start && revealedUpTo < w.End
}
