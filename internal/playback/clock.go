package playback

// Clock maps a frame counter to a reveal index into the trace set. Each
// Advance reveals step more samples, saturating at the trace length, so no
// index it returns can ever be out of range.
type Clock struct {
	step   int
	length int
	frame  int
	last   int
}

// NewClock returns a clock revealing step samples per tick over a trace of
// the given length. A non-positive step is a configuration error.
func NewClock(step, length int) (*Clock, error) {
	if step <= 0 {
		return nil, ErrInvalidStep
	}
	if length < 0 {
		length = 0
	}
	return &Clock{step: step, length: length}, nil
}

// Advance increments the frame counter and returns the new reveal index,
// clamped to the trace length.
func (c *Clock) Advance() int {
	c.frame++
	idx := c.frame * c.step
	if idx > c.length {
		idx = c.length
	}
	c.last = idx
	return idx
}

// HasCompletedCycle reports whether the last returned index reached the end
// of the trace. For an empty trace this is true after the first Advance, so
// an empty recording completes one bounded cycle per tick instead of
// spinning.
func (c *Clock) HasCompletedCycle() bool {
	return c.frame > 0 && c.last == c.length
}

// Restart resets the frame counter for a new cycle.
func (c *Clock) Restart() {
	c.frame = 0
	c.last = 0
}
