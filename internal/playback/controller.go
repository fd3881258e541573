package playback

import (
	"math"

	"github.com/san-kum/neurovolt/internal/trace"
)

// Phase is the controller lifecycle state.
type Phase int

const (
	Idle Phase = iota
	Running
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Config holds the playback options recognized by the controller.
type Config struct {
	// Step is the number of samples revealed per tick.
	Step int
	// Loop restarts the cycle automatically after the final frame.
	Loop bool
	// Triggers are one-shot marker thresholds in trace time units.
	Triggers []float64
	// Highlight is an optional time window emphasized while the revealed
	// time lies inside it.
	Highlight *Window
}

// ChannelSlice is the visible portion of one channel's trace.
type ChannelSlice struct {
	ID     string
	Values []float64
}

// Frame is the renderable state emitted once per tick. Slices share backing
// arrays with the trace set and must be treated as read-only.
type Frame struct {
	Index         int
	Times         []float64
	Channels      []ChannelSlice
	Markers       []float64
	HighlightOn   bool
	CycleComplete bool
}

// Controller owns all cross-tick playback state: the clock, the trigger
// flags and the accumulated markers. It is not safe for concurrent use; the
// host scheduler must deliver ticks serially.
type Controller struct {
	store     *trace.Set
	clock     *Clock
	triggers  *TriggerSet
	highlight *Window
	loop      bool
	phase     Phase
	markers   []float64
}

// NewController validates the configuration and builds a controller in the
// Idle phase. Configuration errors surface here, never during a run.
func NewController(store *trace.Set, cfg Config) (*Controller, error) {
	clock, err := NewClock(cfg.Step, store.Len())
	if err != nil {
		return nil, err
	}
	if cfg.Highlight != nil && cfg.Highlight.End <= cfg.Highlight.Start {
		return nil, ErrInvalidWindow
	}
	return &Controller{
		store:     store,
		clock:     clock,
		triggers:  NewTriggerSet(cfg.Triggers),
		highlight: cfg.Highlight,
		loop:      cfg.Loop,
	}, nil
}

// Start accepts ticks. It has no effect once stopped.
func (c *Controller) Start() {
	if c.phase == Idle {
		c.phase = Running
	}
}

// Stop is the external stop signal: a terminal transition from any phase.
// Further ticks are rejected with ErrStopped.
func (c *Controller) Stop() { c.phase = Stopped }

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase { return c.phase }

// Restart begins a fresh cycle immediately, regardless of position.
func (c *Controller) Restart() {
	c.clock.Restart()
	c.triggers.Reset()
	c.markers = c.markers[:0]
}

// Tick advances playback by one frame and returns the renderable state.
//
// When the clock completes a cycle and looping is enabled, the completed
// cycle's final frame is still emitted with all markers present; the reset
// happens after composing it, so the next tick starts a new cycle.
func (c *Controller) Tick() (Frame, error) {
	switch c.phase {
	case Idle:
		return Frame{}, ErrNotRunning
	case Stopped:
		return Frame{}, ErrStopped
	}

	idx := c.clock.Advance()

	revealedUpTo := math.Inf(-1)
	if idx > 0 {
		revealedUpTo = c.store.Times()[idx-1]
	}

	c.markers = append(c.markers, c.triggers.Evaluate(revealedUpTo)...)

	frame := Frame{
		Index:         idx,
		Times:         c.store.Times()[:idx],
		Channels:      c.visibleSlices(idx),
		Markers:       append([]float64(nil), c.markers...),
		CycleComplete: c.clock.HasCompletedCycle(),
	}
	if c.highlight != nil {
		frame.HighlightOn = c.highlight.Visible(revealedUpTo)
	}

	if frame.CycleComplete && c.loop {
		c.Restart()
	}
	return frame, nil
}

// visibleSlices returns the first idx samples of every channel. A channel
// the store cannot serve degrades to an empty slice; the others are
// unaffected.
func (c *Controller) visibleSlices(idx int) []ChannelSlice {
	slices := make([]ChannelSlice, 0, len(c.store.Channels()))
	for _, id := range c.store.Channels() {
		values := c.store.Values(id)
		if values == nil {
			slices = append(slices, ChannelSlice{ID: id})
			continue
		}
		slices = append(slices, ChannelSlice{ID: id, Values: values[:idx]})
	}
	return slices
}

// Degraded returns the channels the engine produced malformed data for.
// Hosts may surface this once as a diagnostic.
func (c *Controller) Degraded() []string { return c.store.Dropped() }
