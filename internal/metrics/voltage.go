package metrics

import (
	"math"

	"github.com/san-kum/neurovolt/internal/trace"
)

// Metric accumulates a scalar over one channel's samples.
type Metric interface {
	Name() string
	Observe(v float64)
	Value() float64
	Reset()
}

// Peak tracks the maximum membrane potential seen.
type Peak struct {
	max     float64
	samples int
}

func NewPeak() *Peak { return &Peak{max: math.Inf(-1)} }

func (p *Peak) Name() string { return "peak" }

func (p *Peak) Observe(v float64) {
	if v > p.max {
		p.max = v
	}
	p.samples++
}

func (p *Peak) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return p.max
}

func (p *Peak) Reset() {
	p.max = math.Inf(-1)
	p.samples = 0
}

// Minimum tracks the deepest hyperpolarization.
type Minimum struct {
	min     float64
	samples int
}

func NewMinimum() *Minimum { return &Minimum{min: math.Inf(1)} }

func (m *Minimum) Name() string { return "min" }

func (m *Minimum) Observe(v float64) {
	if v < m.min {
		m.min = v
	}
	m.samples++
}

func (m *Minimum) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.min
}

func (m *Minimum) Reset() {
	m.min = math.Inf(1)
	m.samples = 0
}

// Final tracks the last observed potential.
type Final struct {
	last    float64
	samples int
}

func NewFinal() *Final { return &Final{} }

func (f *Final) Name() string { return "final" }

func (f *Final) Observe(v float64) {
	f.last = v
	f.samples++
}

func (f *Final) Value() float64 {
	if f.samples == 0 {
		return 0
	}
	return f.last
}

func (f *Final) Reset() {
	f.last = 0
	f.samples = 0
}

// Summary is the per-channel result block printed by the summary command.
type Summary struct {
	Peak  float64
	Min   float64
	Final float64
}

// Summarize runs the standard metrics over every channel of a recording.
func Summarize(set *trace.Set) map[string]Summary {
	out := make(map[string]Summary, len(set.Channels()))
	for _, id := range set.Channels() {
		peak, minimum, final := NewPeak(), NewMinimum(), NewFinal()
		for _, v := range set.Values(id) {
			peak.Observe(v)
			minimum.Observe(v)
			final.Observe(v)
		}
		out[id] = Summary{Peak: peak.Value(), Min: minimum.Value(), Final: final.Value()}
	}
	return out
}
