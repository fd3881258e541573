package trace

import (
	"errors"
	"sort"
)

// ErrMissingChannel indicates a requested channel is absent from the set or
// was discarded because the engine returned malformed data for it.
var ErrMissingChannel = errors.New("trace: missing channel")

// Set holds the recorded traces of one engine run: a shared time axis and
// one voltage series per recorded channel. A Set is immutable after
// construction; playback only ever reads from it.
type Set struct {
	times    []float64
	channels map[string][]float64
	order    []string
	dropped  []string
}

// New builds a Set from engine output. Channels whose series length does not
// match the time axis are dropped rather than rejected, so playback degrades
// to an empty trace for that channel instead of failing the whole run.
func New(times []float64, channels map[string][]float64) *Set {
	s := &Set{
		times:    times,
		channels: make(map[string][]float64, len(channels)),
	}
	for id, values := range channels {
		if len(values) != len(times) {
			s.dropped = append(s.dropped, id)
			continue
		}
		s.channels[id] = values
		s.order = append(s.order, id)
	}
	sort.Strings(s.order)
	sort.Strings(s.dropped)
	return s
}

// Len returns the number of samples on the shared time axis.
func (s *Set) Len() int { return len(s.times) }

// Times returns the shared time axis. Callers must not mutate it.
func (s *Set) Times() []float64 { return s.times }

// Channels returns the channel identifiers in stable (sorted) order.
func (s *Set) Channels() []string { return s.order }

// Dropped returns the identifiers of channels discarded at construction
// because their series length did not match the time axis.
func (s *Set) Dropped() []string { return s.dropped }

// Values returns the series for a channel, or nil if the channel is absent.
// An absent channel is not an error during playback; the controller renders
// it as an empty trace.
func (s *Set) Values(id string) []float64 { return s.channels[id] }

// Has reports whether the set holds a usable series for the channel.
func (s *Set) Has(id string) bool {
	_, ok := s.channels[id]
	return ok
}
