package playback

// TriggerSet holds one-shot time-threshold markers. A trigger fires on the
// first evaluation where the revealed time has passed its threshold, then
// stays silent until Reset.
type TriggerSet struct {
	thresholds []float64
	fired      []bool
}

// NewTriggerSet builds a set from threshold times in firing-priority
// (insertion) order.
func NewTriggerSet(thresholds []float64) *TriggerSet {
	return &TriggerSet{
		thresholds: append([]float64(nil), thresholds...),
		fired:      make([]bool, len(thresholds)),
	}
}

// Evaluate marks every not-yet-fired trigger whose threshold the revealed
// time has reached, and returns their threshold times in insertion order.
// Calling it again with the same or a later time returns nothing for
// already-fired triggers.
func (s *TriggerSet) Evaluate(revealedUpTo float64) []float64 {
	var fired []float64
	for i, threshold := range s.thresholds {
		if s.fired[i] || revealedUpTo < threshold {
			continue
		}
		s.fired[i] = true
		fired = append(fired, threshold)
	}
	return fired
}

// Reset clears all fired flags for a new cycle.
func (s *TriggerSet) Reset() {
	for i := range s.fired {
		s.fired[i] = false
	}
}

// Len returns the number of triggers in the set.
func (s *TriggerSet) Len() int { return len(s.thresholds) }
