package trace

import "testing"

func TestSetChannels(t *testing.T) {
	times := []float64{0, 0.025, 0.05, 0.075}
	set := New(times, map[string][]float64{
		"cell_1": {-70, -69, -68, -67},
		"cell_0": {-70, -70, -70, -70},
	})

	if set.Len() != 4 {
		t.Errorf("expected 4 samples, got %d", set.Len())
	}

	channels := set.Channels()
	if len(channels) != 2 {
		t.Fatalf("expected 2 channels, got %d", len(channels))
	}
	if channels[0] != "cell_0" || channels[1] != "cell_1" {
		t.Errorf("expected sorted channel order, got %v", channels)
	}
}

func TestSetMissingChannel(t *testing.T) {
	set := New([]float64{0, 1}, map[string][]float64{
		"cell_0": {-70, -69},
	})

	if v := set.Values("nonexistent"); v != nil {
		t.Errorf("expected nil for missing channel, got %v", v)
	}
	if set.Has("nonexistent") {
		t.Error("Has should be false for missing channel")
	}

	// Other channels are unaffected.
	if v := set.Values("cell_0"); len(v) != 2 {
		t.Errorf("expected 2 values for cell_0, got %d", len(v))
	}
}

func TestSetDropsLengthMismatch(t *testing.T) {
	set := New([]float64{0, 1, 2}, map[string][]float64{
		"cell_0": {-70, -69, -68},
		"cell_1": {-70}, // malformed engine output
	})

	if set.Has("cell_1") {
		t.Error("mismatched channel should be dropped")
	}
	dropped := set.Dropped()
	if len(dropped) != 1 || dropped[0] != "cell_1" {
		t.Errorf("expected dropped [cell_1], got %v", dropped)
	}
	if len(set.Channels()) != 1 {
		t.Errorf("expected 1 usable channel, got %d", len(set.Channels()))
	}
}

func TestSetEmpty(t *testing.T) {
	set := New(nil, nil)
	if set.Len() != 0 {
		t.Errorf("expected empty set, got %d samples", set.Len())
	}
	if len(set.Channels()) != 0 {
		t.Errorf("expected no channels, got %v", set.Channels())
	}
}
