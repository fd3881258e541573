package scenario

import "testing"

func TestList(t *testing.T) {
	names := List()
	if len(names) != 3 {
		t.Fatalf("expected 3 scenarios, got %v", names)
	}
	want := []string{"excinh", "inhibitory", "temporal"}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("names[%d] = %s, want %s", i, names[i], name)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if s := Get("nonexistent"); s != nil {
		t.Errorf("expected nil for unknown scenario, got %v", s.Name)
	}
}

func TestTemporalPreset(t *testing.T) {
	s := Get("temporal")
	if s == nil {
		t.Fatal("expected temporal scenario")
	}

	if s.Sim.Duration != 200.0 || s.Sim.Dt != 0.025 {
		t.Errorf("sim config = %+v, want duration 200 dt 0.025", s.Sim)
	}
	if s.Playback.Step != 16 {
		t.Errorf("playback step = %d, want 16", s.Playback.Step)
	}
	if len(s.Playback.Triggers) != 3 || s.Playback.Triggers[0] != 21 {
		t.Errorf("triggers = %v, want [21 26 61]", s.Playback.Triggers)
	}
	if !s.Playback.Highlight || s.Playback.HighlightStart != 20 || s.Playback.HighlightEnd != 35 {
		t.Errorf("highlight window = (%v, %v), want (20, 35)", s.Playback.HighlightStart, s.Playback.HighlightEnd)
	}

	wide := s.StimSources["stimWide"]
	narrow := s.StimSources["stimNarrow"]
	if wide.Interval != 40.0 || narrow.Interval != 5.0 {
		t.Errorf("stim intervals = %v/%v, want 40/5", wide.Interval, narrow.Interval)
	}
}

func TestInhibitoryPresetUsesGABA(t *testing.T) {
	s := Get("inhibitory")
	if s == nil {
		t.Fatal("expected inhibitory scenario")
	}
	syn, ok := s.Synapses["GABA"]
	if !ok {
		t.Fatal("expected GABA synapse")
	}
	if syn.E != -80 {
		t.Errorf("GABA reversal potential = %v, want -80", syn.E)
	}
	if syn.Tau2 != 10.0 {
		t.Errorf("GABA tau2 = %v, want 10", syn.Tau2)
	}
	for name, tgt := range s.StimTargets {
		if tgt.Synapse != "GABA" {
			t.Errorf("target %s uses %s, want GABA", name, tgt.Synapse)
		}
	}
}

func TestExcinhPreset(t *testing.T) {
	s := Get("excinh")
	if s == nil {
		t.Fatal("expected excinh scenario")
	}
	if _, ok := s.Cells["spiking_cell"].Secs["soma"].Mechs["hh"]; !ok {
		t.Error("spiking cell should carry the hh mechanism")
	}
	conn, ok := s.Conns["A->B_inhibition"]
	if !ok {
		t.Fatal("expected A->B inhibitory connection")
	}
	if conn.Synapse != "GABA" || conn.PrePop != "PopA" || conn.PostPop != "PopB" {
		t.Errorf("unexpected connection %+v", conn)
	}
	if len(s.Playback.Triggers) != 0 || s.Playback.Highlight {
		t.Error("excinh replays without markers or a highlight window")
	}
	if s.Playback.Step != 10 {
		t.Errorf("playback step = %d, want 10", s.Playback.Step)
	}
}
