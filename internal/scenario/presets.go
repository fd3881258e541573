package scenario

import "sort"

// ampa is the fast excitatory synapse shared by the summation demos.
var ampa = Synapse{Mod: "Exp2Syn", Tau1: 0.5, Tau2: 5.0, E: 0}

// gabaA has the slower decay and the hyperpolarizing reversal potential
// that make IPSP summation visible.
var gabaA = Synapse{Mod: "Exp2Syn", Tau1: 0.5, Tau2: 10.0, E: -80}

func passiveSoma() Cell {
	return Cell{Secs: map[string]Section{
		"soma": {
			Geom:  Geometry{Diam: 18.8, L: 18.8, Ra: 123.0, Cm: 1.0},
			Mechs: map[string]map[string]float64{"pas": {"g": 0.0000357, "e": -70}},
			Vinit: -70,
		},
	}}
}

// summationPair is the shared layout of the temporal-summation demos: two
// passive cells, one driven by widely spaced stimuli, one by a narrow
// burst, with markers at the stimulus arrival times and the summation
// window highlighted.
func summationPair(name, title, syn string, mech Synapse) *Scenario {
	return &Scenario{
		Name:  name,
		Title: title,
		Cells: map[string]Cell{"passive_cell": passiveSoma()},
		Pops: map[string]Population{
			"postPop": {CellType: "passive_cell", NumCells: 2},
		},
		Synapses: map[string]Synapse{syn: mech},
		StimSources: map[string]StimSource{
			"stimWide":   {Type: "NetStim", Start: 20.0, Interval: 40.0, Number: 2},
			"stimNarrow": {Type: "NetStim", Start: 20.0, Interval: 5.0, Number: 2},
		},
		StimTargets: map[string]StimTarget{
			"stimWide->post0": {
				Source: "stimWide", Pop: "postPop", Cells: []int{0},
				Synapse: syn, Weight: 0.001, Delay: 1.0, Sec: "soma", Loc: 0.5,
			},
			"stimNarrow->post1": {
				Source: "stimNarrow", Pop: "postPop", Cells: []int{1},
				Synapse: syn, Weight: 0.001, Delay: 1.0, Sec: "soma", Loc: 0.5,
			},
		},
		Sim: SimConfig{Duration: 200.0, Dt: 0.025, RecordStep: 0.025, RecordCells: []int{0, 1}},
		Playback: Playback{
			Step: 16, Loop: true, FPS: 12,
			Triggers:  []float64{21, 26, 61},
			Highlight: true, HighlightStart: 20, HighlightEnd: 35,
		},
		Labels: map[string]string{
			"cell_0": "wide interval (40 ms apart)",
			"cell_1": "narrow interval (5 ms apart)",
		},
	}
}

func temporal() *Scenario {
	s := summationPair("temporal", "Temporal Summation Over Time", "AMPA", ampa)
	s.Playback.VMin, s.Playback.VMax = -75, -30
	return s
}

func inhibitory() *Scenario {
	s := summationPair("inhibitory", "Temporal Summation of Inhibitory Synapses (IPSPs)", "GABA", gabaA)
	s.Playback.VMin, s.Playback.VMax = -110, -60
	s.Labels = map[string]string{
		"cell_0": "wide interval (minimal summation)",
		"cell_1": "narrow interval (strong summation)",
	}
	return s
}

// excinh is the two-neuron circuit: a spiking cell driven above threshold by
// a tight AMPA burst inhibits a passive cell through GABA.
func excinh() *Scenario {
	spiking := Cell{Secs: map[string]Section{
		"soma": {
			Geom: Geometry{L: 20, Diam: 20, Cm: 1},
			Mechs: map[string]map[string]float64{
				"hh":  {},
				"pas": {"g": 0.00003, "e": -70},
			},
			Vinit: -70,
		},
	}}
	passive := Cell{Secs: map[string]Section{
		"soma": {
			Geom:  Geometry{L: 20, Diam: 20, Cm: 1},
			Mechs: map[string]map[string]float64{"pas": {"g": 0.00003, "e": -70}},
			Vinit: -70,
		},
	}}

	return &Scenario{
		Name:  "excinh",
		Title: "Temporal Summation, Spike, Inhibitory Spatial Effect",
		Cells: map[string]Cell{"spiking_cell": spiking, "passive_cell": passive},
		Pops: map[string]Population{
			"PopA": {CellType: "spiking_cell", NumCells: 1},
			"PopB": {CellType: "passive_cell", NumCells: 1},
		},
		Synapses: map[string]Synapse{"AMPA": ampa, "GABA": gabaA},
		StimSources: map[string]StimSource{
			"excStimA": {Type: "NetStim", Start: 20, Interval: 4, Number: 3},
		},
		StimTargets: map[string]StimTarget{
			"excStimA->A": {
				Source: "excStimA", Pop: "PopA",
				Synapse: "AMPA", Weight: 0.002, Delay: 1, Sec: "soma", Loc: 0.5,
			},
		},
		Conns: map[string]Connection{
			"A->B_inhibition": {
				PrePop: "PopA", PostPop: "PopB",
				Synapse: "GABA", Weight: 0.003, Delay: 2, Sec: "soma", Loc: 0.5,
			},
		},
		Sim: SimConfig{Duration: 120, Dt: 0.025, RecordStep: 0.025, RecordCells: []int{0, 1}},
		Playback: Playback{
			Step: 10, Loop: true, FPS: 16,
			VMin: -90, VMax: 40,
		},
		Labels: map[string]string{
			"cell_0": "neuron A (spiking)",
			"cell_1": "neuron B (inhibited)",
		},
	}
}

var presets = map[string]func() *Scenario{
	"temporal":   temporal,
	"inhibitory": inhibitory,
	"excinh":     excinh,
}

// Get returns a fresh copy of a built-in scenario, or nil if unknown.
func Get(name string) *Scenario {
	build, ok := presets[name]
	if !ok {
		return nil
	}
	return build()
}

// List returns the built-in scenario names in sorted order.
func List() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
