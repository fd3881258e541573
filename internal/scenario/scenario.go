package scenario

// Scenario describes one summation demo: the network handed to the external
// simulation engine plus the playback settings for replaying its traces.
// The engine owns all membrane biophysics; this package only carries the
// descriptions across the boundary.
type Scenario struct {
	Name  string `json:"name"`
	Title string `json:"title"`

	Cells       map[string]Cell       `json:"cells"`
	Pops        map[string]Population `json:"pops"`
	Synapses    map[string]Synapse    `json:"synapses"`
	StimSources map[string]StimSource `json:"stim_sources"`
	StimTargets map[string]StimTarget `json:"stim_targets"`
	Conns       map[string]Connection `json:"conns,omitempty"`

	Sim      SimConfig `json:"sim"`
	Playback Playback  `json:"-"`

	// Labels maps engine channel ids to display names for the legend.
	Labels map[string]string `json:"-"`
}

// Cell is a compartmental cell template keyed by section name.
type Cell struct {
	Secs map[string]Section `json:"secs"`
}

// Section is one compartment: geometry, membrane mechanisms and the initial
// potential. Mechanism parameters are opaque to this repo; the engine
// interprets them.
type Section struct {
	Geom  Geometry                      `json:"geom"`
	Mechs map[string]map[string]float64 `json:"mechs"`
	Vinit float64                       `json:"vinit"`
}

// Geometry of a cylindrical compartment, in the engine's units.
type Geometry struct {
	Diam float64 `json:"diam,omitempty"`
	L    float64 `json:"L,omitempty"`
	Ra   float64 `json:"Ra,omitempty"`
	Cm   float64 `json:"cm,omitempty"`
}

// Population instantiates a cell template.
type Population struct {
	CellType string `json:"cell_type"`
	NumCells int    `json:"num_cells"`
}

// Synapse is a two-exponential conductance mechanism.
type Synapse struct {
	Mod  string  `json:"mod"`
	Tau1 float64 `json:"tau1"`
	Tau2 float64 `json:"tau2"`
	E    float64 `json:"e"`
}

// StimSource is a deterministic spike generator.
type StimSource struct {
	Type     string  `json:"type"`
	Start    float64 `json:"start"`
	Interval float64 `json:"interval"`
	Number   int     `json:"number"`
	Noise    float64 `json:"noise"`
}

// StimTarget wires a stimulus source onto cells of a population.
type StimTarget struct {
	Source  string  `json:"source"`
	Pop     string  `json:"pop"`
	Cells   []int   `json:"cells,omitempty"`
	Synapse string  `json:"synapse"`
	Weight  float64 `json:"weight"`
	Delay   float64 `json:"delay"`
	Sec     string  `json:"sec"`
	Loc     float64 `json:"loc"`
}

// Connection is a synaptic connection between two populations.
type Connection struct {
	PrePop  string  `json:"pre_pop"`
	PostPop string  `json:"post_pop"`
	Synapse string  `json:"synapse"`
	Weight  float64 `json:"weight"`
	Delay   float64 `json:"delay"`
	Sec     string  `json:"sec"`
	Loc     float64 `json:"loc"`
}

// SimConfig is the engine-side run configuration.
type SimConfig struct {
	Duration    float64 `json:"duration"`
	Dt          float64 `json:"dt"`
	RecordStep  float64 `json:"record_step"`
	RecordCells []int   `json:"record_cells"`
}

// Playback holds the replay settings for a scenario's traces: reveal speed,
// one-shot stimulus markers, the highlighted summation window and the
// voltage axis of the chart.
type Playback struct {
	Step           int
	Loop           bool
	FPS            int
	Triggers       []float64
	Highlight      bool
	HighlightStart float64
	HighlightEnd   float64
	VMin           float64
	VMax           float64
}
