package engine

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/san-kum/neurovolt/internal/trace"
)

// Recording is the engine's output for one run: a shared time axis and one
// membrane-potential series per recorded cell, keyed by channel id
// (cell_0, cell_1, ...).
type Recording struct {
	Times    []float64            `json:"t"`
	Voltages map[string][]float64 `json:"v"`
}

// DecodeRecording parses engine output. An empty time axis is accepted; a
// missing one is the engine failing its contract.
func DecodeRecording(data []byte) (*Recording, error) {
	var rec Recording
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("engine: decode recording: %w", err)
	}
	if rec.Times == nil {
		return nil, fmt.Errorf("engine: recording has no time axis")
	}
	return &rec, nil
}

// ReadRecording loads a previously saved engine output file.
func ReadRecording(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeRecording(data)
}

// Traces converts the recording into the immutable store playback reads
// from. Channels with malformed lengths degrade there, not here.
func (r *Recording) Traces() *trace.Set {
	return trace.New(r.Times, r.Voltages)
}
