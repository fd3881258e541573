package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/neurovolt/internal/engine"
	"github.com/san-kum/neurovolt/internal/trace"
)

// Store persists engine recordings on disk, one directory per run with a
// metadata.json and a traces.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Scenario  string    `json:"scenario"`
	Timestamp time.Time `json:"timestamp"`
	Dt        float64   `json:"dt"`
	Duration  float64   `json:"duration"`
	Samples   int       `json:"samples"`
	Channels  []string  `json:"channels"`
}

// Save writes a recording and returns the run id.
func (s *Store) Save(scenarioName string, dt, duration float64, rec *engine.Recording) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenarioName, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	set := rec.Traces()
	meta := RunMetadata{
		ID:        runID,
		Scenario:  scenarioName,
		Timestamp: time.Now(),
		Dt:        dt,
		Duration:  duration,
		Samples:   set.Len(),
		Channels:  set.Channels(),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "traces.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time"}
	header = append(header, set.Channels()...)
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, t := range set.Times() {
		row := []string{strconv.FormatFloat(t, 'f', 6, 64)}
		for _, id := range set.Channels() {
			row = append(row, strconv.FormatFloat(set.Values(id)[i], 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for every stored run, skipping unreadable entries.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTraces rebuilds the trace set of a stored run.
func (s *Store) LoadTraces(runID string) (*trace.Set, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "traces.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("storage: run %s has no trace data", runID)
	}

	header := records[0]
	if len(header) < 1 || header[0] != "time" {
		return nil, fmt.Errorf("storage: run %s has a malformed trace header", runID)
	}
	channels := header[1:]

	times := make([]float64, 0, len(records)-1)
	values := make(map[string][]float64, len(channels))
	for _, id := range channels {
		values[id] = make([]float64, 0, len(records)-1)
	}

	for _, record := range records[1:] {
		if len(record) != len(header) {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		times = append(times, t)
		for j, id := range channels {
			v, err := strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				v = 0
			}
			values[id] = append(values[id], v)
		}
	}

	return trace.New(times, values), nil
}

// ExportJSON writes a stored run back out in the engine's recording format.
func (s *Store) ExportJSON(runID string, out *os.File) error {
	set, err := s.LoadTraces(runID)
	if err != nil {
		return err
	}

	rec := engine.Recording{
		Times:    set.Times(),
		Voltages: make(map[string][]float64, len(set.Channels())),
	}
	for _, id := range set.Channels() {
		rec.Voltages[id] = set.Values(id)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
