// Package storage persists headless simulation runs. Each run gets its own
// directory under the base dir with a metadata.json and a states.csv holding
// the sampled body trajectories.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes one recorded run.
type RunMetadata struct {
	ID          string             `json:"id"`
	System      string             `json:"system"` // preset or config name
	Timestamp   time.Time          `json:"timestamp"`
	StepSeconds float64            `json:"step_seconds"`
	Steps       int                `json:"steps"`
	Bodies      []string           `json:"bodies"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Series is the sampled trajectory of a run: one row per sample, four columns
// per body (x, y, vx, vy in SI units).
type Series struct {
	Times  []float64
	Bodies []string
	States [][]float64
}

// Append records one sample. states must hold 4 values per body.
func (sr *Series) Append(t float64, states []float64) {
	sr.Times = append(sr.Times, t)
	row := make([]float64, len(states))
	copy(row, states)
	sr.States = append(sr.States, row)
}

// Save persists a run and returns its generated ID.
func (s *Store) Save(system string, stepSeconds float64, metrics map[string]float64, series *Series) (string, error) {
	runID := fmt.Sprintf("%s_%d", system, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		System:      system,
		Timestamp:   time.Now(),
		StepSeconds: stepSeconds,
		Steps:       len(series.Times),
		Bodies:      series.Bodies,
		Metrics:     metrics,
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

	csvFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time"}
	for _, name := range series.Bodies {
		header = append(header,
			name+"_x", name+"_y", name+"_vx", name+"_vy")
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, t := range series.Times {
		row := []string{strconv.FormatFloat(t, 'f', 3, 64)}
		for _, val := range series.States[i] {
			row = append(row, strconv.FormatFloat(val, 'g', 10, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns the metadata of every readable run under the base dir.
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

// LoadSeries reads the sampled trajectories of a run back.
func (s *Store) LoadSeries(runID string) (*Series, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "states.csv"))
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
		return &Series{}, nil
	}

	series := &Series{}
	// header columns come in groups of four per body
	for i := 1; i+3 < len(records[0]); i += 4 {
		series.Bodies = append(series.Bodies, strings.TrimSuffix(records[0][i], "_x"))
	}

	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		state := make([]float64, 0, len(record)-1)
		for _, field := range record[1:] {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				continue
			}
			state = append(state, val)
		}
		series.Times = append(series.Times, t)
		series.States = append(series.States, state)
	}

	return series, nil
}
