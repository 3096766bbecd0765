package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/heartbeat/internal/scene"
)

// Store keeps recorded frame traces on disk, one directory per run holding
// metadata.json and frames.csv.
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
	ID        string             `json:"id"`
	Preset    string             `json:"preset"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Rate      float64            `json:"rate"`
	Duration  float64            `json:"duration"`
	Frames    int                `json:"frames"`
	Stats     map[string]float64 `json:"stats"`
}

var header = []string{
	"time", "beat", "rot_x", "rot_y",
	"heart_scale", "heart_size", "heart_r", "heart_g", "heart_b",
	"text_scale", "text_size", "text_r", "text_g", "text_b",
	"explosion_visible", "explosion_scale", "explosion_size", "explosion_r", "explosion_g", "explosion_b",
}

// Save writes frames sampled at rate and returns the new run id. A run that
// fails part way is removed.
func (s *Store) Save(preset string, seed int64, rate float64, frames []scene.Frame, stats map[string]float64) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", preset, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Preset:    preset,
		Timestamp: now,
		Seed:      seed,
		Rate:      rate,
		Frames:    len(frames),
		Stats:     stats,
	}
	if rate > 0 {
		meta.Duration = float64(len(frames)) / rate
	}

	if err := writeRun(runDir, meta, frames); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}
	return runID, nil
}

func writeRun(runDir string, meta RunMetadata, frames []scene.Frame) error {
	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, f := range frames {
		if err := w.Write(frameRow(f)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func frameRow(f scene.Frame) []string {
	vis := "0"
	if f.Explosion.Visible {
		vis = "1"
	}
	return []string{
		ftoa(f.Time), ftoa(f.Beat), ftoa(f.Heart.RotationX), ftoa(f.Heart.RotationY),
		ftoa(f.Heart.Scale), ftoa(f.Heart.Size),
		ftoa(f.Heart.Color.R), ftoa(f.Heart.Color.G), ftoa(f.Heart.Color.B),
		ftoa(f.Text.Scale), ftoa(f.Text.Size),
		ftoa(f.Text.Color.R), ftoa(f.Text.Color.G), ftoa(f.Text.Color.B),
		vis, ftoa(f.Explosion.Scale), ftoa(f.Explosion.Size),
		ftoa(f.Explosion.Color.R), ftoa(f.Explosion.Color.G), ftoa(f.Explosion.Color.B),
	}
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// List returns every readable run, oldest first.
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
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

// LoadFrames reads back the recorded columns of a run. Rows that fail to
// parse are skipped.
func (s *Store) LoadFrames(runID string) ([]scene.Frame, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []scene.Frame{}, nil
	}

	frames := make([]scene.Frame, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != len(header) {
			continue
		}
		vals := make([]float64, len(record))
		ok := true
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}
		frames = append(frames, parseRow(vals))
	}
	return frames, nil
}

// parseRow rebuilds a frame from one row. Heart and text share the recorded
// rotation and the explosion is unrotated, as the animator produces them.
// Opacity is a style constant and is not recorded.
func parseRow(v []float64) scene.Frame {
	var f scene.Frame
	f.Time, f.Beat = v[0], v[1]
	rx, ry := v[2], v[3]
	f.Heart = scene.ShapeFrame{
		RotationX: rx,
		RotationY: ry,
		Scale:     v[4],
		Size:      v[5],
		Color:     scene.RGB{R: v[6], G: v[7], B: v[8]},
		Visible:   true,
	}
	f.Text = scene.ShapeFrame{
		RotationX: rx,
		RotationY: ry,
		Scale:     v[9],
		Size:      v[10],
		Color:     scene.RGB{R: v[11], G: v[12], B: v[13]},
		Visible:   true,
	}
	f.Explosion = scene.ShapeFrame{
		Visible: v[14] != 0,
		Scale:   v[15],
		Size:    v[16],
		Color:   scene.RGB{R: v[17], G: v[18], B: v[19]},
	}
	return f
}
