package telemetry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/folio/config"
)

// Output file names inside a run directory.
const (
	WindowsFile = "telemetry.csv"
	FramesFile  = "perf.csv"
	ConfigFile  = "config.yaml"
)

// csvTable appends gocsv rows to one file, writing the header once.
type csvTable struct {
	f       *os.File
	started bool
}

func createTable(dir, name string) (*csvTable, error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return &csvTable{f: f}, nil
}

// append writes rows, which must be a slice of csv-tagged structs.
func (t *csvTable) append(rows any) error {
	write := gocsv.MarshalWithoutHeaders
	if !t.started {
		write = gocsv.Marshal
	}
	if err := write(rows, t.f); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(t.f.Name()), err)
	}
	t.started = true
	return nil
}

// Recorder writes a run to a directory: one telemetry.csv row per stats
// window, the frame timing of that window to perf.csv, and the config the
// run started with. A nil Recorder records nothing.
type Recorder struct {
	dir     string
	windows *csvTable
	frames  *csvTable
}

// NewRecorder creates dir and opens the CSV files in it.
// Returns nil when dir is empty.
func NewRecorder(dir string) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	windows, err := createTable(dir, WindowsFile)
	if err != nil {
		return nil, err
	}
	frames, err := createTable(dir, FramesFile)
	if err != nil {
		windows.f.Close()
		return nil, err
	}
	return &Recorder{dir: dir, windows: windows, frames: frames}, nil
}

// SaveConfig snapshots cfg next to the CSV files.
func (r *Recorder) SaveConfig(cfg *config.Config) error {
	if r == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(r.dir, ConfigFile))
}

// RecordWindow appends a flushed window and the frame timing measured
// while it ran.
func (r *Recorder) RecordWindow(stats WindowStats, frames FrameSummary) error {
	if r == nil {
		return nil
	}
	if err := r.windows.append([]WindowStats{stats}); err != nil {
		return err
	}
	return r.frames.append([]frameRow{frames.row(stats.WindowEndTick)})
}

// Dir returns the output directory, or "" when recording is off.
func (r *Recorder) Dir() string {
	if r == nil {
		return ""
	}
	return r.dir
}

// Close closes both CSV files.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	return errors.Join(r.windows.f.Close(), r.frames.f.Close())
}
