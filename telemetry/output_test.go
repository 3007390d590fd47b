package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/folio/config"
)

func TestRecorderDisabled(t *testing.T) {
	r, err := NewRecorder("")
	if err != nil || r != nil {
		t.Fatalf("NewRecorder(\"\") = %v, %v; want nil, nil", r, err)
	}
	// A nil recorder accepts every call.
	if err := r.RecordWindow(WindowStats{}, FrameSummary{}); err != nil {
		t.Error(err)
	}
	if err := r.SaveConfig(nil); err != nil {
		t.Error(err)
	}
	if err := r.Close(); err != nil {
		t.Error(err)
	}
	if r.Dir() != "" {
		t.Error("nil recorder reports a directory")
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestRecorderWritesRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	r, err := NewRecorder(dir)
	if err != nil {
		t.Fatalf("NewRecorder error: %v", err)
	}

	for i := int32(1); i <= 2; i++ {
		frames := FrameSummary{Share: [phaseCount]float64{10, 80, 10}}
		if err := r.RecordWindow(WindowStats{WindowEndTick: i * 60, Signs: 10, Cap: 200}, frames); err != nil {
			t.Fatalf("RecordWindow error: %v", err)
		}
	}

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := r.SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig error: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	windows := readLines(t, filepath.Join(dir, WindowsFile))
	if len(windows) != 3 {
		t.Fatalf("%s has %d lines, want header + 2 rows", WindowsFile, len(windows))
	}
	if !strings.HasPrefix(windows[0], "window_end,sim_time,signs,cap") {
		t.Errorf("unexpected header %q", windows[0])
	}

	frames := readLines(t, filepath.Join(dir, FramesFile))
	if len(frames) != 3 {
		t.Fatalf("%s has %d lines, want header + 2 rows", FramesFile, len(frames))
	}
	if !strings.Contains(frames[0], "signs_pct") {
		t.Errorf("%s header missing signs_pct: %q", FramesFile, frames[0])
	}
	if !strings.HasPrefix(frames[2], "120,") {
		t.Errorf("second frame row = %q, want window_end 120", frames[2])
	}

	if _, err := os.Stat(filepath.Join(dir, ConfigFile)); err != nil {
		t.Errorf("config snapshot missing: %v", err)
	}
}
