package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Signs.Count != 10 {
		t.Errorf("signs.count = %d, want 10", cfg.Signs.Count)
	}
	if cfg.Signs.Size != 24 {
		t.Errorf("signs.size = %g, want 24", cfg.Signs.Size)
	}
	if cfg.Signs.Max != 200 {
		t.Errorf("signs.max = %d, want 200", cfg.Signs.Max)
	}
	if cfg.Signs.CooldownMS != 300 {
		t.Errorf("signs.cooldown_ms = %g, want 300", cfg.Signs.CooldownMS)
	}
	if cfg.Derived.GalleryPath != "assets/gallery/gallery.csv" {
		t.Errorf("gallery path = %q, want the sample manifest", cfg.Derived.GalleryPath)
	}
	if cfg.Carousel.Breakpoint != 600 {
		t.Errorf("carousel.breakpoint = %d, want 600", cfg.Carousel.Breakpoint)
	}
	if cfg.Derived.FrameMS <= 0 {
		t.Errorf("derived frame ms = %g, want > 0", cfg.Derived.FrameMS)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("signs:\n  count: 3\n  max: 12\ncarousel:\n  gallery: work/gallery.csv\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Signs.Count != 3 || cfg.Signs.Max != 12 {
		t.Errorf("got count=%d max=%d, want 3 and 12", cfg.Signs.Count, cfg.Signs.Max)
	}
	// Untouched fields keep their defaults
	if cfg.Signs.Speed != 2 {
		t.Errorf("signs.speed = %g, want default 2", cfg.Signs.Speed)
	}
	want := filepath.Join(dir, "work", "gallery.csv")
	if cfg.Derived.GalleryPath != want {
		t.Errorf("gallery path = %q, want %q", cfg.Derived.GalleryPath, want)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero fps", "screen:\n  target_fps: 0\n"},
		{"zero size", "signs:\n  size: 0\n"},
		{"cap below count", "signs:\n  count: 20\n  max: 5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Signs.Max = 50

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load snapshot error: %v", err)
	}
	if loaded.Signs.Max != 50 {
		t.Errorf("signs.max = %d after roundtrip, want 50", loaded.Signs.Max)
	}
}
