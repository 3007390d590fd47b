package gallery

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/folio/carousel"
)

func TestRead(t *testing.T) {
	manifest := "src,alt\nwork/a.png,First piece\n,skipped\n/abs/b.png, Second \n"

	entries, err := Read(strings.NewReader(manifest), "site")
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}

	want := []carousel.Entry{
		{Src: filepath.Join("site", "work", "a.png"), Alt: "First piece"},
		{Src: "/abs/b.png", Alt: "Second"},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(entries), len(want), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestReadEmpty(t *testing.T) {
	entries, err := Read(strings.NewReader(""), "")
	if err != nil {
		t.Fatalf("Read(empty) error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries from empty manifest", len(entries))
	}
}

func TestLoadEmptyPath(t *testing.T) {
	entries, err := Load("")
	if err != nil || entries != nil {
		t.Errorf("Load(\"\") = %v, %v; want nil, nil", entries, err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	entries, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	if err != nil {
		t.Errorf("Load(missing) error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries from a missing manifest", len(entries))
	}
}

func TestSampleGallery(t *testing.T) {
	path := filepath.Join("..", "assets", "gallery", "gallery.csv")
	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d sample entries, want 3", len(entries))
	}
	if missing := Missing(entries); len(missing) != 0 {
		t.Errorf("sample images missing: %v", missing)
	}
	for i, e := range entries {
		if e.Alt == "" {
			t.Errorf("sample entry %d has no alt text", i)
		}
	}
}

func TestLoadUnreadableManifest(t *testing.T) {
	// A directory opens but cannot be read as CSV.
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("expected error for unreadable manifest")
	}
}

func TestLoadResolvesAgainstManifestDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gallery.csv")
	if err := os.WriteFile(path, []byte("src,alt\nshots/one.png,One\n"), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(entries) != 1 || entries[0].Src != filepath.Join(dir, "shots", "one.png") {
		t.Errorf("entries = %+v", entries)
	}

	missing := Missing(entries)
	if len(missing) != 1 {
		t.Errorf("Missing() = %v, want the one absent image", missing)
	}
}
