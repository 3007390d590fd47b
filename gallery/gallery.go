// Package gallery discovers the work images shown on the page.
package gallery

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/folio/carousel"
)

// manifestRow is one line of a gallery manifest.
type manifestRow struct {
	Src string `csv:"src"`
	Alt string `csv:"alt"`
}

// Load reads the manifest at path and returns its entries in file order.
// Relative sources resolve against the manifest's directory.
// An empty path or a manifest that does not exist yields no entries.
func Load(path string) ([]carousel.Entry, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("gallery manifest not found", "path", path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening gallery manifest: %w", err)
	}
	defer f.Close()

	entries, err := Read(f, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("reading gallery manifest %s: %w", path, err)
	}
	return entries, nil
}

// Read parses manifest CSV from r. Rows with an empty src are skipped.
func Read(r io.Reader, baseDir string) ([]carousel.Entry, error) {
	var rows []manifestRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, nil
		}
		return nil, err
	}

	entries := make([]carousel.Entry, 0, len(rows))
	for _, row := range rows {
		src := strings.TrimSpace(row.Src)
		if src == "" {
			continue
		}
		if baseDir != "" && !filepath.IsAbs(src) {
			src = filepath.Join(baseDir, src)
		}
		entries = append(entries, carousel.Entry{Src: src, Alt: strings.TrimSpace(row.Alt)})
	}
	return entries, nil
}

// Missing reports entries whose source file does not exist.
// The page still lists them; the overlay draws a placeholder instead.
func Missing(entries []carousel.Entry) []string {
	var missing []string
	for _, e := range entries {
		if _, err := os.Stat(e.Src); errors.Is(err, fs.ErrNotExist) {
			missing = append(missing, e.Src)
		}
	}
	return missing
}
