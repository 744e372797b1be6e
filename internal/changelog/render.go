package changelog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// RenderNotes writes the notes to w in release-notes.txt format.
//
// The function is idempotent - given the same notes, it produces identical output.
func RenderNotes(n Notes, w io.Writer) error {
	if _, err := io.WriteString(w, n.String()); err != nil {
		return fmt.Errorf("writing notes: %w", err)
	}
	return nil
}

// WriteFile writes the notes to path, replacing any existing content.
// The file is written to a temporary sibling first and renamed into place,
// so readers never observe a partially written file.
func WriteFile(path string, n Notes) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary notes file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := RenderNotes(n, tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("setting notes file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary notes file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	logger.Debug("wrote release notes", "path", path, "lines", len(n.Lines))
	return nil
}

// ExtractToFile extracts the upcoming section of changelogPath and writes it
// to outputPath. Nothing is written when the changelog cannot be read.
func ExtractToFile(changelogPath, outputPath string, opts Options) (Notes, error) {
	notes, err := ExtractFile(changelogPath, opts)
	if err != nil {
		return Notes{}, err
	}
	if err := WriteFile(outputPath, notes); err != nil {
		return Notes{}, err
	}
	return notes, nil
}
