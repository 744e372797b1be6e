package labels

import (
	"fmt"
	"io"
	"os"
)

// GitHubOutputEnv names the file GitHub Actions reads step outputs from.
const GitHubOutputEnv = "GITHUB_OUTPUT"

// WriteGitHubOutput writes the has_labels and matrix step outputs.
// Downstream jobs gate on has_labels and fan out over matrix.
func WriteGitHubOutput(w io.Writer, m Matrix) error {
	data, err := m.JSON()
	if err != nil {
		return fmt.Errorf("encoding matrix: %w", err)
	}

	if _, err := fmt.Fprintf(w, "has_labels=%t\n", m.HasEntries()); err != nil {
		return fmt.Errorf("writing has_labels output: %w", err)
	}
	if _, err := fmt.Fprintf(w, "matrix=%s\n", data); err != nil {
		return fmt.Errorf("writing matrix output: %w", err)
	}
	return nil
}

// AppendGitHubOutput appends the step outputs to the file at path,
// creating it if needed. Existing outputs from earlier steps are kept.
func AppendGitHubOutput(path string, m Matrix) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening GitHub output file: %w", err)
	}

	if err := WriteGitHubOutput(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
