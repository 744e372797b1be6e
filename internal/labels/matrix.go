package labels

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// logger receives debug output about skipped labels. Discarded by default;
// set it via SetLogger.
var logger = slog.New(slog.DiscardHandler)

// SetLogger configures the logger used for debug output.
// Pass nil to disable logging.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}

// Options controls how label names are split.
type Options struct {
	// Delimiter separates package and bump. Defaults to DefaultDelimiter.
	Delimiter string
}

func (o Options) delimiter() string {
	if o.Delimiter == "" {
		return DefaultDelimiter
	}
	return o.Delimiter
}

// ParseLabels decodes a JSON array of label objects.
// Empty or malformed input yields an empty slice: a payload that cannot be
// read means "no release", not a pipeline failure.
func ParseLabels(raw string) []Label {
	if strings.TrimSpace(raw) == "" {
		logger.Debug("no labels provided")
		return []Label{}
	}

	var labels []Label
	if err := json.Unmarshal([]byte(raw), &labels); err != nil {
		logger.Debug("ignoring malformed labels payload", "error", err)
		return []Label{}
	}
	if labels == nil {
		return []Label{}
	}
	return labels
}

// ParseName splits a label name into a matrix entry.
// The name must split into exactly two parts, a non-empty package and a
// recognised bump kind; anything else is rejected.
func ParseName(name string, opts Options) (Entry, bool) {
	parts := strings.Split(name, opts.delimiter())
	if len(parts) != 2 {
		return Entry{}, false
	}

	pkg, bump := parts[0], Bump(parts[1])
	if pkg == "" || !bump.IsValid() {
		return Entry{}, false
	}

	return Entry{Package: pkg, Bump: bump}, true
}

// Build converts labels into a matrix, keeping input order.
// Duplicate labels produce duplicate entries.
func Build(labels []Label, opts Options) Matrix {
	m := Matrix{Include: make([]Entry, 0, len(labels))}

	for _, l := range labels {
		entry, ok := ParseName(l.Name, opts)
		if !ok {
			logger.Debug("skipping label", "name", l.Name, "want", "<package>"+opts.delimiter()+"<"+bumpList()+">")
			continue
		}
		m.Include = append(m.Include, entry)
	}

	logger.Debug("built matrix", "labels", len(labels), "entries", len(m.Include))
	return m
}

// BuildFromJSON parses a raw labels payload and builds the matrix from it.
func BuildFromJSON(raw string, opts Options) Matrix {
	return Build(ParseLabels(raw), opts)
}

// ReadMatrix decodes a matrix document previously produced by Matrix.JSON.
// Unlike ParseLabels this is strict: a consumer asking for a matrix expects one.
func ReadMatrix(r io.Reader) (Matrix, error) {
	var m Matrix
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return Matrix{}, fmt.Errorf("decoding matrix: %w", err)
	}
	for i, e := range m.Include {
		if e.Package == "" {
			return Matrix{}, fmt.Errorf("matrix entry %d: package is empty", i)
		}
	}
	if m.Include == nil {
		m.Include = []Entry{}
	}
	return m, nil
}

func bumpList() string {
	names := make([]string, 0, 3)
	for _, b := range ValidBumps() {
		names = append(names, string(b))
	}
	return strings.Join(names, "|")
}
