package changelog

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
)

// maxLineSize bounds a single changelog line. Long single-line entries
// (pasted stack traces, tables) exceed bufio's 64KiB default.
const maxLineSize = 1024 * 1024

var logger = slog.New(slog.DiscardHandler)

// SetLogger configures the logger used for debug output.
// Pass nil to disable logging.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}

// ExtractFile reads the changelog at path and extracts the upcoming section.
// A missing or unreadable file is returned as an error wrapping the
// underlying *fs.PathError.
func ExtractFile(path string, opts Options) (Notes, error) {
	f, err := os.Open(path)
	if err != nil {
		return Notes{}, fmt.Errorf("opening changelog file: %w", err)
	}
	defer f.Close()

	notes, err := Extract(f, opts)
	if err != nil {
		return Notes{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return notes, nil
}

// Extract reads a changelog document and returns the body of its upcoming
// section. A document without an upcoming heading yields empty Notes and no
// error.
func Extract(r io.Reader, opts Options) (Notes, error) {
	lines, err := readLines(r)
	if err != nil {
		return Notes{}, err
	}
	return ExtractLines(lines, opts), nil
}

// ExtractLines is Extract over an already split document.
func ExtractLines(lines []string, opts Options) Notes {
	opts = opts.withDefaults()
	headings := opts.UpcomingHeadings()

	lines = skipLeadingComment(lines, opts)

	notes := Notes{Lines: []string{}}
	for i, line := range lines {
		if notes.Found {
			if strings.HasPrefix(line, opts.HeadingPrefix) {
				logger.Debug("upcoming section ends", "line", i+1)
				break
			}
			notes.Lines = append(notes.Lines, strings.TrimSpace(line))
			continue
		}

		if hasAnyPrefix(line, headings) {
			logger.Debug("upcoming section found", "line", i+1, "heading", strings.TrimSpace(line))
			notes.Found = true
		}
	}

	if !notes.Found {
		logger.Debug("no upcoming section", "headings", headings)
	}
	return notes
}

// skipLeadingComment drops a templated comment block at the top of the
// document. The block is only recognised when the opening marker stands
// alone on the first line; everything up to and including the first line
// containing the closing marker is dropped. An unterminated block swallows
// the rest of the document.
func skipLeadingComment(lines []string, opts Options) []string {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != opts.CommentOpen {
		return lines
	}

	for i := 1; i < len(lines); i++ {
		if strings.Contains(lines[i], opts.CommentClose) {
			logger.Debug("skipped leading comment block", "lines", i+1)
			return lines[i+1:]
		}
	}

	logger.Debug("leading comment block is not terminated")
	return nil
}

func hasAnyPrefix(s string, prefixes []string) bool {
	return slices.ContainsFunc(prefixes, func(p string) bool {
		return strings.HasPrefix(s, p)
	})
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning changelog: %w", err)
	}
	return lines, nil
}
