package changelog

import "strings"

const (
	// DefaultHeadingPrefix starts every release heading, e.g. "## [1.0.0]".
	DefaultHeadingPrefix = "## ["
	// DefaultCommentOpen opens the templated comment block some changelogs start with.
	DefaultCommentOpen = "<!--"
	// DefaultCommentClose closes the templated comment block.
	DefaultCommentClose = "-->"
	// DefaultOutputFile is where release notes are written.
	DefaultOutputFile = "release-notes.txt"
	// DefaultChangelogFile is the changelog file name looked up in a directory.
	DefaultChangelogFile = "CHANGELOG.md"

	// LineSeparator ends every notes line but the last. The two trailing
	// spaces force a hard line break in Markdown renderers.
	LineSeparator = "  \n"
)

// DefaultMarkers returns the tokens that identify the upcoming section.
func DefaultMarkers() []string {
	return []string{"TBD", "UPCOMING"}
}

// Options configures how the upcoming section is located.
// Zero values fall back to the defaults above.
type Options struct {
	// HeadingPrefix starts every release heading.
	HeadingPrefix string
	// Markers identify the upcoming heading: HeadingPrefix + marker + "]".
	Markers []string
	// CommentOpen and CommentClose delimit an optional leading comment block.
	CommentOpen  string
	CommentClose string
}

// DefaultOptions returns Options populated with the default values.
func DefaultOptions() Options {
	return Options{
		HeadingPrefix: DefaultHeadingPrefix,
		Markers:       DefaultMarkers(),
		CommentOpen:   DefaultCommentOpen,
		CommentClose:  DefaultCommentClose,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.HeadingPrefix == "" {
		o.HeadingPrefix = d.HeadingPrefix
	}
	if len(o.Markers) == 0 {
		o.Markers = d.Markers
	}
	if o.CommentOpen == "" {
		o.CommentOpen = d.CommentOpen
	}
	if o.CommentClose == "" {
		o.CommentClose = d.CommentClose
	}
	return o
}

// UpcomingHeadings returns the heading prefixes that open the upcoming section.
func (o Options) UpcomingHeadings() []string {
	o = o.withDefaults()
	headings := make([]string, 0, len(o.Markers))
	for _, m := range o.Markers {
		headings = append(headings, o.HeadingPrefix+m+"]")
	}
	return headings
}

// Notes is the body of the upcoming section, one trimmed line per entry.
type Notes struct {
	Lines []string
	// Found reports whether an upcoming heading was present.
	Found bool
}

// IsEmpty returns true if there are no lines to publish.
func (n Notes) IsEmpty() bool {
	return len(n.Lines) == 0
}

// String joins the lines with LineSeparator. There is no trailing separator.
func (n Notes) String() string {
	return strings.Join(n.Lines, LineSeparator)
}
