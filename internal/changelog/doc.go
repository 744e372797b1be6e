// Package changelog extracts release notes from a Markdown changelog.
//
// This package implements:
//   - Locating the "upcoming" section (## [TBD] or ## [UPCOMING]) of a changelog
//   - Skipping a leading templated HTML comment block
//   - Rendering the section body with Markdown hard line breaks
//   - Writing release-notes.txt atomically, for one file or many packages
//   - Re-extracting on change for local authoring (Watch)
//
// Extraction is a single pass over the document. Everything before the
// upcoming heading is ignored and collection stops at the next "## [" heading.
package changelog
