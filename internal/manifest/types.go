package manifest

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry represents one documented resource referenced by the manifest.
// Descriptive metadata beyond File and Pages (title, standard, organization)
// is carried in the document and never touched by validation.
type Entry struct {
	// File is the path relative to the manifest's base directory
	File string

	// Pages is the declared page count; nil means the count is not tracked
	// (absent, or a placeholder like "unknown" or "N/A")
	Pages *int

	// PagesRaw is the original scalar text of the pages field, empty when absent
	PagesRaw string

	// Category is the dotted section path the entry was found under,
	// e.g. "ethernet.specs.versions.10G"
	Category string

	// pagesNode points at the pages value scalar in the source document,
	// used for line-targeted rewriting
	pagesNode *yaml.Node
}

// Tracked reports whether the entry declares an integer page count
func (e *Entry) Tracked() bool {
	return e.Pages != nil
}

// IsPDF reports whether the entry's file extension indicates a PDF
func (e *Entry) IsPDF() bool {
	return strings.EqualFold(filepath.Ext(e.File), ".pdf")
}

// pageFix is one pending pages rewrite, addressed by source line
type pageFix struct {
	line    int
	oldText string
	newText string
}

// Manifest is the ordered collection of entries loaded from one file.
// Document order defines report order and is preserved on rewrite.
type Manifest struct {
	// Path is the file the manifest was loaded from
	Path string

	// Entries in document order
	Entries []*Entry

	raw   []byte
	fixes []pageFix
	dirty bool
}

// Dirty reports whether FixPages recorded at least one correction.
// The flag is monotonic within a run.
func (m *Manifest) Dirty() bool {
	return m.dirty
}

// FixPages updates the entry's declared page count in memory and records
// the rewrite to be applied by Save. Only entries with a tracked count can
// be fixed.
func (m *Manifest) FixPages(e *Entry, actual int) error {
	if !e.Tracked() || e.pagesNode == nil {
		return fmt.Errorf("%w: %s", ErrPagesNotTracked, e.File)
	}

	m.fixes = append(m.fixes, pageFix{
		line:    e.pagesNode.Line,
		oldText: "pages: " + styledScalar(e.PagesRaw, e.pagesNode.Style),
		newText: fmt.Sprintf("pages: %d", actual),
	})

	pages := actual
	e.Pages = &pages
	e.PagesRaw = fmt.Sprintf("%d", actual)
	e.pagesNode.Value = e.PagesRaw
	e.pagesNode.Style = 0
	m.dirty = true
	return nil
}

// styledScalar reconstructs the source text of a scalar from its quoting
// style. The loader accepts quoted counts (pages: "516"), so the rewrite
// has to match the token as it appears in the file, quotes included.
func styledScalar(raw string, style yaml.Style) string {
	switch style {
	case yaml.DoubleQuotedStyle:
		return `"` + raw + `"`
	case yaml.SingleQuotedStyle:
		return "'" + raw + "'"
	default:
		return raw
	}
}
