// Package validate runs the per-entry manifest checks and aggregates their
// results. Entries are processed strictly sequentially; every per-entry
// failure is recorded in the report instead of aborting the run.
package validate

import (
	"fmt"
	"path/filepath"

	"github.com/thomasahle/testplan-data/internal/domain"
	"github.com/thomasahle/testplan-data/internal/manifest"
	"github.com/thomasahle/testplan-data/internal/pdf"
	"github.com/thomasahle/testplan-data/internal/utils"
)

// Options configures a Validator
type Options struct {
	// BaseDir is the directory entry paths are resolved against,
	// normally the manifest's own directory
	BaseDir string

	// Counter determines PDF page counts; nil means the default
	// pdfcpu-then-pdfinfo chain
	Counter domain.PageCounter

	// FixPages records corrected page counts on the manifest
	FixPages bool

	// Progress renders a progress bar over the checking phase
	Progress bool

	Logger *utils.Logger
}

// Validator runs the existence, PDF structure, and page-count checks
// for every manifest entry.
type Validator struct {
	baseDir  string
	counter  domain.PageCounter
	fixPages bool
	progress bool
	log      *utils.Logger
}

// New creates a Validator
func New(opts Options) *Validator {
	counter := opts.Counter
	if counter == nil {
		counter = pdf.DefaultChain("")
	}
	log := opts.Logger
	if log == nil {
		log = utils.NewDefaultLogger()
	}
	return &Validator{
		baseDir:  opts.BaseDir,
		counter:  counter,
		fixPages: opts.FixPages,
		progress: opts.Progress,
		log:      log.WithComponent("validate"),
	}
}

// Run checks every entry in document order and returns the report.
// With FixPages enabled, page-count mismatches additionally update the
// in-memory manifest and mark it dirty.
func (v *Validator) Run(m *manifest.Manifest) *Report {
	report := NewReport()
	report.EntriesChecked = len(m.Entries)

	var bar interface{ Add(int) error }
	if v.progress {
		bar = utils.NewProgressBar(len(m.Entries), utils.DescValidating)
	}

	for _, entry := range m.Entries {
		v.checkEntry(m, entry, report)
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return report
}

// checkEntry runs the check sequence for one entry. A missing file stops
// the sequence; a non-PDF extension skips the page-based checks.
func (v *Validator) checkEntry(m *manifest.Manifest, entry *manifest.Entry, report *Report) {
	log := v.log.WithFile(entry.File)
	resolved := filepath.Join(v.baseDir, entry.File)

	if !utils.IsRegularFile(resolved) {
		log.Debug().Str("category", entry.Category).Msg("file missing")
		report.Add(domain.Result{
			EntryPath: entry.File,
			Category:  entry.Category,
			Kind:      domain.CheckExistence,
			Status:    domain.StatusFail,
			Detail:    fmt.Sprintf("file not found at %s", resolved),
		})
		return
	}
	report.Add(domain.Result{
		EntryPath: entry.File,
		Category:  entry.Category,
		Kind:      domain.CheckExistence,
		Status:    domain.StatusPass,
	})

	if !entry.IsPDF() {
		log.Debug().Msg("non-PDF resource, skipping page checks")
		report.Add(domain.Result{
			EntryPath: entry.File,
			Category:  entry.Category,
			Kind:      domain.CheckPDFStructure,
			Status:    domain.StatusSkipped,
			Detail:    "non-PDF resource",
		})
		return
	}

	actual, ok := v.checkStructure(entry, resolved, report)
	if !ok {
		return
	}

	v.checkPageCount(m, entry, actual, report)
}

// checkStructure verifies the PDF header and runs the page-count chain.
// On success it returns the actual page count for the page-count check.
func (v *Validator) checkStructure(entry *manifest.Entry, resolved string, report *Report) (int, bool) {
	ok, err := pdf.HasHeader(resolved)
	if err != nil {
		report.Add(domain.Result{
			EntryPath: entry.File,
			Category:  entry.Category,
			Kind:      domain.CheckPDFStructure,
			Status:    domain.StatusFail,
			Detail:    fmt.Sprintf("cannot read file: %v", err),
		})
		return 0, false
	}
	if !ok {
		report.Add(domain.Result{
			EntryPath: entry.File,
			Category:  entry.Category,
			Kind:      domain.CheckPDFStructure,
			Status:    domain.StatusFail,
			Detail:    domain.ErrNotPDF.Error(),
		})
		return 0, false
	}

	actual, err := v.counter.PageCount(resolved)
	if err != nil {
		v.log.WithFile(entry.File).Debug().Err(err).Msg("all parse strategies failed")
		report.Add(domain.Result{
			EntryPath: entry.File,
			Category:  entry.Category,
			Kind:      domain.CheckPDFStructure,
			Status:    domain.StatusFail,
			Detail:    err.Error(),
		})
		return 0, false
	}

	report.Add(domain.Result{
		EntryPath: entry.File,
		Category:  entry.Category,
		Kind:      domain.CheckPDFStructure,
		Status:    domain.StatusPass,
		Detail:    fmt.Sprintf("%d pages", actual),
	})
	return actual, true
}

// checkPageCount compares declared and actual counts. A mismatch is a
// Warning, not a Fail: stale metadata is not corruption.
func (v *Validator) checkPageCount(m *manifest.Manifest, entry *manifest.Entry, actual int, report *Report) {
	if !entry.Tracked() {
		report.Add(domain.Result{
			EntryPath: entry.File,
			Category:  entry.Category,
			Kind:      domain.CheckPageCount,
			Status:    domain.StatusSkipped,
			Detail:    "no declared page count",
		})
		return
	}

	declared := *entry.Pages
	if declared == actual {
		report.Add(domain.Result{
			EntryPath: entry.File,
			Category:  entry.Category,
			Kind:      domain.CheckPageCount,
			Status:    domain.StatusPass,
			Detail:    fmt.Sprintf("%d pages", actual),
		})
		return
	}

	report.Add(domain.Result{
		EntryPath: entry.File,
		Category:  entry.Category,
		Kind:      domain.CheckPageCount,
		Status:    domain.StatusWarning,
		Detail:    fmt.Sprintf("declared=%d, actual=%d", declared, actual),
	})

	if v.fixPages {
		if err := m.FixPages(entry, actual); err != nil {
			v.log.Warn().Err(err).Str("file", entry.File).Msg("could not record page fix")
			return
		}
		v.log.Info().Str("file", entry.File).
			Int("declared", declared).Int("actual", actual).
			Msg("page count corrected")
	}
}
