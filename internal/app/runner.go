// Package app wires configuration, manifest loading, validation, and
// reporting into the operations exposed by the CLI.
package app

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/thomasahle/testplan-data/internal/config"
	"github.com/thomasahle/testplan-data/internal/domain"
	"github.com/thomasahle/testplan-data/internal/manifest"
	"github.com/thomasahle/testplan-data/internal/output"
	"github.com/thomasahle/testplan-data/internal/pdf"
	"github.com/thomasahle/testplan-data/internal/utils"
	"github.com/thomasahle/testplan-data/internal/validate"
)

// Runner executes the CLI operations against one manifest
type Runner struct {
	cfg *config.Config
	log *utils.Logger

	// Counter overrides the default page-count chain (tests)
	Counter domain.PageCounter
}

// NewRunner creates a Runner
func NewRunner(cfg *config.Config, log *utils.Logger) *Runner {
	return &Runner{
		cfg: cfg,
		log: log.WithComponent("app"),
	}
}

// ValidateOptions configures one validation run
type ValidateOptions struct {
	ManifestPath string
	Verbose      bool
	FixPages     bool

	// Progress renders a progress bar during the checking phase
	Progress bool
}

// Validate loads the manifest, runs all checks, renders the consolidated
// report to w, and optionally writes corrected page counts back. Only
// manifest loading is fatal; per-entry failures land in the report. A failed
// rewrite is logged as a warning after the report and does not affect it.
func (r *Runner) Validate(w io.Writer, opts ValidateOptions) (*validate.Report, error) {
	m, err := manifest.Load(opts.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest: %w", err)
	}

	baseDir := filepath.Dir(opts.ManifestPath)
	r.log.Info().
		Str("manifest", opts.ManifestPath).
		Int("entries", len(m.Entries)).
		Msg("manifest loaded")

	counter := r.Counter
	if counter == nil {
		counter = pdf.DefaultChain(r.cfg.PDF.InfoBinary)
	}

	validator := validate.New(validate.Options{
		BaseDir:  baseDir,
		Counter:  counter,
		FixPages: opts.FixPages,
		Progress: opts.Progress,
		Logger:   r.log,
	})
	report := validator.Run(m)
	report.Render(w, opts.Verbose)

	if opts.FixPages && m.Dirty() {
		if err := m.Save(); err != nil {
			r.log.Warn().Err(err).Msg("manifest rewrite failed, report unaffected")
		} else {
			r.log.Info().Str("manifest", opts.ManifestPath).Msg("manifest updated with corrected page counts")
		}
	}

	return report, nil
}

// ReportOptions configures one statistics report
type ReportOptions struct {
	ManifestPath string
	Format       output.Format
}

// Report loads the manifest and renders coverage statistics to w
func (r *Runner) Report(w io.Writer, opts ReportOptions) error {
	m, err := manifest.Load(opts.ManifestPath)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}

	stats := output.Collect(m, filepath.Dir(opts.ManifestPath))
	return stats.Render(w, opts.Format)
}
