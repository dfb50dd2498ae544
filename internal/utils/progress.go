package utils

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// Standard progress bar descriptions
const (
	DescValidating = "Validating"
)

// NewProgressBar creates a consistently styled progress bar.
//
// The bar renders on stderr so stdout stays clean for the report.
// Use -1 for unknown totals (spinner mode).
func NewProgressBar(total int, description string) *progressbar.ProgressBar {
	opts := []progressbar.Option{
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	}

	if total < 0 {
		opts = append(opts,
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		)
	} else {
		opts = append(opts,
			progressbar.OptionShowIts(),
		)
	}

	return progressbar.NewOptions(total, opts...)
}
