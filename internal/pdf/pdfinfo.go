package pdf

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/thomasahle/testplan-data/internal/domain"
)

// DefaultInfoBinary is the pdfinfo executable looked up on PATH
const DefaultInfoBinary = "pdfinfo"

// InfoCounter counts pages by running the pdfinfo utility (poppler-utils)
// as a subprocess and parsing its "Pages:" line. It is the fallback for
// documents the in-process parser cannot handle.
type InfoCounter struct {
	binary string
}

// NewInfoCounter creates a new pdfinfo-backed counter.
// binary overrides the executable name; empty means DefaultInfoBinary.
func NewInfoCounter(binary string) *InfoCounter {
	if binary == "" {
		binary = DefaultInfoBinary
	}
	return &InfoCounter{binary: binary}
}

// Name returns the strategy name
func (c *InfoCounter) Name() string {
	return "pdfinfo"
}

// PageCount runs pdfinfo and extracts the page count from its output
func (c *InfoCounter) PageCount(path string) (int, error) {
	out, err := exec.Command(c.binary, path).Output()
	if err != nil {
		return 0, domain.NewPDFError(path, c.Name(), err)
	}

	n, err := parseInfoOutput(out)
	if err != nil {
		return 0, domain.NewPDFError(path, c.Name(), err)
	}
	return n, nil
}

// parseInfoOutput extracts the page count from pdfinfo's key-value output
func parseInfoOutput(out []byte) (int, error) {
	for _, line := range strings.Split(string(out), "\n") {
		if !strings.HasPrefix(line, "Pages:") {
			continue
		}
		value := strings.TrimSpace(strings.TrimPrefix(line, "Pages:"))
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("%w: unparsable pages value %q", domain.ErrPageCountUnavailable, value)
		}
		return n, nil
	}
	return 0, fmt.Errorf("%w: no Pages line in pdfinfo output", domain.ErrPageCountUnavailable)
}
