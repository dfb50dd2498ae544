package pdf

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/thomasahle/testplan-data/internal/domain"
)

// CPUCounter counts pages by parsing the document in-process with pdfcpu.
// It is the primary strategy: no external tooling required.
type CPUCounter struct{}

// NewCPUCounter creates a new pdfcpu-backed counter
func NewCPUCounter() *CPUCounter {
	return &CPUCounter{}
}

// Name returns the strategy name
func (c *CPUCounter) Name() string {
	return "pdfcpu"
}

// PageCount parses the document and returns its page count
func (c *CPUCounter) PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, domain.NewPDFError(path, c.Name(), err)
	}
	if n <= 0 {
		return 0, domain.NewPDFError(path, c.Name(),
			fmt.Errorf("%w: document reports %d pages", domain.ErrPageCountUnavailable, n))
	}
	return n, nil
}
