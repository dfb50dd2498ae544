// Package pdf implements page-count strategies for PDF documents.
// Strategies are tried in order until one succeeds: an in-process parse via
// pdfcpu first, then the external pdfinfo utility. Neither is authoritative;
// the second is consulted only when the first fails.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/thomasahle/testplan-data/internal/domain"
	"github.com/thomasahle/testplan-data/internal/utils"
)

// pdfHeader is the magic every well-formed PDF starts with
var pdfHeader = []byte("%PDF")

// Chain tries page counters in order until one succeeds
type Chain struct {
	counters []domain.PageCounter
	log      *utils.Logger
}

// NewChain creates a chain over the given counters
func NewChain(counters ...domain.PageCounter) *Chain {
	return &Chain{
		counters: counters,
		log:      utils.NewDefaultLogger().WithComponent("pdf"),
	}
}

// DefaultChain returns the standard strategy order: pdfcpu, then pdfinfo.
// infoBinary overrides the pdfinfo executable name; empty means "pdfinfo".
func DefaultChain(infoBinary string) *Chain {
	return NewChain(
		NewCPUCounter(),
		NewInfoCounter(infoBinary),
	)
}

// Name returns the strategy name
func (c *Chain) Name() string {
	return "chain"
}

// PageCount returns the page count from the first counter that succeeds.
// When every counter fails the errors are joined so the report can show
// what each strategy saw.
func (c *Chain) PageCount(path string) (int, error) {
	if len(c.counters) == 0 {
		return 0, fmt.Errorf("%w: no strategies configured", domain.ErrPageCountUnavailable)
	}

	var errs []error
	for _, counter := range c.counters {
		n, err := counter.PageCount(path)
		if err == nil {
			return n, nil
		}
		c.log.WithStrategy(counter.Name()).Debug().
			Err(err).
			Str("file", path).
			Msg("strategy failed, trying next")
		errs = append(errs, err)
	}
	return 0, errors.Join(errs...)
}

// HasHeader reports whether the file at path begins with the PDF magic.
// A file without it is rejected before any parsing strategy runs.
func HasHeader(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	header := make([]byte, len(pdfHeader))
	if _, err := io.ReadFull(f, header); err != nil {
		// Too short to carry the magic
		return false, nil
	}
	return bytes.Equal(header, pdfHeader), nil
}
