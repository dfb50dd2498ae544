package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrNotPDF indicates the file does not carry a PDF header
	ErrNotPDF = errors.New("not a valid PDF file")

	// ErrPageCountUnavailable indicates no strategy could determine a page count
	ErrPageCountUnavailable = errors.New("page count unavailable")

	// ErrManifestWrite indicates the corrected manifest could not be written back
	ErrManifestWrite = errors.New("manifest write failed")
)

// PDFError represents a failure to parse a PDF via a specific strategy
type PDFError struct {
	Path     string
	Strategy string
	Err      error
}

func (e *PDFError) Error() string {
	if e.Strategy != "" {
		return fmt.Sprintf("pdf error for %s (strategy %s): %v", e.Path, e.Strategy, e.Err)
	}
	return fmt.Sprintf("pdf error for %s: %v", e.Path, e.Err)
}

func (e *PDFError) Unwrap() error {
	return e.Err
}

// NewPDFError creates a new PDFError
func NewPDFError(path, strategy string, err error) *PDFError {
	return &PDFError{
		Path:     path,
		Strategy: strategy,
		Err:      err,
	}
}
