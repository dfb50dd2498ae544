package domain

// PageCounter determines the number of pages in a PDF document.
// Implementations report an error when the document cannot be opened
// or parsed well enough to count pages.
type PageCounter interface {
	// Name returns the strategy name for logging and error detail
	Name() string
	// PageCount returns the number of pages in the PDF at path
	PageCount(path string) (int, error)
}
