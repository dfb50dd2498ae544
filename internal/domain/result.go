package domain

// CheckKind identifies one of the per-entry validation checks
type CheckKind string

const (
	// CheckExistence verifies the referenced file exists on disk
	CheckExistence CheckKind = "existence"

	// CheckPDFStructure verifies the file parses as a PDF
	CheckPDFStructure CheckKind = "pdf-structure"

	// CheckPageCount verifies declared vs actual page counts
	CheckPageCount CheckKind = "page-count"
)

// Status is the outcome of a single check
type Status string

const (
	StatusPass    Status = "pass"
	StatusFail    Status = "fail"
	StatusWarning Status = "warning"
	StatusSkipped Status = "skipped"
)

// Result records the outcome of one check against one manifest entry.
// EntryPath references the entry by its manifest-relative file path.
type Result struct {
	EntryPath string
	Category  string
	Kind      CheckKind
	Status    Status
	Detail    string
}

// Failed reports whether this result should fail the run.
// Warnings and skips never fail.
func (r Result) Failed() bool {
	return r.Status == StatusFail
}
