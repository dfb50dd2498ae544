package manifest

import "errors"

// Sentinel errors for the manifest package
var (
	// ErrFileNotFound indicates the manifest file does not exist
	ErrFileNotFound = errors.New("manifest file not found")

	// ErrInvalidYAML indicates the manifest file is not valid YAML
	ErrInvalidYAML = errors.New("manifest must be valid YAML")

	// ErrNotMapping indicates the document root is not a YAML mapping
	ErrNotMapping = errors.New("manifest root must be a mapping")

	// ErrPagesNotTracked indicates a fix was requested for an entry
	// without a declared page count
	ErrPagesNotTracked = errors.New("entry has no declared page count")
)
