// Package manifest provides types and utilities for loading the repository
// manifest (config.yaml) and for writing corrected page counts back to it.
// The manifest is a nested YAML document: top-level category sections hold
// version groups, which hold specs and test plan lists whose items reference
// files on disk.
//
// # Manifest Format
//
//	ethernet:
//	  category: connectivity
//	  versions:
//	    "10G":
//	      specs:
//	        - name: IEEE 802.3ae
//	          file: ethernet/10g/802.3ae-2002.pdf
//	          pages: 516
//	      test_plans:
//	        - name: 10GBASE-T PMA Test Suite
//	          file: ethernet/10g/10gbase-t-pma.pdf
//	          pages: 42
//
// # Usage
//
// Load a manifest file and iterate its entries:
//
//	m, err := manifest.Load("config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, e := range m.Entries {
//	    // Validate each entry
//	}
//
// Loading is position-aware: each entry records where its pages scalar sits in
// the source document, so FixPages followed by Save rewrites only those tokens
// and leaves every other byte of the file unchanged.
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrFileNotFound: manifest file does not exist
//   - ErrInvalidYAML: file is not valid YAML
//   - ErrNotMapping: document root is not a mapping
package manifest
