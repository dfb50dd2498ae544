package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/thomasahle/testplan-data/internal/domain"
)

// Save writes recorded page-count fixes back to the manifest file.
// Rewriting is line-targeted: only the pages tokens of fixed entries change,
// every other byte of the file is preserved. Save is a no-op when no fixes
// were recorded.
func (m *Manifest) Save() error {
	if !m.dirty {
		return nil
	}
	if m.Path == "" {
		return fmt.Errorf("%w: manifest has no source path", domain.ErrManifestWrite)
	}

	patched, err := m.applyFixes()
	if err != nil {
		return err
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(m.Path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(m.Path, patched, mode); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrManifestWrite, err)
	}
	return nil
}

// applyFixes patches the raw document in memory
func (m *Manifest) applyFixes() ([]byte, error) {
	lines := strings.Split(string(m.raw), "\n")

	for _, fix := range m.fixes {
		idx := fix.line - 1
		if idx < 0 || idx >= len(lines) {
			return nil, fmt.Errorf("%w: pages field moved (line %d out of range)",
				domain.ErrManifestWrite, fix.line)
		}
		if !strings.Contains(lines[idx], fix.oldText) {
			return nil, fmt.Errorf("%w: pages field not found at line %d",
				domain.ErrManifestWrite, fix.line)
		}
		lines[idx] = strings.Replace(lines[idx], fix.oldText, fix.newText, 1)
	}

	return []byte(strings.Join(lines, "\n")), nil
}
