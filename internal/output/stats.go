// Package output renders coverage and statistics reports derived from the
// manifest: entry counts per category, tracked page totals, on-disk sizes,
// and missing-file counts, in console, markdown, or CSV form.
package output

import (
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/thomasahle/testplan-data/internal/manifest"
	"github.com/thomasahle/testplan-data/internal/utils"
)

// CategoryStats summarizes one top-level manifest section
type CategoryStats struct {
	Name          string
	Entries       int
	Tracked       int
	DeclaredPages int
	Missing       int
	SizeBytes     int64
}

// Stats summarizes the whole manifest against the files on disk
type Stats struct {
	Categories []CategoryStats

	TotalEntries       int
	TotalTracked       int
	TotalDeclaredPages int
	TotalMissing       int
	TotalSizeBytes     int64

	GeneratedAt time.Time
}

// Collect walks the manifest entries and gathers per-category statistics.
// File sizes come from the filesystem; missing files count toward Missing
// and contribute no size.
func Collect(m *manifest.Manifest, baseDir string) *Stats {
	byName := make(map[string]*CategoryStats)

	for _, entry := range m.Entries {
		name := topCategory(entry.Category)
		cs, ok := byName[name]
		if !ok {
			cs = &CategoryStats{Name: name}
			byName[name] = cs
		}

		cs.Entries++
		if entry.Tracked() {
			cs.Tracked++
			cs.DeclaredPages += *entry.Pages
		}

		resolved := filepath.Join(baseDir, entry.File)
		if !utils.IsRegularFile(resolved) {
			cs.Missing++
			continue
		}
		cs.SizeBytes += utils.FileSize(resolved)
	}

	stats := &Stats{GeneratedAt: time.Now()}
	for _, cs := range byName {
		stats.Categories = append(stats.Categories, *cs)
		stats.TotalEntries += cs.Entries
		stats.TotalTracked += cs.Tracked
		stats.TotalDeclaredPages += cs.DeclaredPages
		stats.TotalMissing += cs.Missing
		stats.TotalSizeBytes += cs.SizeBytes
	}
	sort.Slice(stats.Categories, func(i, j int) bool {
		return stats.Categories[i].Name < stats.Categories[j].Name
	})

	return stats
}

// topCategory reduces a dotted category path to its top-level section
func topCategory(category string) string {
	if i := strings.IndexByte(category, '.'); i > 0 {
		return category[:i]
	}
	return category
}
