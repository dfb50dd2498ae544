package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
)

// Format selects a report rendering
type Format string

const (
	FormatConsole  Format = "console"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
)

// ParseFormat validates a format string
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatConsole, FormatMarkdown, FormatCSV:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown report format %q (use console, markdown, or csv)", s)
	}
}

// Render writes the statistics report in the given format
func (s *Stats) Render(w io.Writer, format Format) error {
	switch format {
	case FormatMarkdown:
		return s.renderMarkdown(w)
	case FormatCSV:
		return s.renderCSV(w)
	default:
		return s.renderConsole(w)
	}
}

func (s *Stats) renderConsole(w io.Writer) error {
	fmt.Fprintln(w, "Document Coverage Report")
	fmt.Fprintf(w, "Generated: %s\n\n", s.GeneratedAt.Format("2006-01-02 15:04:05"))

	for _, cs := range s.Categories {
		fmt.Fprintf(w, "  %-24s entries: %-4d tracked: %-4d pages: %-6d size: %-10s missing: %d\n",
			cs.Name, cs.Entries, cs.Tracked, cs.DeclaredPages,
			humanize.Bytes(uint64(cs.SizeBytes)), cs.Missing)
	}

	fmt.Fprintf(w, "\nTotal: %d entries, %d tracked, %d declared pages, %s on disk, %d missing\n",
		s.TotalEntries, s.TotalTracked, s.TotalDeclaredPages,
		humanize.Bytes(uint64(s.TotalSizeBytes)), s.TotalMissing)
	return nil
}

func (s *Stats) renderMarkdown(w io.Writer) error {
	fmt.Fprintln(w, "# Document Coverage Report")
	fmt.Fprintf(w, "\nGenerated: %s\n\n", s.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(w, "| Category | Entries | Tracked | Declared Pages | Size | Missing |")
	fmt.Fprintln(w, "|---|---|---|---|---|---|")

	for _, cs := range s.Categories {
		fmt.Fprintf(w, "| %s | %d | %d | %d | %s | %d |\n",
			cs.Name, cs.Entries, cs.Tracked, cs.DeclaredPages,
			humanize.Bytes(uint64(cs.SizeBytes)), cs.Missing)
	}

	fmt.Fprintf(w, "| **Total** | %d | %d | %d | %s | %d |\n",
		s.TotalEntries, s.TotalTracked, s.TotalDeclaredPages,
		humanize.Bytes(uint64(s.TotalSizeBytes)), s.TotalMissing)
	return nil
}

func (s *Stats) renderCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"category", "entries", "tracked", "declared_pages", "size_bytes", "missing"}); err != nil {
		return err
	}

	for _, cs := range s.Categories {
		record := []string{
			cs.Name,
			strconv.Itoa(cs.Entries),
			strconv.Itoa(cs.Tracked),
			strconv.Itoa(cs.DeclaredPages),
			strconv.FormatInt(cs.SizeBytes, 10),
			strconv.Itoa(cs.Missing),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
