package output

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomasahle/testplan-data/internal/manifest"
)

func statsFixture(t *testing.T) (*manifest.Manifest, string) {
	t.Helper()
	dir := t.TempDir()

	yml := `ethernet:
  versions:
    "10G":
      specs:
        - name: A
          file: ethernet/a.pdf
          pages: 100
      test_plans:
        - name: B
          file: ethernet/b.pdf
          pages: 20
ipv6:
  versions:
    "RFC 8200":
      specs:
        - name: RFC
          file: ipv6/rfc8200.txt
          pages: unknown
        - name: Gone
          file: ipv6/missing.pdf
          pages: 5
`
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "ethernet"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "ipv6"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ethernet", "a.pdf"), make([]byte, 1000), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ethernet", "b.pdf"), make([]byte, 500), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ipv6", "rfc8200.txt"), make([]byte, 300), 0o644))

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	m, err := manifest.Load(path)
	require.NoError(t, err)
	return m, dir
}

func TestCollect(t *testing.T) {
	m, dir := statsFixture(t)

	stats := Collect(m, dir)

	require.Len(t, stats.Categories, 2)

	eth := stats.Categories[0]
	assert.Equal(t, "ethernet", eth.Name)
	assert.Equal(t, 2, eth.Entries)
	assert.Equal(t, 2, eth.Tracked)
	assert.Equal(t, 120, eth.DeclaredPages)
	assert.Equal(t, int64(1500), eth.SizeBytes)
	assert.Zero(t, eth.Missing)

	ipv6 := stats.Categories[1]
	assert.Equal(t, "ipv6", ipv6.Name)
	assert.Equal(t, 2, ipv6.Entries)
	assert.Equal(t, 1, ipv6.Tracked)
	assert.Equal(t, 5, ipv6.DeclaredPages)
	assert.Equal(t, int64(300), ipv6.SizeBytes)
	assert.Equal(t, 1, ipv6.Missing)

	assert.Equal(t, 4, stats.TotalEntries)
	assert.Equal(t, 3, stats.TotalTracked)
	assert.Equal(t, 125, stats.TotalDeclaredPages)
	assert.Equal(t, 1, stats.TotalMissing)
	assert.Equal(t, int64(1800), stats.TotalSizeBytes)
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"console", "markdown", "csv"} {
		f, err := ParseFormat(valid)
		require.NoError(t, err)
		assert.Equal(t, Format(valid), f)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestRender_Console(t *testing.T) {
	m, dir := statsFixture(t)
	stats := Collect(m, dir)

	var buf bytes.Buffer
	require.NoError(t, stats.Render(&buf, FormatConsole))
	out := buf.String()

	assert.Contains(t, out, "Document Coverage Report")
	assert.Contains(t, out, "ethernet")
	assert.Contains(t, out, "ipv6")
	assert.Contains(t, out, "missing: 1")
}

func TestRender_Markdown(t *testing.T) {
	m, dir := statsFixture(t)
	stats := Collect(m, dir)

	var buf bytes.Buffer
	require.NoError(t, stats.Render(&buf, FormatMarkdown))
	out := buf.String()

	assert.Contains(t, out, "| Category | Entries | Tracked | Declared Pages | Size | Missing |")
	assert.Contains(t, out, "| ethernet | 2 | 2 | 120 |")
	assert.Contains(t, out, "| **Total** | 4 | 3 | 125 |")
}

func TestRender_CSV(t *testing.T) {
	m, dir := statsFixture(t)
	stats := Collect(m, dir)

	var buf bytes.Buffer
	require.NoError(t, stats.Render(&buf, FormatCSV))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, []string{"category", "entries", "tracked", "declared_pages", "size_bytes", "missing"}, records[0])
	assert.Equal(t, []string{"ethernet", "2", "2", "120", "1500", "0"}, records[1])
	assert.Equal(t, []string{"ipv6", "2", "1", "5", "300", "1"}, records[2])
}
