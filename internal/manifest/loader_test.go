package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `version: "2.1"
last_updated: 2024-11-02
description: Protocol test plan repository

ethernet:
  category: connectivity
  description: Ethernet test specifications
  versions:
    "10G":
      specs:
        - name: IEEE 802.3ae
          file: ethernet/10g/802.3ae-2002.pdf
          pages: 516
      test_plans:
        - name: 10GBASE-T PMA Test Suite
          file: ethernet/10g/10gbase-t-pma.pdf
          pages: 42

ipv6:
  category: networking
  versions:
    "RFC 8200":
      specs:
        - name: IPv6 Specification
          file: ipv6/rfc8200.txt
          pages: unknown
        - name: Path MTU Discovery
          file: ipv6/rfc8201.txt

nvme:
  category: storage
  versions:
    "2.0":
      base:
        specs:
          - name: NVMe Base Specification
            file: nvme/2.0/nvme-base-2.0.pdf
            pages: 452
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FileNotFound(t *testing.T) {
	m, err := Load("/nonexistent/path/config.yaml")

	assert.Error(t, err)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeManifest(t, "ethernet: [unclosed\n")

	m, err := Load(path)

	assert.Error(t, err)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestLoad_RootNotMapping(t *testing.T) {
	path := writeManifest(t, "- just\n- a\n- list\n")

	m, err := Load(path)

	assert.Error(t, err)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrNotMapping)
}

func TestLoad_ExtractsEntries(t *testing.T) {
	path := writeManifest(t, sampleManifest)

	m, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, m)

	require.Len(t, m.Entries, 5)
	assert.Equal(t, path, m.Path)
	assert.False(t, m.Dirty())

	first := m.Entries[0]
	assert.Equal(t, "ethernet/10g/802.3ae-2002.pdf", first.File)
	assert.Equal(t, "ethernet.specs.versions.10G", first.Category)
	require.NotNil(t, first.Pages)
	assert.Equal(t, 516, *first.Pages)

	second := m.Entries[1]
	assert.Equal(t, "ethernet/10g/10gbase-t-pma.pdf", second.File)
	assert.Equal(t, "ethernet.test_plans.versions.10G", second.Category)
}

func TestLoad_UnknownPagesAreUntracked(t *testing.T) {
	path := writeManifest(t, sampleManifest)

	m, err := Load(path)
	require.NoError(t, err)

	rfc := m.Entries[2]
	assert.Equal(t, "ipv6/rfc8200.txt", rfc.File)
	assert.False(t, rfc.Tracked())
	assert.Equal(t, "unknown", rfc.PagesRaw)
}

func TestLoad_AbsentPagesAreUntracked(t *testing.T) {
	path := writeManifest(t, sampleManifest)

	m, err := Load(path)
	require.NoError(t, err)

	mtu := m.Entries[3]
	assert.Equal(t, "ipv6/rfc8201.txt", mtu.File)
	assert.False(t, mtu.Tracked())
	assert.Empty(t, mtu.PagesRaw)
}

func TestLoad_NestedSubsections(t *testing.T) {
	path := writeManifest(t, sampleManifest)

	m, err := Load(path)
	require.NoError(t, err)

	nvme := m.Entries[4]
	assert.Equal(t, "nvme/2.0/nvme-base-2.0.pdf", nvme.File)
	assert.Equal(t, "nvme.specs.versions.2.0.base", nvme.Category)
	require.NotNil(t, nvme.Pages)
	assert.Equal(t, 452, *nvme.Pages)
}

func TestLoad_SkipsMetadataSections(t *testing.T) {
	content := `version: "1.0"
stats:
  specs:
    - file: should/not/appear.pdf
      pages: 1
usb:
  versions:
    "3.2":
      specs:
        - name: USB 3.2 Specification
          file: usb/3.2/usb-3.2.pdf
          pages: 548
`
	path := writeManifest(t, content)

	m, err := Load(path)
	require.NoError(t, err)

	require.Len(t, m.Entries, 1)
	assert.Equal(t, "usb/3.2/usb-3.2.pdf", m.Entries[0].File)
}

func TestLoad_QuotedPagesAreTracked(t *testing.T) {
	content := `usb:
  versions:
    "3.2":
      specs:
        - name: USB 3.2 Specification
          file: usb/3.2/usb-3.2.pdf
          pages: "548"
`
	path := writeManifest(t, content)

	m, err := Load(path)
	require.NoError(t, err)

	require.Len(t, m.Entries, 1)
	entry := m.Entries[0]
	assert.True(t, entry.Tracked())
	require.NotNil(t, entry.Pages)
	assert.Equal(t, 548, *entry.Pages)
	assert.Equal(t, "548", entry.PagesRaw)
}

func TestLoad_SkipsItemsWithoutFile(t *testing.T) {
	content := `wifi:
  versions:
    "6E":
      specs:
        - name: No file reference here
          pages: 10
        - name: Real entry
          file: wifi/6e/spec.pdf
          pages: 10
`
	path := writeManifest(t, content)

	m, err := Load(path)
	require.NoError(t, err)

	require.Len(t, m.Entries, 1)
	assert.Equal(t, "wifi/6e/spec.pdf", m.Entries[0].File)
}
