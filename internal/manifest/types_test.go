package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntry_IsPDF(t *testing.T) {
	tests := []struct {
		file string
		want bool
	}{
		{"ethernet/10g/802.3ae-2002.pdf", true},
		{"usb/USB-3.2.PDF", true},
		{"ipv6/rfc8200.txt", false},
		{"notes/readme.md", false},
		{"weird/no-extension", false},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			e := &Entry{File: tt.file}
			assert.Equal(t, tt.want, e.IsPDF())
		})
	}
}

func TestEntry_Tracked(t *testing.T) {
	pages := 42
	assert.True(t, (&Entry{Pages: &pages}).Tracked())
	assert.False(t, (&Entry{}).Tracked())
	assert.False(t, (&Entry{PagesRaw: "unknown"}).Tracked())
}
