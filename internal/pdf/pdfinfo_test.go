package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomasahle/testplan-data/internal/domain"
)

func TestParseInfoOutput(t *testing.T) {
	out := []byte(`Title:          IEEE 802.3ae-2002
Producer:       Acrobat Distiller
CreationDate:   Fri Aug 30 10:12:01 2002
Pages:          516
Encrypted:      no
Page size:      612 x 792 pts (letter)
File size:      8123456 bytes
`)

	n, err := parseInfoOutput(out)

	require.NoError(t, err)
	assert.Equal(t, 516, n)
}

func TestParseInfoOutput_NoPagesLine(t *testing.T) {
	out := []byte("Title: something\nEncrypted: no\n")

	_, err := parseInfoOutput(out)

	assert.ErrorIs(t, err, domain.ErrPageCountUnavailable)
}

func TestParseInfoOutput_UnparsableValue(t *testing.T) {
	out := []byte("Pages: lots\n")

	_, err := parseInfoOutput(out)

	assert.ErrorIs(t, err, domain.ErrPageCountUnavailable)
}

func TestNewInfoCounter_DefaultBinary(t *testing.T) {
	assert.Equal(t, DefaultInfoBinary, NewInfoCounter("").binary)
	assert.Equal(t, "/opt/poppler/bin/pdfinfo", NewInfoCounter("/opt/poppler/bin/pdfinfo").binary)
}

func TestInfoCounter_MissingBinary(t *testing.T) {
	counter := NewInfoCounter("definitely-not-a-real-binary-name")

	_, err := counter.PageCount("doc.pdf")

	require.Error(t, err)
	var pdfErr *domain.PDFError
	assert.ErrorAs(t, err, &pdfErr)
	assert.Equal(t, "pdfinfo", pdfErr.Strategy)
}
