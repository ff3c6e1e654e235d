package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"pdf", FormatPDF, true},
		{"application/pdf", FormatPDF, true},
		{"  TXT ", FormatText, true},
		{"text/plain", FormatText, true},
		{"docx", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseFormat(tc.in)
		assert.Equal(t, tc.ok, ok, "ParseFormat(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParseFormat(%q)", tc.in)
	}
}

func TestExtractPlainText(t *testing.T) {
	t.Parallel()

	raw := "Mitosis is the process by which\na cell divides into two\nidentical daughter cells.\n\nIt has several distinct phases."
	text, err := Extract([]byte(raw), FormatText)
	require.NoError(t, err)

	want := "Mitosis is the process by which a cell divides into two identical daughter cells.\nIt has several distinct phases."
	assert.Equal(t, want, text)
}

func TestExtractUnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := Extract([]byte("content"), Format("docx"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractInvalidUTF8(t *testing.T) {
	t.Parallel()

	_, err := Extract([]byte{0xff, 0xfe, 0xfd}, FormatText)
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtractCorruptPDF(t *testing.T) {
	t.Parallel()

	// Not a PDF at all
	_, err := Extract([]byte("just some text"), FormatPDF)
	assert.ErrorIs(t, err, ErrExtractionFailed)

	// Right magic bytes, garbage body
	_, err = Extract([]byte("%PDF-1.7 garbage that is not a real document"), FormatPDF)
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "mid-sentence breaks collapse to spaces",
			in:   "one\ntwo\nthree",
			want: "one two three",
		},
		{
			name: "paragraph breaks become single newlines",
			in:   "para one\n\n\n\npara two",
			want: "para one\npara two",
		},
		{
			name: "windows line endings",
			in:   "a\r\nb\r\n\r\nc",
			want: "a b\nc",
		},
		{
			name: "runs of whitespace squeezed",
			in:   "a \t  b",
			want: "a b",
		},
		{
			name: "blank input",
			in:   "  \n \n ",
			want: "",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}
