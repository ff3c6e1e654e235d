package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// Extraction errors
var (
	// ErrUnsupportedFormat is returned when the declared document type is
	// neither PDF nor plain text.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrExtractionFailed is returned when the payload is corrupt or
	// unreadable for its declared type.
	ErrExtractionFailed = errors.New("failed to extract text from document")
)

// Format identifies the declared type of an uploaded document.
type Format string

// Supported document formats.
const (
	FormatPDF  Format = "pdf"
	FormatText Format = "text"
)

// ParseFormat maps a caller-supplied type string (file extension or MIME-ish
// label) to a Format. Reports ok=false for anything unsupported.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf", "application/pdf":
		return FormatPDF, true
	case "text", "txt", "text/plain":
		return FormatText, true
	default:
		return "", false
	}
}

// Extract converts a document payload into a single normalized UTF-8 text
// blob: line breaks that split mid-sentence collapse to single spaces,
// paragraph breaks are preserved as single newlines. It is a pure transform
// with no side effects.
func Extract(payload []byte, format Format) (string, error) {
	switch format {
	case FormatPDF:
		text, err := extractPDF(payload)
		if err != nil {
			return "", err
		}
		return Normalize(text), nil
	case FormatText:
		if !utf8.Valid(payload) {
			return "", fmt.Errorf("%w: payload is not valid UTF-8", ErrExtractionFailed)
		}
		return Normalize(string(payload)), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// extractPDF pulls plain text from every page of a PDF payload. The pdf
// library needs an io.ReaderAt, so the in-memory payload is wrapped in a
// bytes.Reader rather than written to disk.
func extractPDF(payload []byte) (string, error) {
	if !looksLikePDF(payload) {
		return "", fmt.Errorf("%w: missing PDF header", ErrExtractionFailed)
	}

	reader, err := pdf.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	var sb strings.Builder
	pages := reader.NumPage()
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Image-only or damaged pages are skipped; the document as a
			// whole is still usable.
			continue
		}

		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(text)
	}

	out := sb.String()
	if strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("%w: no extractable text in PDF", ErrExtractionFailed)
	}

	return out, nil
}

// looksLikePDF checks the "%PDF-" magic bytes.
func looksLikePDF(payload []byte) bool {
	return len(payload) >= 5 && string(payload[:5]) == "%PDF-"
}

// Normalize collapses intra-paragraph line breaks (which usually split a
// sentence across lines in PDFs) into single spaces and reduces paragraph
// breaks to single newlines. Runs of spaces and tabs are squeezed.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var paragraphs []string
	for _, para := range splitParagraphs(text) {
		joined := strings.Join(strings.Fields(para), " ")
		if joined != "" {
			paragraphs = append(paragraphs, joined)
		}
	}

	return strings.Join(paragraphs, "\n")
}

// splitParagraphs splits on blank lines (one or more newlines separated only
// by whitespace).
func splitParagraphs(text string) []string {
	var paragraphs []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return paragraphs
}
