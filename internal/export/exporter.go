package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cardsmithhq/cardsmith/internal/domain"
)

// ErrUnsupportedFormat is returned for any export selector outside the
// supported set.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format selects the export serialization.
type Format string

// Supported export formats.
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatAnki Format = "anki"
)

// ParseFormat maps a caller-supplied selector to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatAnki:
		return FormatAnki, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Payload is a fully constructed export: the serialized bytes plus the
// metadata a download layer needs. Payloads are built in memory and returned
// atomically; nothing is ever written to disk here.
type Payload struct {
	Data        []byte
	ContentType string
	Extension   string
}

// Export serializes a finalized card set into the selected format. Cards are
// never mutated; record order is preserved in every format.
func Export(cards []domain.Card, format Format) (*Payload, error) {
	switch format {
	case FormatCSV:
		return exportCSV(cards)
	case FormatJSON:
		return exportJSON(cards)
	case FormatAnki:
		return exportAnki(cards)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// exportCSV writes a header row plus one row per card. encoding/csv handles
// quoting of fields containing the delimiter, quotes, or newlines.
func exportCSV(cards []domain.Card) (*Payload, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"question", "answer", "difficulty", "topic"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, card := range cards {
		row := []string{card.Question, card.Answer, string(card.Difficulty), card.Topic}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return &Payload{
		Data:        buf.Bytes(),
		ContentType: "text/csv",
		Extension:   "csv",
	}, nil
}

// exportJSON emits an ordered array of card objects. Struct field order on
// domain.Card fixes the key order: question, answer, difficulty, topic.
func exportJSON(cards []domain.Card) (*Payload, error) {
	data, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cards to JSON: %w", err)
	}

	return &Payload{
		Data:        data,
		ContentType: "application/json",
		Extension:   "json",
	}, nil
}

// exportAnki writes the tab-delimited import format: question, answer, and a
// trailing tags column of the form Difficulty_Topic with inner spaces
// replaced by underscores (Anki tags cannot contain spaces).
func exportAnki(cards []domain.Card) (*Payload, error) {
	var buf bytes.Buffer

	for _, card := range cards {
		tags := strings.ReplaceAll(string(card.Difficulty)+" "+card.Topic, " ", "_")
		buf.WriteString(ankiField(card.Question))
		buf.WriteByte('\t')
		buf.WriteString(ankiField(card.Answer))
		buf.WriteByte('\t')
		buf.WriteString(tags)
		buf.WriteByte('\n')
	}

	return &Payload{
		Data:        buf.Bytes(),
		ContentType: "text/tab-separated-values",
		Extension:   "txt",
	}, nil
}

// ankiField flattens tabs and newlines, which would otherwise corrupt the
// column layout on import.
func ankiField(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
