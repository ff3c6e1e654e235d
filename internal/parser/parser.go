package parser

import (
	"strings"

	"github.com/cardsmithhq/cardsmith/internal/domain"
)

// Delimiter separates card fields in generated output lines:
//
//	Q: <question> | A: <answer> | <difficulty> | <topic>
const Delimiter = "|"

// Parse starts a lazy scan over raw generated text. The scan is finite and
// not restartable: once drained, re-parsing requires the original raw text
// again. Lines have no length limit; the model occasionally emits very long
// answers and those must parse like any other line.
func Parse(raw string) *Scan {
	return &Scan{lines: strings.Split(raw, "\n")}
}

// ParseAll drains a scan and returns every candidate plus the count of
// skipped (malformed) lines.
func ParseAll(raw string) ([]domain.Candidate, int) {
	scan := Parse(raw)
	var candidates []domain.Candidate
	for scan.Next() {
		candidates = append(candidates, scan.Candidate())
	}
	return candidates, scan.Skipped()
}

// Scan walks generated text line by line, yielding candidate cards and
// counting lines that could not be parsed. Blank lines are ignored silently;
// non-blank lines that do not split into at least a question and an answer
// segment are counted as skipped, never treated as fatal.
type Scan struct {
	lines   []string
	pos     int
	current domain.Candidate
	skipped int
}

// Next advances to the next parseable line. It returns false when the input
// is exhausted.
func (s *Scan) Next() bool {
	for s.pos < len(s.lines) {
		line := strings.TrimSpace(s.lines[s.pos])
		s.pos++
		if line == "" {
			continue
		}

		candidate, ok := parseLine(line)
		if !ok {
			s.skipped++
			continue
		}

		s.current = candidate
		return true
	}
	return false
}

// Candidate returns the candidate produced by the last successful Next call.
func (s *Scan) Candidate() domain.Candidate {
	return s.current
}

// Skipped returns the number of malformed lines counted so far. Call after
// the scan is drained for the full count.
func (s *Scan) Skipped() int {
	return s.skipped
}

// parseLine splits one line on the delimiter. The first two segments are the
// question and answer (with optional "Q:"/"A:" labels in any casing); the
// third is the raw difficulty; everything after that is the topic, re-joined
// so topics containing the delimiter survive.
func parseLine(line string) (domain.Candidate, bool) {
	parts := strings.Split(line, Delimiter)
	if len(parts) < 2 {
		return domain.Candidate{}, false
	}

	question := stripLabel(parts[0], "q", "question")
	answer := stripLabel(parts[1], "a", "answer")
	if question == "" {
		return domain.Candidate{}, false
	}

	candidate := domain.Candidate{
		Question: question,
		Answer:   answer,
	}

	if len(parts) > 2 {
		candidate.Difficulty = strings.TrimSpace(parts[2])
	}
	if len(parts) > 3 {
		candidate.Topic = strings.TrimSpace(strings.Join(parts[3:], Delimiter))
	}

	return candidate, true
}

// stripLabel removes an optional "<label>:" prefix, case-insensitively, and
// trims the remainder.
func stripLabel(field string, labels ...string) string {
	field = strings.TrimSpace(field)
	lower := strings.ToLower(field)
	for _, label := range labels {
		prefix := label + ":"
		if strings.HasPrefix(lower, prefix) {
			return strings.TrimSpace(field[len(prefix):])
		}
	}
	return field
}
