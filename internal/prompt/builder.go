package prompt

import (
	"errors"
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/cardsmithhq/cardsmith/internal/domain"
)

// Prompt construction errors
var (
	// ErrInputTooLarge is returned when the normalized source text exceeds
	// the configured character budget. The text is rejected outright; it is
	// never silently truncated.
	ErrInputTooLarge = errors.New("source text exceeds character budget")

	// ErrEmptyText is returned when the normalized source text is empty.
	ErrEmptyText = errors.New("source text cannot be empty")

	// ErrInvalidCardCount is returned when the requested card count is below one.
	ErrInvalidCardCount = errors.New("card count must be at least 1")
)

// Defaults for generation parameters.
const (
	// DefaultCardCount is the recommended number of cards to request when the
	// caller does not specify one.
	DefaultCardCount = 15

	// DefaultChunkSize is the per-prompt character budget. Long source texts
	// are split at the last paragraph break before this boundary so each
	// generation call stays comfortably inside model context limits.
	DefaultChunkSize = 3000

	// DefaultMaxInputChars is the overall character budget for one
	// generation cycle.
	DefaultMaxInputChars = 100000
)

// Delimiter is the field separator the prompt instructs the model to emit
// and the response parser splits on.
const Delimiter = "|"

// Params are the caller-chosen generation parameters: how many cards to ask
// for (stated to the model as a minimum), plus optional topic and difficulty
// emphasis.
type Params struct {
	// CardCount must be >= 1. Zero means "use DefaultCardCount".
	CardCount int

	// TopicHint selects a subject guide; unknown values fall back to the
	// General guide. Optional.
	TopicHint string

	// DifficultyHint asks the model to prefer cards of this difficulty.
	// Optional; empty means no preference.
	DifficultyHint domain.Difficulty
}

// subjectGuides tailor the instruction block per subject area. Unknown topic
// hints use the General guide.
var subjectGuides = map[string]string{
	"General":          "Generate clear, concise flashcards covering key concepts.",
	"Biology":          "Focus on biological terms, processes, and relationships.",
	"History":          "Emphasize dates, events, causes, and historical figures.",
	"Computer Science": "Cover algorithms, data structures, programming concepts, and definitions.",
	"Medicine":         "Include anatomical terms, medical conditions, and treatments.",
	"Languages":        "Create vocabulary cards with the word in the question and the translation plus an example sentence in the answer.",
}

// promptTemplateText pins the exact line format the response parser expects.
const promptTemplateText = `You are an expert educational assistant that creates high-quality flashcards from educational content.

{{.Guide}}

Rules:
- Generate at least {{.Count}} flashcards from the content below. Producing more is fine.
- Each flashcard must have a clear question and a concise, self-contained, factually accurate answer.
- Rate each card's difficulty as exactly one of: Easy, Medium, Hard.{{if .Difficulty}}
- Prefer {{.Difficulty}} difficulty cards where the material allows.{{end}}
- Identify the main topic of each card in a few words.
- Output one card per line in exactly this format and nothing else:
Q: <question> | A: <answer> | <difficulty> | <topic>

Content:

{{.Text}}`

// promptData is the template payload for one chunk.
type promptData struct {
	Guide      string
	Count      int
	Difficulty domain.Difficulty
	Text       string
}

// Builder assembles deterministic generation prompts from normalized source
// text. A Builder is immutable and safe for concurrent use.
type Builder struct {
	tmpl          *template.Template
	maxInputChars int
	chunkSize     int
}

// NewBuilder creates a Builder with the given overall character budget and
// per-chunk size. Non-positive values use the package defaults.
func NewBuilder(maxInputChars, chunkSize int) *Builder {
	if maxInputChars <= 0 {
		maxInputChars = DefaultMaxInputChars
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	// The template is a package constant; a parse failure is a programming
	// error caught by any test that builds a prompt.
	tmpl := template.Must(template.New("flashcards").Parse(promptTemplateText))

	return &Builder{
		tmpl:          tmpl,
		maxInputChars: maxInputChars,
		chunkSize:     chunkSize,
	}
}

// Build produces one instruction prompt per source-text chunk. Every prompt
// embeds its chunk verbatim, states the per-chunk card count as a minimum,
// and pins the output line format.
func (b *Builder) Build(text string, p Params) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	if len(text) > b.maxInputChars {
		return nil, fmt.Errorf("%w: %d chars (budget %d)", ErrInputTooLarge, len(text), b.maxInputChars)
	}

	count := p.CardCount
	if count == 0 {
		count = DefaultCardCount
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCardCount, count)
	}

	chunks := Chunk(text, b.chunkSize)
	perChunk := (count + len(chunks) - 1) / len(chunks)
	if perChunk < 1 {
		perChunk = 1
	}

	guide, ok := subjectGuides[p.TopicHint]
	if !ok {
		guide = subjectGuides["General"]
	}

	prompts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		var sb strings.Builder
		err := b.tmpl.Execute(&sb, promptData{
			Guide:      guide,
			Count:      perChunk,
			Difficulty: p.DifficultyHint,
			Text:       chunk,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to execute prompt template: %w", err)
		}
		prompts = append(prompts, sb.String())
	}

	return prompts, nil
}

// Chunk splits text into pieces of at most size bytes, preferring the last
// newline before the boundary and falling back to the last space, so cards
// are never asked about a word cut in half. Extracted text collapses
// intra-paragraph newlines to spaces, which makes the space fallback the
// common case for long paragraphs. A split never lands inside a UTF-8 rune.
// Always returns at least one chunk for non-empty text.
func Chunk(text string, size int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}

	var chunks []string
	for len(text) > 0 {
		if len(text) <= size {
			chunks = append(chunks, text)
			break
		}

		window := text[:size]
		splitAt := strings.LastIndex(window, "\n")
		if splitAt <= 0 {
			splitAt = strings.LastIndex(window, " ")
		}
		if splitAt <= 0 {
			// One unbroken run of non-space text: back off to the nearest
			// rune boundary so the cut stays valid UTF-8.
			splitAt = size
			for splitAt > 0 && !utf8.RuneStart(text[splitAt]) {
				splitAt--
			}
			if splitAt == 0 {
				splitAt = size
			}
		}

		chunks = append(chunks, text[:splitAt])
		text = strings.TrimLeft(text[splitAt:], " \n")
	}

	return chunks
}
