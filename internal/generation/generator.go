package generation

import (
	"context"
)

// Generator defines the interface for the external text-generation service.
// This interface serves as a boundary between the application core and the
// LLM provider: the core hands over a finished prompt and gets back raw text
// for the response parser, keeping the pipeline testable with a deterministic
// stub instead of a live network dependency.
//
// Implementations must honor ctx cancellation and deadlines; the caller
// supplies the per-call timeout through the context.
type Generator interface {
	// Generate sends the prompt to the model and returns its raw text output.
	// Returns one of this package's sentinel errors (possibly wrapped) when
	// the call fails.
	Generate(ctx context.Context, prompt string) (string, error)
}
