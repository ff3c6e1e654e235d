package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when text generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate text from prompt")

	// ErrGenerationTimeout is returned when the generation call exceeds the
	// caller-supplied timeout
	ErrGenerationTimeout = errors.New("generation call timed out")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure is returned for temporary errors that might resolve on retry
	ErrTransientFailure = errors.New("transient error during generation")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
