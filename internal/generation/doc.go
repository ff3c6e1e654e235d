// Package generation provides the interface and error taxonomy for
// interacting with external AI/LLM services. It abstracts the details of
// LLM API integration (Gemini), allowing the application to generate
// flashcard text from prompts without coupling to a specific provider.
package generation
