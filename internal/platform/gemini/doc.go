// Package gemini implements the generation.Generator interface against
// Google's Gemini API, including retry with exponential backoff for
// transient failures and safety-block detection.
package gemini
