// Package main implements the cardsmith CLI, which generates flashcard decks
// from local documents without running the HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "cardsmith",
		Short:         "Generate LLM-powered flashcard decks from study material",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(generateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
