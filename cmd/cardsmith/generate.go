package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cardsmithhq/cardsmith/internal/config"
	"github.com/cardsmithhq/cardsmith/internal/domain"
	"github.com/cardsmithhq/cardsmith/internal/export"
	"github.com/cardsmithhq/cardsmith/internal/extract"
	"github.com/cardsmithhq/cardsmith/internal/platform/gemini"
	"github.com/cardsmithhq/cardsmith/internal/platform/logger"
	"github.com/cardsmithhq/cardsmith/internal/platform/memory"
	"github.com/cardsmithhq/cardsmith/internal/prompt"
	"github.com/cardsmithhq/cardsmith/internal/service"
)

func generateCmd() *cobra.Command {
	var (
		input          string
		inputType      string
		formatName     string
		out            string
		count          int
		topicHint      string
		difficultyHint string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a flashcard deck from a PDF or text file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			log := logger.Setup(cfg.Server)

			payload, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("read input file: %w", err)
			}

			declared := inputType
			if declared == "" {
				declared = strings.TrimPrefix(filepath.Ext(input), ".")
			}
			docFormat, ok := extract.ParseFormat(declared)
			if !ok {
				return fmt.Errorf("%w: %q", extract.ErrUnsupportedFormat, declared)
			}

			exportFormat, err := export.ParseFormat(formatName)
			if err != nil {
				return err
			}

			params := prompt.Params{CardCount: count, TopicHint: topicHint}
			if difficultyHint != "" {
				difficulty, ok := domain.ParseDifficulty(difficultyHint)
				if !ok {
					return fmt.Errorf("%w: %q", domain.ErrInvalidDifficulty, difficultyHint)
				}
				params.DifficultyHint = difficulty
			}

			ctx := cmd.Context()
			generator, err := gemini.NewGeminiGenerator(ctx, log, cfg.LLM)
			if err != nil {
				return fmt.Errorf("create generator: %w", err)
			}

			decks := memory.NewDeckStore(1)
			builder := prompt.NewBuilder(cfg.Generation.MaxInputChars, cfg.Generation.ChunkSize)
			svc, err := service.NewDeckService(
				generator,
				decks,
				builder,
				cfg.Generation.DefaultCardCount,
				time.Duration(cfg.LLM.TimeoutSeconds)*time.Second,
				log,
			)
			if err != nil {
				return fmt.Errorf("create deck service: %w", err)
			}

			deck, err := svc.GenerateDeck(ctx, payload, docFormat, params)
			if err != nil {
				return err
			}

			result, err := export.Export(deck.Cards, exportFormat)
			if err != nil {
				return err
			}

			dest := out
			if dest == "" {
				base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
				dest = base + "-cards." + result.Extension
			}
			if err := os.WriteFile(dest, result.Data, 0o644); err != nil {
				return fmt.Errorf("write output file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d cards to %s", len(deck.Cards), dest)
			if deck.SkippedLines > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), " (%d malformed lines skipped)", deck.SkippedLines)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "path to the source document (PDF or plain text)")
	cmd.Flags().StringVar(&inputType, "type", "", "source document type: pdf|text (default: from file extension)")
	cmd.Flags().StringVarP(&formatName, "format", "f", "csv", "export format: csv|json|anki")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: <input>-cards.<ext>)")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of cards to request (default: from configuration)")
	cmd.Flags().StringVar(&topicHint, "topic", "", "subject emphasis, e.g. Biology or History")
	cmd.Flags().StringVar(&difficultyHint, "difficulty", "", "preferred difficulty: Easy|Medium|Hard")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
