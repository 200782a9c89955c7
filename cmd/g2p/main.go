// Command g2p is the engine's CLI front end: phonemize text, print the
// Viterbi tag sequence for debugging, or report lexicon/tagger
// coverage over a corpus (SPEC_FULL.md §10, §13).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/az-ai-labs/g2p-en/g2p"
	"github.com/az-ai-labs/g2p-en/internal/config"
	"github.com/az-ai-labs/g2p-en/internal/diagnostics"
	"github.com/az-ai-labs/g2p-en/lexicon"
	"github.com/az-ai-labs/g2p-en/tagger"
	"github.com/az-ai-labs/g2p-en/tokenize"
)

var (
	configPath string
	verbose    bool
)

func main() {
	root := &cobra.Command{
		Use:   "g2p",
		Short: "English grapheme-to-phoneme engine",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to the engine config YAML file (required)")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug-level logging")
	root.MarkPersistentFlagRequired("config")

	root.AddCommand(phonemizeCmd(), tagCmd(), coverageCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "g2p: %v\n", err)
		os.Exit(1)
	}
}

func logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

func loadEngine(ctx context.Context) (*g2p.Engine, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return g2p.New(ctx, g2p.Config{
		LexiconPath: cfg.LexiconPath,
		HMMPath:     cfg.HMMPath,
		Language:    cfg.LanguageVariant(),
		Logger:      logger(),
	})
}

func phonemizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phonemize [text]",
		Short: "Phonemize text from an argument or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			eng, err := loadEngine(cmd.Context())
			if err != nil {
				return err
			}
			out, err := eng.Process(text)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func tagCmd() *cobra.Command {
	var hmmPath string
	cmd := &cobra.Command{
		Use:   "tag [text]",
		Short: "Print the Viterbi tag sequence for a sentence (debug)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			path := hmmPath
			if path == "" {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				path = cfg.HMMPath
			}
			if path == "" {
				return fmt.Errorf("no hmm path: pass --hmm or set hmm_path in the config file")
			}

			tg, err := tagger.LoadWithLogger(path, logger())
			if err != nil {
				return err
			}

			words := tokenize.Words(text)
			tags := tg.Tag(words)
			for i, w := range words {
				fmt.Fprintf(cmd.OutOrStdout(), "%s_%s ", w, tags[i])
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().StringVar(&hmmPath, "hmm", "", "override the config file's hmm_path")
	return cmd
}

func coverageCmd() *cobra.Command {
	var includeWords bool
	cmd := &cobra.Command{
		Use:   "coverage [corpus-file]",
		Short: "Report lexicon hit-rate, fallback-rate, and unknown-tag-rate over a corpus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read corpus: %w", err)
			}
			words := tokenize.Words(string(data))

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			lex, err := lexicon.LoadWithLogger(cfg.LexiconPath, cfg.LanguageVariant(), logger())
			if err != nil {
				return err
			}
			var tg *tagger.Tagger
			if cfg.HMMPath != "" {
				tg, err = tagger.LoadWithLogger(cfg.HMMPath, logger())
				if err != nil {
					return err
				}
			}

			report := diagnostics.Coverage(words, lex, tg, includeWords)
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
	cmd.Flags().BoolVar(&includeWords, "words", false, "include the per-word outcome breakdown")
	return cmd
}

// readText prefers an explicit argument over stdin, matching the
// teacher's cobra-equivalent convention of "arg wins, stdin is the
// fallback" for text-processing commands.
func readText(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
