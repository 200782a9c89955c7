// Command lexgen builds a lexicon JSON file (the flat surface-form ->
// phoneme map lexicon.Load expects) from a CMU-dict-style source list:
// one entry per line, "WORD  PHONEMES", whitespace-separated, blank
// lines and ";;;"-prefixed comments ignored, adapted from
// cmd/dictgen/main.go's scan-filter-sort-write shape.
//
//	go run ./cmd/lexgen --input cmudict.txt --output data/lexicon.json
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

const scannerBufSize = 1 << 20 // 1 MB

func main() {
	var inputPath, outputPath string

	root := &cobra.Command{
		Use:   "lexgen",
		Short: "Build a g2p lexicon JSON file from a CMU-dict-style source list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(inputPath, outputPath)
		},
	}
	root.Flags().StringVar(&inputPath, "input", "", "path to a CMU-dict-style word/phonemes list (required)")
	root.Flags().StringVar(&outputPath, "output", "data/lexicon.json", "output path for the lexicon JSON file")
	root.MarkFlagRequired("input")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lexgen: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath, outputPath string) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}

	entries := make(map[string]string)
	scanner := bufio.NewScanner(f)
	buf := make([]byte, scannerBufSize)
	scanner.Buffer(buf, scannerBufSize)

	for scanner.Scan() {
		line := scanner.Text()
		word, phonemes, ok := parseLine(line)
		if !ok {
			continue
		}
		entries[word] = phonemes
	}
	scanErr := scanner.Err()

	// Close input explicitly after scanning (no defer, avoids exitAfterDefer).
	if err := f.Close(); err != nil {
		return fmt.Errorf("close input: %w", err)
	}
	if scanErr != nil {
		return fmt.Errorf("scan error: %w", scanErr)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	// encoding/json sorts map[string]string keys alphabetically, so the
	// output file is already deterministic without a separate sort pass.
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		out.Close()
		return fmt.Errorf("encode output: %w", err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	fmt.Fprintf(os.Stderr, "lexgen: wrote %d entries to %s\n", len(entries), outputPath)
	return nil
}

// parseLine splits a CMU-dict-style line into its surface form and
// phoneme string. Blank lines and ";;;" comments are skipped.
func parseLine(line string) (word, phonemes string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, ";;;") {
		return "", "", false
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", "", false
	}
	return fields[0], strings.Join(fields[1:], ""), true
}
