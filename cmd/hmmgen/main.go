// Command hmmgen builds an HMM parameters JSON file (start_prob,
// emission, transition — the shape tagger.Load expects) from a
// tagged corpus: one sentence per line, space-separated
// "word_TAG" pairs (Brown-corpus style), adapted from
// scripts/buildfreq.go's frequency-counting idiom.
//
//	go run ./cmd/hmmgen --input tagged-corpus.txt --output data/hmm.json
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

const scannerBufSize = 4 * 1024 * 1024 // 4 MB, handles long tagged lines

type counts struct {
	startCount      map[string]int
	sentenceTotal   int
	emissionCount   map[string]map[string]int
	tagTotal        map[string]int
	transitionCount map[string]map[string]int
	fromTotal       map[string]int
}

func newCounts() *counts {
	return &counts{
		startCount:      make(map[string]int),
		emissionCount:   make(map[string]map[string]int),
		tagTotal:        make(map[string]int),
		transitionCount: make(map[string]map[string]int),
		fromTotal:       make(map[string]int),
	}
}

func main() {
	var inputPath, outputPath string

	root := &cobra.Command{
		Use:   "hmmgen",
		Short: "Build a g2p HMM parameters JSON file from a tagged corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(inputPath, outputPath)
		},
	}
	root.Flags().StringVar(&inputPath, "input", "", "path to a word_TAG tagged corpus (required)")
	root.Flags().StringVar(&outputPath, "output", "data/hmm.json", "output path for the HMM JSON file")
	root.MarkFlagRequired("input")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hmmgen: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath, outputPath string) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}

	c := newCounts()
	scanner := bufio.NewScanner(f)
	buf := make([]byte, scannerBufSize)
	scanner.Buffer(buf, scannerBufSize)

	lines := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		accumulate(c, line)
		lines++
	}
	scanErr := scanner.Err()

	if err := f.Close(); err != nil {
		return fmt.Errorf("close input: %w", err)
	}
	if scanErr != nil {
		return fmt.Errorf("scan error: %w", scanErr)
	}

	model := buildModel(c)

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(model); err != nil {
		out.Close()
		return fmt.Errorf("encode output: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	fmt.Fprintf(os.Stderr, "hmmgen: processed %d sentences, %d tags, wrote %s\n", lines, len(c.tagTotal), outputPath)
	return nil
}

// accumulate parses one "word_TAG word_TAG ..." line and folds its
// bigram tag transitions, emissions, and sentence-initial tag into c.
func accumulate(c *counts, line string) {
	pairs := strings.Fields(line)
	var prevTag string
	for i, pair := range pairs {
		word, tag, ok := splitPair(pair)
		if !ok {
			continue
		}

		if i == 0 {
			c.startCount[tag]++
			c.sentenceTotal++
		}

		c.tagTotal[tag]++
		if c.emissionCount[tag] == nil {
			c.emissionCount[tag] = make(map[string]int)
		}
		c.emissionCount[tag][word]++

		if prevTag != "" {
			c.fromTotal[prevTag]++
			if c.transitionCount[prevTag] == nil {
				c.transitionCount[prevTag] = make(map[string]int)
			}
			c.transitionCount[prevTag][tag]++
		}
		prevTag = tag
	}
}

// splitPair splits a "word_TAG" token on its last underscore, since
// some surface words themselves contain underscores.
func splitPair(pair string) (word, tag string, ok bool) {
	idx := strings.LastIndexByte(pair, '_')
	if idx < 0 || idx == len(pair)-1 {
		return "", "", false
	}
	return pair[:idx], pair[idx+1:], true
}

type rawHMM struct {
	StartProb  map[string]float64            `json:"start_prob"`
	Emission   map[string]map[string]float64  `json:"emission"`
	Transition map[string]map[string]float64 `json:"transition"`
}

// buildModel converts raw co-occurrence counts into maximum-likelihood
// probabilities (spec §4.4: start_prob/emission/transition).
func buildModel(c *counts) rawHMM {
	model := rawHMM{
		StartProb:  make(map[string]float64, len(c.startCount)),
		Emission:   make(map[string]map[string]float64, len(c.emissionCount)),
		Transition: make(map[string]map[string]float64, len(c.transitionCount)),
	}

	for tag, n := range c.startCount {
		model.StartProb[tag] = float64(n) / float64(c.sentenceTotal)
	}
	for tag, words := range c.emissionCount {
		total := c.tagTotal[tag]
		m := make(map[string]float64, len(words))
		for word, n := range words {
			m[word] = float64(n) / float64(total)
		}
		model.Emission[tag] = m
	}
	for from, tos := range c.transitionCount {
		total := c.fromTotal[from]
		m := make(map[string]float64, len(tos))
		for to, n := range tos {
			m[to] = float64(n) / float64(total)
		}
		model.Transition[from] = m
	}
	return model
}
