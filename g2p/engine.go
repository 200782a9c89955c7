// Package g2p wires the lexicon, tagger, fallback phonemizer, tokenizer,
// sentence splitter, and number verbalizer into a single Consumer API
// (spec §4.5, §6): Engine.Process(text) -> phoneme string.
package g2p

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/az-ai-labs/g2p-en/lexicon"
	"github.com/az-ai-labs/g2p-en/tagger"
)

// Config names the inputs needed to construct an Engine.
type Config struct {
	// LexiconPath is mandatory: a JSON surface-form -> phoneme dictionary.
	LexiconPath string
	// HMMPath is optional. When empty, every token is tagged "XX" and the
	// lexicon's special rules fire on a best-effort basis (spec §6).
	HMMPath  string
	Language lexicon.Language
	Logger   zerolog.Logger

	// Verbalizer, SentenceSplitter, and Tokenizer are the collaborators
	// the Orchestrator drives text through ahead of/between
	// lexicon+fallback phonemization (spec §6). Each defaults to the
	// `numtext`/`tokenize` supplemented implementations (SPEC_FULL.md
	// §12) when left nil, but callers may substitute their own.
	Verbalizer       Verbalizer
	SentenceSplitter SentenceSplitter
	Tokenizer        Tokenizer
}

// Engine drives text through the full phonemization pipeline. An Engine
// is immutable after New returns and safe for concurrent use by multiple
// goroutines (spec §5): no Process call mutates shared state.
type Engine struct {
	lex *lexicon.Lexicon
	tg  *tagger.Tagger // nil when Config.HMMPath was empty
	log zerolog.Logger

	verbalizer Verbalizer
	splitter   SentenceSplitter
	tokenizer  Tokenizer
}

// New loads the lexicon and (if configured) the HMM tagger concurrently
// and returns a ready-to-use Engine. Either load failing is a fatal
// LoadError (spec §7); both are attempted regardless of Config.HMMPath
// being empty for the lexicon (mandatory) and skipped for the tagger
// when HMMPath is empty.
func New(ctx context.Context, cfg Config) (*Engine, error) {
	if cfg.LexiconPath == "" {
		return nil, errors.New("g2p: lexicon path is required")
	}

	eng := &Engine{
		log:        cfg.Logger,
		verbalizer: cfg.Verbalizer,
		splitter:   cfg.SentenceSplitter,
		tokenizer:  cfg.Tokenizer,
	}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		lex, err := lexicon.LoadWithLogger(cfg.LexiconPath, cfg.Language, cfg.Logger)
		if err != nil {
			return errors.Wrap(err, "g2p: load lexicon")
		}
		eng.lex = lex
		return nil
	})

	if cfg.HMMPath != "" {
		g.Go(func() error {
			tg, err := tagger.LoadWithLogger(cfg.HMMPath, cfg.Logger)
			if err != nil {
				return errors.Wrap(err, "g2p: load tagger")
			}
			eng.tg = tg
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	cfg.Logger.Info().
		Bool("has_tagger", eng.tg != nil).
		Msg("g2p engine ready")

	return eng, nil
}
