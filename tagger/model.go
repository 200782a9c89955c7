package tagger

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/az-ai-labs/g2p-en/internal/loaderr"
)

const component = "tagger"

// epsilon is the smoothing probability substituted for any missing
// emission or transition entry (spec §4.4).
const epsilon = 1e-6

// Tagger holds the immutable bigram HMM parameters loaded from an HMM
// JSON file. A Tagger is safe for concurrent use: Tag never mutates
// state (spec §5).
type Tagger struct {
	tags       []Tag
	startProb  map[Tag]float64
	emission   map[Tag]map[string]float64
	transition map[Tag]map[Tag]float64
	log        zerolog.Logger
}

type rawHMM struct {
	StartProb  map[string]float64            `json:"start_prob"`
	Emission   map[string]map[string]float64  `json:"emission"`
	Transition map[string]map[string]float64  `json:"transition"`
}

// Load reads and validates an HMM parameters file. The tag universe T is
// exactly the key set of start_prob; emission and transition may be
// sparse over T×V and T×T. Missing fields or wrong types are fatal.
func Load(path string) (*Tagger, error) {
	return LoadWithLogger(path, log.Logger)
}

// LoadWithLogger is Load with an explicit logger for load diagnostics.
func LoadWithLogger(path string, logger zerolog.Logger) (*Tagger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, loaderr.New(component, path, errors.Wrap(err, "read file"))
	}

	var raw rawHMM
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, loaderr.New(component, path, errors.Wrap(err, "parse json"))
	}
	if raw.StartProb == nil {
		return nil, loaderr.New(component, path, errors.New("missing start_prob field"))
	}
	if raw.Emission == nil {
		return nil, loaderr.New(component, path, errors.New("missing emission field"))
	}
	if raw.Transition == nil {
		return nil, loaderr.New(component, path, errors.New("missing transition field"))
	}

	t := &Tagger{
		startProb:  make(map[Tag]float64, len(raw.StartProb)),
		emission:   make(map[Tag]map[string]float64, len(raw.Emission)),
		transition: make(map[Tag]map[Tag]float64, len(raw.Transition)),
		log:        logger,
	}
	for tag, p := range raw.StartProb {
		t.startProb[Tag(tag)] = p
		t.tags = append(t.tags, Tag(tag))
	}
	// Sort the tag universe for a deterministic, stable iteration order
	// (spec §4.4: "ties broken by iteration order of the tag set —
	// implementation-defined but stable within a run").
	sort.Slice(t.tags, func(i, j int) bool { return t.tags[i] < t.tags[j] })

	for tag, emissions := range raw.Emission {
		m := make(map[string]float64, len(emissions))
		for word, p := range emissions {
			m[word] = p
		}
		t.emission[Tag(tag)] = m
	}
	for from, transitions := range raw.Transition {
		m := make(map[Tag]float64, len(transitions))
		for to, p := range transitions {
			m[Tag(to)] = p
		}
		t.transition[Tag(from)] = m
	}

	logger.Debug().
		Str("path", path).
		Int("tags", len(t.tags)).
		Msg("tagger: loaded HMM parameters")

	return t, nil
}

// Tags returns the tag universe in stable sorted order.
func (t *Tagger) Tags() []Tag {
	out := make([]Tag, len(t.tags))
	copy(out, t.tags)
	return out
}

func (t *Tagger) emit(tag Tag, word string) float64 {
	if m, ok := t.emission[tag]; ok {
		if p, ok := m[word]; ok {
			return p
		}
	}
	return epsilon
}

func (t *Tagger) trans(from, to Tag) float64 {
	if m, ok := t.transition[from]; ok {
		if p, ok := m[to]; ok {
			return p
		}
	}
	return epsilon
}

func (t *Tagger) start(tag Tag) float64 {
	if p, ok := t.startProb[tag]; ok {
		return p
	}
	return epsilon
}
