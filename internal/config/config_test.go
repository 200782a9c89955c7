package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/g2p-en/lexicon"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "g2p.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadRequiresLexiconPath(t *testing.T) {
	path := writeConfig(t, "hmm_path: hmm.json\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadDefaultsLanguage(t *testing.T) {
	path := writeConfig(t, "lexicon_path: lex.json\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "en-US", cfg.Language)
	require.Equal(t, lexicon.EnUS, cfg.LanguageVariant())
}

func TestLoadParsesAllFields(t *testing.T) {
	path := writeConfig(t, `
lexicon_path: lex.json
hmm_path: hmm.json
language: en-GB
disable_fallback: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "lex.json", cfg.LexiconPath)
	require.Equal(t, "hmm.json", cfg.HMMPath)
	require.Equal(t, lexicon.EnGB, cfg.LanguageVariant())
	require.True(t, cfg.DisableFallback)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
