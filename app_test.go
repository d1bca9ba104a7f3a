package main

import (
	"clementus360/gal-bestfriend/config"
	"clementus360/gal-bestfriend/llm"
	"clementus360/gal-bestfriend/persistence"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpstream(t *testing.T) {
	assert.Nil(t, newUpstream(config.Config{LLMProvider: "openai"}))

	h := newUpstream(config.Config{LLMProvider: "gemini", GeminiAPIKey: "k"})
	assert.IsType(t, &llm.Handler{}, h)

	h = newUpstream(config.Config{LLMProvider: "something-else", OpenAIAPIKey: "k"})
	assert.IsType(t, &llm.Handler{}, h)
}

func TestNewStore(t *testing.T) {
	store, err := newStore(config.Config{StoreDriver: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &persistence.MemoryStore{}, store)

	store, err = newStore(config.Config{StoreDriver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "gal.db")})
	require.NoError(t, err)
	assert.IsType(t, &persistence.SQLiteStore{}, store)
	require.NoError(t, store.Close())

	_, err = newStore(config.Config{StoreDriver: "mongo"})
	assert.ErrorIs(t, err, persistence.ErrInvalidDriver)
}
