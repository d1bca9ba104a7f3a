package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
	assert.Equal(t, 20*time.Second, cfg.ExternalTimeout)
	assert.Equal(t, 30*time.Second, cfg.AutosaveInterval)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.True(t, cfg.TypingPace)
	assert.Equal(t, 2*time.Hour, cfg.SessionIdleTimeout)
	assert.Empty(t, cfg.SupabaseJWTSecret)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("EXTERNAL_TIMEOUT", "5s")
	t.Setenv("TYPING_PACE", "false")
	t.Setenv("SUPABASE_JWT_SECRET", "jwt-secret")
	t.Setenv("SESSION_IDLE_TIMEOUT", "15m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "jwt-secret", cfg.SupabaseJWTSecret)
	assert.Equal(t, 15*time.Minute, cfg.SessionIdleTimeout)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "redis", cfg.StoreDriver)
	assert.Equal(t, 5*time.Second, cfg.ExternalTimeout)
	assert.False(t, cfg.TypingPace)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SQLITE_PATH=/tmp/gal-test.db\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("SQLITE_PATH") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/gal-test.db", cfg.SQLitePath)
}

func TestLoad_BadDuration(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AUTOSAVE_INTERVAL", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestHasExternal(t *testing.T) {
	assert.False(t, Config{}.HasExternal())
	assert.True(t, Config{ProxyURL: "http://localhost:3000/api/chat"}.HasExternal())
	assert.True(t, Config{GeminiAPIKey: "k"}.HasExternal())
}

func TestInitLogger(t *testing.T) {
	InitLogger("debug")
	assert.Equal(t, logrus.DebugLevel, Logger.GetLevel())

	InitLogger("loud")
	assert.Equal(t, logrus.InfoLevel, Logger.GetLevel())
}
