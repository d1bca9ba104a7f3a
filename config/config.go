package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment after .env has been loaded.
type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"*"`

	// LLMProvider picks the in-process model backend: "openai" or "gemini".
	// Leave both keys empty to run on local replies only.
	LLMProvider  string `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL" envDefault:"gpt-4o"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`

	// ProxyURL sends external replies to a remote /api/chat instead.
	ProxyURL        string        `env:"CHAT_PROXY_URL"`
	ExternalTimeout time.Duration `env:"EXTERNAL_TIMEOUT" envDefault:"20s"`
	TypingPace      bool          `env:"TYPING_PACE" envDefault:"true"`

	StoreDriver      string        `env:"STORE_DRIVER" envDefault:"memory"`
	RedisAddr        string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword    string        `env:"REDIS_PASSWORD"`
	RedisDB          int           `env:"REDIS_DB" envDefault:"0"`
	StateTTL         time.Duration `env:"STATE_TTL" envDefault:"720h"`
	SQLitePath       string        `env:"SQLITE_PATH" envDefault:"galbestfriend.db"`
	SupabaseURL      string        `env:"SUPABASE_URL"`
	SupabaseKey      string        `env:"SUPABASE_KEY"`
	AutosaveInterval time.Duration `env:"AUTOSAVE_INTERVAL" envDefault:"30s"`

	// SupabaseJWTSecret verifies bearer tokens. Without it tokens are ignored
	// and every visitor is anonymous.
	SupabaseJWTSecret  string        `env:"SUPABASE_JWT_SECRET"`
	// SessionIdleTimeout drops in-memory sessions nobody has touched for this
	// long, after saving their preferences.
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"2h"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (Config, error) {
	LoadEnv()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// HasExternal reports whether any external reply path is configured.
func (c Config) HasExternal() bool {
	return c.ProxyURL != "" || c.OpenAIAPIKey != "" || c.GeminiAPIKey != ""
}
