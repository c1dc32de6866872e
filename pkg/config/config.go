package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig
	Gemini     GeminiConfig
	Transcript TranscriptConfig
	Log        LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// GeminiConfig holds the language-model provider configuration
type GeminiConfig struct {
	APIKey  string `envconfig:"GEMINI_KEY"`
	Model   string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`
}

// TranscriptConfig holds the transcript provider (RapidAPI) configuration
type TranscriptConfig struct {
	APIKey    string        `envconfig:"RAPIDAPI_KEY"`
	Host      string        `envconfig:"RAPIDAPI_HOST" default:"youtube-transcripts.p.rapidapi.com"`
	BaseURL   string        `envconfig:"TRANSCRIPT_BASE_URL" default:"https://youtube-transcripts.p.rapidapi.com"`
	ChunkSize int           `envconfig:"TRANSCRIPT_CHUNK_SIZE" default:"500"`
	Timeout   time.Duration `envconfig:"TRANSCRIPT_TIMEOUT" default:"30s"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_KEY is required")
	}
	if c.Transcript.APIKey == "" {
		return fmt.Errorf("RAPIDAPI_KEY is required")
	}
	if c.Transcript.ChunkSize <= 0 {
		return fmt.Errorf("TRANSCRIPT_CHUNK_SIZE must be positive, got %d", c.Transcript.ChunkSize)
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
