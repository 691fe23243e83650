package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvProduction represents the production environment.
	EnvProduction = "production"
)

// Supported completion providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	Env  string `envconfig:"ENV" default:"development"`
	Port string `envconfig:"PORT" default:"8080"`

	// Security settings
	HSTSMaxAge int    `envconfig:"HSTS_MAX_AGE" default:"31536000"`
	CSPMode    string `envconfig:"CSP_MODE" default:"relaxed"`

	// Logging settings
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Completion provider settings. Ollama is the default so the app works
	// fully locally without any credentials.
	Provider        string  `envconfig:"PROVIDER" default:"ollama"`
	OpenAIAPIKey    string  `envconfig:"OPENAI_API_KEY"`
	OpenAIModel     string  `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	OpenAIBaseURL   string  `envconfig:"OPENAI_BASE_URL"`
	AnthropicAPIKey string  `envconfig:"ANTHROPIC_API_KEY"`
	AnthropicModel  string  `envconfig:"ANTHROPIC_MODEL" default:"claude-sonnet-4-5-20250929"`
	OllamaBaseURL   string  `envconfig:"OLLAMA_BASE_URL" default:"http://localhost:11434"`
	OllamaModel     string  `envconfig:"OLLAMA_MODEL" default:"llama3"`
	Temperature     float64 `envconfig:"TEMPERATURE" default:"0.5"`

	// Every completion call is bounded by this timeout. There are no retries:
	// a failed call surfaces to the user and leaves the draft untouched.
	GenerateTimeout time.Duration `envconfig:"GENERATE_TIMEOUT" default:"120s"`

	// Export settings
	WkhtmltopdfPath string `envconfig:"WKHTMLTOPDF_PATH" default:"wkhtmltopdf"`

	// Static assets (the browser form)
	StaticDir string `envconfig:"STATIC_DIR" default:"./web"`
}

// LoadConfig loads configuration from .env file and environment variables.
func LoadConfig() (*Config, error) {
	// Try to load .env file (optional for development)
	if err := godotenv.Load(); err != nil {
		// Not an error if file doesn't exist (expected in production)
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	// Parse environment variables into config struct
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks provider selection and its required credentials.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("provider %q requires OPENAI_API_KEY", c.Provider)
		}
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("provider %q requires ANTHROPIC_API_KEY", c.Provider)
		}
	case ProviderOllama:
		if c.OllamaBaseURL == "" {
			return fmt.Errorf("provider %q requires OLLAMA_BASE_URL", c.Provider)
		}
	default:
		return fmt.Errorf("unknown provider %q: must be openai, anthropic, or ollama", c.Provider)
	}

	return nil
}

// BuildCSP constructs Content Security Policy based on mode.
func BuildCSP(mode string) string {
	if mode == "strict" {
		// Production CSP
		return "default-src 'self'; " +
			"style-src 'self' 'unsafe-inline'; " +
			"script-src 'self'; " +
			"img-src 'self' data:; " +
			"object-src 'none'; " +
			"base-uri 'self'; " +
			"form-action 'self'"
	}

	// Development/relaxed CSP
	return "default-src 'self'; " +
		"style-src 'self' 'unsafe-inline'; " +
		"script-src 'self' 'unsafe-inline'; " +
		"img-src 'self' data:"
}
