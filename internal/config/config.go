// Package config handles application configuration from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server     ServerConfig    `yaml:"server"`
	Database   DatabaseConfig  `yaml:"database"`
	Search     SearchConfig    `yaml:"search"`
	LLM        LLMConfig       `yaml:"llm"`
	Cache      CacheConfig     `yaml:"cache"`
	RateLimits RateLimitConfig `yaml:"rate_limits"`
	Logging    LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type SearchConfig struct {
	// Provider selects the search backend: serper or duckduckgo.
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key"`
	// MaxResults is the number of results requested from the provider.
	// Only the first MaxSources are retained for analysis.
	MaxResults int `yaml:"max_results"`
	MaxSources int `yaml:"max_sources"`
}

type LLMConfig struct {
	Provider        string  `yaml:"provider"` // openai, gemini, ollama
	Model           string  `yaml:"model"`
	APIKey          string  `yaml:"api_key"`
	OllamaURL       string  `yaml:"ollama_url"`
	MaxOutputTokens int     `yaml:"max_output_tokens"`
	Temperature     float64 `yaml:"temperature"`
}

type CacheConfig struct {
	// WindowDays bounds how old a record may be and still satisfy a lookup.
	WindowDays int `yaml:"window_days"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		Database: DatabaseConfig{
			Path: "./data/truthscan.db",
		},
		Search: SearchConfig{
			Provider:   "serper",
			MaxResults: 5,
			MaxSources: 3,
		},
		LLM: LLMConfig{
			Provider:        "gemini",
			Model:           "gemini-2.0-flash",
			MaxOutputTokens: 1024,
			Temperature:     0.1,
		},
		Cache: CacheConfig{
			WindowDays: 7,
		},
		RateLimits: RateLimitConfig{
			RequestsPerMinute: 60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (generate one with 'truthscan config init')", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Interpolate environment variables
	content := interpolateEnvVars(string(data))

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// GenerateSample creates a sample configuration file.
func GenerateSample(path string) error {
	sample := `# truthscan configuration

server:
  port: 8080

database:
  path: ./data/truthscan.db

search:
  provider: serper  # serper or duckduckgo
  api_key: ${SERPER_API_KEY}
  max_results: 5    # requested from the provider
  max_sources: 3    # retained for analysis and the stored record

llm:
  provider: gemini  # gemini, openai, ollama
  model: gemini-2.0-flash
  api_key: ${GEMINI_API_KEY}
  max_output_tokens: 1024
  temperature: 0.1

  # For OpenAI:
  # provider: openai
  # model: gpt-4o-mini
  # api_key: ${OPENAI_API_KEY}

  # For Ollama (local):
  # provider: ollama
  # model: llama3
  # ollama_url: http://localhost:11434

cache:
  window_days: 7

rate_limits:
  requests_per_minute: 60

logging:
  level: info  # debug, info, warn, error
  format: json # json or text
`
	return os.WriteFile(path, []byte(sample), 0644)
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}

	switch c.Search.Provider {
	case "serper":
		if c.Search.APIKey == "" {
			return fmt.Errorf("serper API key is required")
		}
	case "duckduckgo":
	default:
		return fmt.Errorf("unsupported search provider: %s", c.Search.Provider)
	}
	if c.Search.MaxResults < 1 {
		return fmt.Errorf("search max_results must be positive")
	}
	if c.Search.MaxSources < 1 || c.Search.MaxSources > c.Search.MaxResults {
		return fmt.Errorf("search max_sources must be between 1 and max_results")
	}

	switch c.LLM.Provider {
	case "openai", "gemini":
		if c.LLM.APIKey == "" {
			return fmt.Errorf("%s API key is required", c.LLM.Provider)
		}
	case "ollama":
	default:
		return fmt.Errorf("unsupported LLM provider: %s", c.LLM.Provider)
	}

	if c.Cache.WindowDays < 1 {
		return fmt.Errorf("cache window_days must be positive")
	}

	return nil
}

// interpolateEnvVars replaces ${VAR_NAME} with environment variable values.
func interpolateEnvVars(content string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(content, func(match string) string {
		varName := strings.TrimPrefix(strings.TrimSuffix(match, "}"), "${")
		if value := os.Getenv(varName); value != "" {
			return value
		}
		return match // Keep original if not set
	})
}
