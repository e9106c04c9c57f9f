// Package config loads application configuration from files and
// environment variables and bridges it to the voyage client options.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"

	voyage "github.com/soundprediction/go-voyage"
)

// Config holds all configuration for the application
type Config struct {
	// Log configuration
	Log LogConfig `mapstructure:"log"`

	// Embedding configuration
	Embedding EmbeddingConfig `mapstructure:"embedding"`

	// CircuitBreaker configuration
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EmbeddingConfig holds configuration for the embedding client
type EmbeddingConfig struct {
	// Provider is the provider type: voyageai, openai, embedeverything
	Provider string `mapstructure:"provider"`
	// Model is the embedding model name
	Model string `mapstructure:"model"`
	// APIKey is the provider API key
	APIKey string `mapstructure:"api_key"`
	// BaseURL is the base endpoint URL
	BaseURL string `mapstructure:"base_url"`
	// InputType is the retrieval hint: query, document, or empty
	InputType string `mapstructure:"input_type"`
	// Truncation controls model-side truncation of over-length inputs
	Truncation bool `mapstructure:"truncation"`
	// OutputDimension is the requested vector length; zero uses the model default
	OutputDimension int `mapstructure:"output_dimension"`
	// OutputDtype is the output numeric type
	OutputDtype string `mapstructure:"output_dtype"`
	// EncodingFormat selects plain arrays or base64 packed buffers
	EncodingFormat string `mapstructure:"encoding_format"`
	// TimeoutSeconds is the per-attempt HTTP timeout in seconds
	TimeoutSeconds int `mapstructure:"timeout"`
	// MaxRetries is the number of additional attempts after the first
	MaxRetries int `mapstructure:"max_retries"`
	// RetryDelayMs is the base backoff delay in milliseconds
	RetryDelayMs int `mapstructure:"retry_delay_ms"`
}

// CircuitBreakerConfig holds configuration for circuit breaking
type CircuitBreakerConfig struct {
	Enabled          bool    `mapstructure:"enabled"`
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"` // in seconds
	Timeout          int     `mapstructure:"timeout"`  // in seconds
	ReadyToTripRatio float64 `mapstructure:"ready_to_trip_ratio"`
}

// Options converts the embedding configuration into an immutable options
// value for the voyage client.
func (c EmbeddingConfig) Options() *voyage.Options {
	opts := voyage.NewOptions(c.APIKey)
	if c.BaseURL != "" {
		opts = opts.WithBaseURL(c.BaseURL)
	}
	if c.Model != "" {
		opts = opts.WithModel(c.Model)
	}
	if c.InputType != "" {
		opts = opts.WithInputType(c.InputType)
	}
	if c.OutputDimension > 0 {
		opts = opts.WithOutputDimension(c.OutputDimension)
	}
	if c.OutputDtype != "" {
		opts = opts.WithOutputDtype(c.OutputDtype)
	}
	if c.EncodingFormat != "" {
		opts = opts.WithEncodingFormat(c.EncodingFormat)
	}
	if c.TimeoutSeconds > 0 {
		opts = opts.WithTimeout(time.Duration(c.TimeoutSeconds) * time.Second)
	}
	if c.RetryDelayMs > 0 {
		opts = opts.WithRetryDelay(time.Duration(c.RetryDelayMs) * time.Millisecond)
	}
	opts = opts.WithTruncation(c.Truncation)
	opts = opts.WithMaxRetries(c.MaxRetries)
	return opts
}

// Load loads configuration from file and environment variables
func Load() (*Config, error) {
	// Set defaults
	setDefaults()

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}

	// Override with environment variables if present
	overrideWithEnv(config)

	return config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	// Embedding defaults
	viper.SetDefault("embedding.provider", "voyageai")
	viper.SetDefault("embedding.model", voyage.DefaultModel)
	viper.SetDefault("embedding.base_url", voyage.DefaultBaseURL)
	viper.SetDefault("embedding.truncation", true)
	viper.SetDefault("embedding.timeout", 30)
	viper.SetDefault("embedding.max_retries", voyage.DefaultMaxRetries)
	viper.SetDefault("embedding.retry_delay_ms", 1000)

	// Circuit breaker defaults
	viper.SetDefault("circuit_breaker.enabled", false)
	viper.SetDefault("circuit_breaker.max_requests", 1)
	viper.SetDefault("circuit_breaker.interval", 60)
	viper.SetDefault("circuit_breaker.timeout", 30)
	viper.SetDefault("circuit_breaker.ready_to_trip_ratio", 0.6)
}

// overrideWithEnv overrides config with environment variables
func overrideWithEnv(config *Config) {
	if apiKey := os.Getenv("VOYAGE_API_KEY"); apiKey != "" {
		config.Embedding.APIKey = apiKey
	}
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" && config.Embedding.Provider == "openai" {
		config.Embedding.APIKey = apiKey
	}
	if baseURL := os.Getenv("VOYAGE_BASE_URL"); baseURL != "" {
		config.Embedding.BaseURL = baseURL
	}
	if model := os.Getenv("VOYAGE_MODEL"); model != "" {
		config.Embedding.Model = model
	}
	if dim := os.Getenv("VOYAGE_OUTPUT_DIMENSION"); dim != "" {
		if n, err := strconv.Atoi(dim); err == nil {
			config.Embedding.OutputDimension = n
		}
	}
}
