package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	voyage "github.com/soundprediction/go-voyage"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("VOYAGE_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("VOYAGE_BASE_URL", "")
	t.Setenv("VOYAGE_MODEL", "")
	t.Setenv("VOYAGE_OUTPUT_DIMENSION", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)

	assert.Equal(t, "voyageai", cfg.Embedding.Provider)
	assert.Equal(t, voyage.DefaultModel, cfg.Embedding.Model)
	assert.Equal(t, voyage.DefaultBaseURL, cfg.Embedding.BaseURL)
	assert.True(t, cfg.Embedding.Truncation)
	assert.Equal(t, 30, cfg.Embedding.TimeoutSeconds)
	assert.Equal(t, voyage.DefaultMaxRetries, cfg.Embedding.MaxRetries)
	assert.Equal(t, 1000, cfg.Embedding.RetryDelayMs)

	assert.False(t, cfg.CircuitBreaker.Enabled)
	assert.Equal(t, uint32(1), cfg.CircuitBreaker.MaxRequests)
	assert.Equal(t, 60, cfg.CircuitBreaker.Interval)
	assert.Equal(t, 30, cfg.CircuitBreaker.Timeout)
	assert.InDelta(t, 0.6, cfg.CircuitBreaker.ReadyToTripRatio, 1e-9)
}

func TestLoadEnvOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("VOYAGE_API_KEY", "env-key")
	t.Setenv("VOYAGE_BASE_URL", "http://localhost:9999/v1")
	t.Setenv("VOYAGE_MODEL", "voyage-code-3")
	t.Setenv("VOYAGE_OUTPUT_DIMENSION", "512")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Embedding.APIKey)
	assert.Equal(t, "http://localhost:9999/v1", cfg.Embedding.BaseURL)
	assert.Equal(t, "voyage-code-3", cfg.Embedding.Model)
	assert.Equal(t, 512, cfg.Embedding.OutputDimension)
}

func TestOpenAIKeyOnlyForOpenAIProvider(t *testing.T) {
	viper.Reset()
	t.Setenv("VOYAGE_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "openai-key")
	t.Setenv("VOYAGE_BASE_URL", "")
	t.Setenv("VOYAGE_MODEL", "")
	t.Setenv("VOYAGE_OUTPUT_DIMENSION", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Embedding.APIKey, "an openai key must not apply to the voyageai provider")

	viper.Reset()
	viper.Set("embedding.provider", "openai")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "openai-key", cfg.Embedding.APIKey)
}

func TestEmbeddingConfigOptions(t *testing.T) {
	cfg := EmbeddingConfig{
		Provider:        "voyageai",
		Model:           "voyage-3.5-lite",
		APIKey:          "test-key",
		BaseURL:         "http://localhost:8080/v1",
		InputType:       "document",
		Truncation:      false,
		OutputDimension: 256,
		OutputDtype:     "float",
		EncodingFormat:  "base64",
		TimeoutSeconds:  10,
		MaxRetries:      5,
		RetryDelayMs:    250,
	}

	opts := cfg.Options()
	require.NoError(t, opts.Validate())

	assert.Equal(t, "test-key", opts.APIKey)
	assert.Equal(t, "http://localhost:8080/v1", opts.BaseURL)
	assert.Equal(t, "voyage-3.5-lite", opts.Model)
	assert.Equal(t, "document", opts.InputType)
	assert.False(t, opts.Truncation)
	assert.Equal(t, 256, opts.OutputDimension)
	assert.Equal(t, "float", opts.OutputDtype)
	assert.Equal(t, "base64", opts.EncodingFormat)
	assert.Equal(t, 10*time.Second, opts.Timeout)
	assert.Equal(t, 5, opts.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, opts.RetryDelay)
}

func TestEmbeddingConfigOptionsDefaults(t *testing.T) {
	cfg := EmbeddingConfig{APIKey: "test-key", Truncation: true, MaxRetries: voyage.DefaultMaxRetries}
	opts := cfg.Options()
	require.NoError(t, opts.Validate())

	assert.Equal(t, voyage.DefaultBaseURL, opts.BaseURL)
	assert.Equal(t, voyage.DefaultModel, opts.Model)
	assert.Equal(t, voyage.DefaultTimeout, opts.Timeout)
	assert.Equal(t, voyage.DefaultRetryDelay, opts.RetryDelay)
}
