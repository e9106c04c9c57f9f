package embedder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIEmbedder(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		wantDims int
	}{
		{
			name:     "default model",
			config:   Config{},
			wantDims: 1536,
		},
		{
			name:     "large model",
			config:   Config{Model: "text-embedding-3-large"},
			wantDims: 3072,
		},
		{
			name:     "custom dimensions",
			config:   Config{Model: "text-embedding-3-small", Dimensions: 256},
			wantDims: 256,
		},
		{
			name:     "unknown model falls back",
			config:   Config{Model: "some-compatible-model"},
			wantDims: 1536,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emb := NewOpenAIEmbedder("test-key", tt.config)
			assert.Equal(t, tt.wantDims, emb.Dimensions())
			assert.Equal(t, "openai", emb.ModelInfo().Provider)
			assert.Equal(t, []TaskCapability{TaskEmbedding}, emb.GetCapabilities())
		})
	}
}

func TestOpenAIEmbedderDefaults(t *testing.T) {
	emb := NewOpenAIEmbedder("test-key", Config{})
	assert.Equal(t, DefaultOpenAIModel, emb.ModelInfo().Model)
	assert.Equal(t, DefaultOpenAIBatchSize, emb.config.BatchSize)
}

func TestOpenAIEmbedderEmbedBatches(t *testing.T) {
	var batchSizes []int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Input []string `json:"input"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		batchSizes = append(batchSizes, len(req.Input))

		data := make([]map[string]any, 0, len(req.Input))
		for i := range req.Input {
			data = append(data, map[string]any{
				"object":    "embedding",
				"embedding": []float64{float64(i)},
				"index":     i,
			})
		}
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"object": "list",
			"data":   data,
			"model":  "text-embedding-3-small",
			"usage":  map[string]any{"prompt_tokens": 1, "total_tokens": 1},
		}))
	}))
	defer server.Close()

	emb := NewOpenAIEmbedder("test-key", Config{BaseURL: server.URL, BatchSize: 2})
	vectors, err := emb.Embed(context.Background(), []string{"a", "b", "c", "d", "e"})
	require.NoError(t, err)
	assert.Len(t, vectors, 5)
	assert.Equal(t, []int{2, 2, 1}, batchSizes)
}

func TestOpenAIEmbedderEmptyBatch(t *testing.T) {
	emb := NewOpenAIEmbedder("test-key", Config{})
	vectors, err := emb.Embed(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, vectors)
}
