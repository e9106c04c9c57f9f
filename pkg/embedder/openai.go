package embedder

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// Default OpenAI embedding settings
const (
	DefaultOpenAIModel     = "text-embedding-3-small"
	DefaultOpenAIBatchSize = 100
)

// openAIModelDimensions maps known OpenAI model names to their default
// embedding dimension.
var openAIModelDimensions = map[string]int{
	"text-embedding-ada-002": 1536,
	"text-embedding-3-small": 1536,
	"text-embedding-3-large": 3072,
}

// OpenAIEmbedder implements the Client interface for OpenAI and
// OpenAI-compatible embedding APIs.
type OpenAIEmbedder struct {
	client     *openai.Client
	config     Config
	dimensions int
}

// NewOpenAIEmbedder creates a new OpenAI embedder.
func NewOpenAIEmbedder(apiKey string, config Config) *OpenAIEmbedder {
	if config.Model == "" {
		config.Model = DefaultOpenAIModel
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultOpenAIBatchSize
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	dims := config.Dimensions
	if dims == 0 {
		if d, ok := openAIModelDimensions[config.Model]; ok {
			dims = d
		} else {
			dims = 1536
		}
	}

	return &OpenAIEmbedder{
		client:     openai.NewClientWithConfig(clientConfig),
		config:     config,
		dimensions: dims,
	}
}

// Embed generates embeddings for the given texts, batching requests
// according to the configured batch size.
func (e *OpenAIEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	vectors := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += e.config.BatchSize {
		end := start + e.config.BatchSize
		if end > len(texts) {
			end = len(texts)
		}

		req := openai.EmbeddingRequest{
			Input: texts[start:end],
			Model: openai.EmbeddingModel(e.config.Model),
		}
		// Only text-embedding-3 models accept a dimensions override.
		if e.config.Dimensions > 0 {
			req.Dimensions = e.config.Dimensions
		}

		resp, err := e.client.CreateEmbeddings(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("openai embeddings failed: %w", err)
		}
		if len(resp.Data) != end-start {
			return nil, fmt.Errorf("expected %d embeddings, got %d", end-start, len(resp.Data))
		}
		for _, d := range resp.Data {
			vectors = append(vectors, d.Embedding)
		}
	}
	return vectors, nil
}

// EmbedSingle generates an embedding for a single text.
func (e *OpenAIEmbedder) EmbedSingle(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}
	return vectors[0], nil
}

// Dimensions returns the number of dimensions in the embeddings.
func (e *OpenAIEmbedder) Dimensions() int {
	return e.dimensions
}

// ModelInfo returns the provider identity and model name behind this
// embedder.
func (e *OpenAIEmbedder) ModelInfo() ModelInfo {
	return ModelInfo{Provider: "openai", Model: e.config.Model}
}

// GetCapabilities returns the list of capabilities supported by this client.
func (e *OpenAIEmbedder) GetCapabilities() []TaskCapability {
	return []TaskCapability{TaskEmbedding}
}

// Close cleans up any resources.
func (e *OpenAIEmbedder) Close() error {
	return nil
}
