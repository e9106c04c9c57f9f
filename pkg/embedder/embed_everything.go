package embedder

import (
	"context"
	"fmt"

	ee "github.com/soundprediction/go-embedeverything/pkg/embedder"
)

// EmbedEverythingClient implements the Client interface using a local
// in-process embedding model, for workloads that must not leave the host.
type EmbedEverythingClient struct {
	client *ee.Embedder
	config Config
}

// NewEmbedEverythingClient creates a new local embedder for the
// configured model.
func NewEmbedEverythingClient(config Config) (*EmbedEverythingClient, error) {
	client, err := ee.NewEmbedder(config.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}
	return &EmbedEverythingClient{client: client, config: config}, nil
}

// Embed generates embeddings for the given texts.
func (e *EmbedEverythingClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	// go-embedeverything does not support context yet
	embeddings, err := e.client.Embed(texts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embeddings: %w", err)
	}
	return embeddings, nil
}

// EmbedSingle generates an embedding for a single text.
func (e *EmbedEverythingClient) EmbedSingle(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := e.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}
	return embeddings[0], nil
}

// Dimensions returns the number of dimensions in the embeddings.
func (e *EmbedEverythingClient) Dimensions() int {
	return e.config.Dimensions
}

// ModelInfo returns the provider identity and model name behind this
// embedder.
func (e *EmbedEverythingClient) ModelInfo() ModelInfo {
	return ModelInfo{Provider: "embedeverything", Model: e.config.Model}
}

// GetCapabilities returns the list of capabilities supported by this client.
func (e *EmbedEverythingClient) GetCapabilities() []TaskCapability {
	return []TaskCapability{TaskEmbedding}
}

// Close cleans up any resources.
func (e *EmbedEverythingClient) Close() error {
	e.client.Close()
	return nil
}
