package embedder

import "context"

// TaskCapability represents a capability supported by an embedding client.
type TaskCapability string

const (
	// TaskEmbedding indicates support for dense text embeddings.
	TaskEmbedding TaskCapability = "embedding"
)

// ModelInfo describes the provider and model behind a client, for
// introspection by callers.
type ModelInfo struct {
	// Provider is the provider identity, e.g. "voyageai" or "openai"
	Provider string `json:"provider"`
	// Model is the embedding model name
	Model string `json:"model"`
}

// Client defines the interface for text embedding operations.
type Client interface {
	// Embed generates embeddings for the given texts, one vector per text
	// in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// EmbedSingle generates an embedding for a single text.
	EmbedSingle(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the number of dimensions in the embeddings.
	Dimensions() int

	// GetCapabilities returns the list of capabilities supported by this client.
	GetCapabilities() []TaskCapability

	// Close cleans up any resources.
	Close() error
}

// Config holds common configuration for embedding clients.
type Config struct {
	// Model is the embedding model to use
	Model string `json:"model,omitempty"`

	// BaseURL is a custom base URL for the provider API
	BaseURL string `json:"base_url,omitempty"`

	// Dimensions is the expected or requested vector length; zero uses
	// the model default
	Dimensions int `json:"dimensions,omitempty"`

	// BatchSize is the maximum number of texts per provider request, for
	// providers that batch internally
	BatchSize int `json:"batch_size,omitempty"`

	// InputType is an optional retrieval hint: "query" or "document"
	InputType string `json:"input_type,omitempty"`
}
