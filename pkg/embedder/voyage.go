package embedder

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	voyage "github.com/soundprediction/go-voyage"
)

// voyageModelDimensions maps known Voyage model names to their default
// embedding dimension.
var voyageModelDimensions = map[string]int{
	"voyage-3.5":       1024,
	"voyage-3.5-lite":  1024,
	"voyage-3-large":   1024,
	"voyage-code-3":    1024,
	"voyage-finance-2": 1024,
	"voyage-law-2":     1024,
	"voyage-large-2":   1536,
	"voyage-code-2":    1536,
	"voyage-2":         1024,
}

// Usage holds aggregate token accounting for one embedding call. The
// Voyage API reports only a total; input tokens carry the same value.
type Usage struct {
	InputTokens int `json:"input_tokens"`
	TotalTokens int `json:"total_tokens"`
}

// VoyageEmbedder implements the Client interface for the Voyage AI API.
// It validates caller input, delegates to the transport client, and
// adapts the wire response into plain float32 vectors in input order.
//
// A VoyageEmbedder is stateless between calls and safe for concurrent use.
type VoyageEmbedder struct {
	client *voyage.Client
	config Config
}

// NewVoyageEmbedder creates a new Voyage AI embedder.
func NewVoyageEmbedder(apiKey string, config Config) (*VoyageEmbedder, error) {
	opts := voyage.NewOptions(apiKey)
	if config.Model != "" {
		opts = opts.WithModel(config.Model)
	}
	if config.BaseURL != "" {
		opts = opts.WithBaseURL(config.BaseURL)
	}
	if config.Dimensions > 0 {
		opts = opts.WithOutputDimension(config.Dimensions)
	}
	if config.InputType != "" {
		opts = opts.WithInputType(config.InputType)
	}

	client, err := voyage.NewClient(opts, slog.Default())
	if err != nil {
		return nil, fmt.Errorf("creating voyage client: %w", err)
	}
	return &VoyageEmbedder{client: client, config: config}, nil
}

// NewVoyageEmbedderWithOptions creates an embedder from a fully built
// Options value, for callers that need transport-level settings such as
// retry counts or encoding format.
func NewVoyageEmbedderWithOptions(opts *voyage.Options) (*VoyageEmbedder, error) {
	client, err := voyage.NewClient(opts, slog.Default())
	if err != nil {
		return nil, fmt.Errorf("creating voyage client: %w", err)
	}
	cfg := Config{
		Model:      opts.Model,
		BaseURL:    opts.BaseURL,
		Dimensions: opts.OutputDimension,
		InputType:  opts.InputType,
	}
	return &VoyageEmbedder{client: client, config: cfg}, nil
}

// Embed generates embeddings for the given texts.
func (e *VoyageEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	vectors, _, err := e.EmbedWithUsage(ctx, texts)
	return vectors, err
}

// EmbedWithUsage generates embeddings for the given texts and reports the
// token usage of the call.
//
// An empty batch short-circuits to an empty result without any network
// call. A batch containing an empty string fails before any HTTP request
// is issued. The response entries are re-sorted by their index field, so
// the result order always matches the input order regardless of the order
// in which the API returned them.
func (e *VoyageEmbedder) EmbedWithUsage(ctx context.Context, texts []string) ([][]float32, *Usage, error) {
	if len(texts) == 0 {
		return [][]float32{}, &Usage{}, nil
	}
	for i, text := range texts {
		if text == "" {
			return nil, nil, voyage.NewInvalidArgumentError(fmt.Sprintf("text at index %d is empty", i))
		}
	}

	opts := e.client.Options()
	resp, err := e.client.CreateEmbeddings(ctx, &voyage.EmbeddingRequest{
		Input:           texts,
		Model:           opts.Model,
		InputType:       opts.InputType,
		Truncation:      opts.Truncation,
		OutputDimension: opts.OutputDimension,
		OutputDtype:     opts.OutputDtype,
		EncodingFormat:  opts.EncodingFormat,
	})
	if err != nil {
		return nil, nil, err
	}
	if len(resp.Data) != len(texts) {
		return nil, nil, voyage.NewDeserializationError(
			fmt.Sprintf("expected %d embeddings, got %d", len(texts), len(resp.Data)), nil)
	}

	// The API's result order is not trusted to match the request order.
	data := make([]voyage.EmbeddingData, len(resp.Data))
	copy(data, resp.Data)
	sort.Slice(data, func(i, j int) bool { return data[i].Index < data[j].Index })

	vectors := make([][]float32, 0, len(data))
	for _, d := range data {
		vec, err := d.Embedding.Floats()
		if err != nil {
			return nil, nil, err
		}
		vectors = append(vectors, vec)
	}

	usage := &Usage{
		InputTokens: resp.Usage.TotalTokens,
		TotalTokens: resp.Usage.TotalTokens,
	}
	return vectors, usage, nil
}

// EmbedSingle generates an embedding for a single text.
func (e *VoyageEmbedder) EmbedSingle(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) != 1 {
		return nil, voyage.NewDeserializationError(fmt.Sprintf("expected 1 embedding, got %d", len(vectors)), nil)
	}
	return vectors[0], nil
}

// Dimensions returns the number of dimensions in the embeddings.
func (e *VoyageEmbedder) Dimensions() int {
	if e.config.Dimensions > 0 {
		return e.config.Dimensions
	}
	if dim, ok := voyageModelDimensions[e.client.Options().Model]; ok {
		return dim
	}
	return 1024
}

// ModelInfo returns the provider identity and model name behind this
// embedder.
func (e *VoyageEmbedder) ModelInfo() ModelInfo {
	return ModelInfo{Provider: "voyageai", Model: e.client.Options().Model}
}

// Options returns the shared transport configuration, read-only.
func (e *VoyageEmbedder) Options() *voyage.Options {
	return e.client.Options()
}

// GetCapabilities returns the list of capabilities supported by this client.
func (e *VoyageEmbedder) GetCapabilities() []TaskCapability {
	return []TaskCapability{TaskEmbedding}
}

// Close is a no-op; the embedder holds no resources beyond the shared
// HTTP transport.
func (e *VoyageEmbedder) Close() error {
	return nil
}
