// Package embedder provides text embedding clients for vector representations.
//
// This package defines the Client interface and provides implementations
// for various embedding providers including Voyage AI, OpenAI, and local
// in-process models.
//
// # Supported Providers
//
// The following embedding providers are supported:
//   - Voyage AI: voyage-3.5, voyage-3.5-lite, voyage-3-large, voyage-code-3
//   - OpenAI: text-embedding-3-small, text-embedding-3-large, text-embedding-ada-002
//   - EmbedEverything: local in-process embedding models
//
// # Usage
//
//	// Create a Voyage AI embedder
//	emb, err := embedder.NewVoyageEmbedder(apiKey, embedder.Config{
//	    Model:     "voyage-3.5",
//	    InputType: "document",
//	})
//
//	// Embed text
//	embeddings, err := emb.Embed(ctx, []string{"hello world"})
//
// # Batch Processing
//
// The Client interface supports batch embedding for efficiency:
//   - Embed(): Embed multiple texts in a single request
//   - EmbedSingle(): Convenience method for single text
//
// The Voyage provider sends a batch as one request; the OpenAI provider
// splits batches according to Config.BatchSize.
//
// # Resilience
//
// The Voyage provider retries transient failures internally (see the root
// voyage package). For failing upstream services, any Client can
// additionally be wrapped with NewCircuitBreakerClient to stop sending
// requests after repeated failures.
package embedder
