// Package voyage provides a Go client for the Voyage AI embeddings API.
//
// The package turns text into fixed-length float32 vectors suitable for
// similarity search, and handles the transport mechanics of doing so
// reliably: request construction, bounded retries with linear backoff,
// and decoding of both plain-array and base64-packed embedding payloads.
//
// # Basic Usage
//
// Create a client from an immutable Options value:
//
//	opts := voyage.NewOptions(os.Getenv("VOYAGE_API_KEY")).
//		WithModel("voyage-3.5").
//		WithInputType(voyage.InputTypeDocument)
//
//	client, err := voyage.NewClient(opts, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := client.CreateEmbeddings(ctx, &voyage.EmbeddingRequest{
//		Input: []string{"hello world"},
//		Model: opts.Model,
//	})
//
// Most callers should use the higher-level generator in pkg/embedder
// instead, which validates input, re-orders response entries, and decodes
// payloads into vectors:
//
//	emb, err := embedder.NewVoyageEmbedder(apiKey, embedder.Config{
//		Model: "voyage-3.5",
//	})
//	vectors, err := emb.Embed(ctx, []string{"hello", "world"})
//
// # Retries
//
// Each call issues at most MaxRetries+1 HTTP attempts. Rate limiting (429)
// and server-side errors (500, 502, 503, 504) are retried after a linear
// delay of RetryDelay multiplied by the attempt number; network and
// timeout errors are retried the same way. All other failures surface
// immediately. The backoff sleep and in-flight requests are both
// cancellable through the caller's context.
//
// # Error Handling
//
// The package provides typed errors for common scenarios:
//
//   - InvalidArgumentError: bad caller input, never retried
//   - TransportError: non-2xx HTTP response, carries status, detail, and URL
//   - DeserializationError: malformed success payload
//   - DecodingError: unsupported or corrupt embedding payload
//
// # Architecture
//
// The library follows a modular architecture:
//
//   - root package: low-level transport client, wire types, options
//   - pkg/embedder: embedding-generator contract and provider implementations
//   - pkg/config: file and environment configuration loading
//   - pkg/utils: vector math helpers
//
// This design allows the Voyage client to be plugged into vector-store
// pipelines behind the pkg/embedder interface alongside other providers.
package voyage
