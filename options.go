package voyage

import (
	"fmt"
	"time"
)

// Input type hints telling the model whether text is a search query or an
// indexed document, to optimize vector geometry for retrieval.
const (
	// InputTypeQuery marks text as a search query.
	InputTypeQuery = "query"
	// InputTypeDocument marks text as an indexed document.
	InputTypeDocument = "document"
)

// Output data types supported by the API.
const (
	OutputDtypeFloat   = "float"
	OutputDtypeInt8    = "int8"
	OutputDtypeUint8   = "uint8"
	OutputDtypeBinary  = "binary"
	OutputDtypeUbinary = "ubinary"
)

// EncodingFormatBase64 requests embeddings as base64-encoded little-endian
// packed float buffers instead of plain numeric arrays.
const EncodingFormatBase64 = "base64"

// Default configuration values
const (
	DefaultBaseURL    = "https://api.voyageai.com/v1"
	DefaultModel      = "voyage-3.5"
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = 1 * time.Second
)

// supportedOutputDimensions is the set of values accepted for
// Options.OutputDimension. Zero means the model default.
var supportedOutputDimensions = map[int]bool{
	256:  true,
	512:  true,
	1024: true,
	2048: true,
}

// Options holds shared configuration for the Voyage AI client.
// An Options value is constructed once at startup, handed to NewClient,
// and read concurrently by every request afterwards; it must not be
// mutated once the client is built.
type Options struct {
	// APIKey is the authentication key for the Voyage AI API.
	// Excluded from JSON serialization to prevent accidental exposure in logs/responses.
	APIKey string `json:"-"`

	// BaseURL is the base URL of the embeddings API service
	BaseURL string `json:"base_url,omitempty"`

	// Model is the embedding model to use for generating vectors
	Model string `json:"model,omitempty"`

	// InputType is an optional retrieval hint: InputTypeQuery, InputTypeDocument, or empty
	InputType string `json:"input_type,omitempty"`

	// Truncation controls whether over-length inputs are truncated by the
	// model rather than rejected
	Truncation bool `json:"truncation"`

	// OutputDimension is the requested vector length; zero uses the model default
	OutputDimension int `json:"output_dimension,omitempty"`

	// OutputDtype is the numeric type of the returned vectors
	OutputDtype string `json:"output_dtype,omitempty"`

	// EncodingFormat selects the wire encoding of embedding payloads;
	// empty means plain numeric arrays
	EncodingFormat string `json:"encoding_format,omitempty"`

	// Timeout is the HTTP timeout applied to each individual attempt
	Timeout time.Duration `json:"timeout,omitempty"`

	// MaxRetries is the number of additional attempts after the first
	MaxRetries int `json:"max_retries,omitempty"`

	// RetryDelay is the base backoff delay; attempt n waits RetryDelay * n
	RetryDelay time.Duration `json:"retry_delay,omitempty"`
}

// NewOptions creates a new Options with default values.
func NewOptions(apiKey string) *Options {
	return &Options{
		APIKey:     apiKey,
		BaseURL:    DefaultBaseURL,
		Model:      DefaultModel,
		Truncation: true,
		Timeout:    DefaultTimeout,
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// WithBaseURL sets the base URL
func (o *Options) WithBaseURL(baseURL string) *Options {
	o.BaseURL = baseURL
	return o
}

// WithModel sets the model
func (o *Options) WithModel(model string) *Options {
	o.Model = model
	return o
}

// WithInputType sets the input type hint
func (o *Options) WithInputType(inputType string) *Options {
	o.InputType = inputType
	return o
}

// WithTruncation sets the truncation flag
func (o *Options) WithTruncation(truncation bool) *Options {
	o.Truncation = truncation
	return o
}

// WithOutputDimension sets the requested output dimensionality
func (o *Options) WithOutputDimension(dimension int) *Options {
	o.OutputDimension = dimension
	return o
}

// WithOutputDtype sets the output numeric type
func (o *Options) WithOutputDtype(dtype string) *Options {
	o.OutputDtype = dtype
	return o
}

// WithEncodingFormat sets the embedding wire encoding
func (o *Options) WithEncodingFormat(format string) *Options {
	o.EncodingFormat = format
	return o
}

// WithTimeout sets the per-attempt HTTP timeout
func (o *Options) WithTimeout(timeout time.Duration) *Options {
	o.Timeout = timeout
	return o
}

// WithMaxRetries sets the retry ceiling
func (o *Options) WithMaxRetries(maxRetries int) *Options {
	o.MaxRetries = maxRetries
	return o
}

// WithRetryDelay sets the base backoff delay
func (o *Options) WithRetryDelay(delay time.Duration) *Options {
	o.RetryDelay = delay
	return o
}

// Validate checks that the options are usable for building a client.
func (o *Options) Validate() error {
	if o.APIKey == "" {
		return NewInvalidArgumentError("API key is required")
	}
	if o.BaseURL == "" {
		return NewInvalidArgumentError("base URL is required")
	}
	if o.Model == "" {
		return NewInvalidArgumentError("model is required")
	}
	if o.MaxRetries < 0 {
		return NewInvalidArgumentError("max retries must not be negative")
	}
	if o.OutputDimension != 0 && !supportedOutputDimensions[o.OutputDimension] {
		return NewInvalidArgumentError(fmt.Sprintf("unsupported output dimension %d", o.OutputDimension))
	}
	switch o.InputType {
	case "", InputTypeQuery, InputTypeDocument:
	default:
		return NewInvalidArgumentError(fmt.Sprintf("invalid input type %q", o.InputType))
	}
	switch o.EncodingFormat {
	case "", EncodingFormatBase64:
	default:
		return NewInvalidArgumentError(fmt.Sprintf("invalid encoding format %q", o.EncodingFormat))
	}
	return nil
}
