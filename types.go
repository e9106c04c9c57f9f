package voyage

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
)

// EmbeddingRequest is the JSON body for the embeddings endpoint.
//
// The wire format accepts the input either as a bare string or as an
// ordered list of strings. A batch of exactly one text serializes as the
// bare-string form; larger batches serialize as an array. Unmarshaling
// accepts both shapes and reconstructs the original batch.
type EmbeddingRequest struct {
	// Input is the ordered batch of texts to embed. Must be non-empty and
	// contain no empty strings.
	Input []string

	// Model is the embedding model identifier
	Model string

	// InputType is an optional retrieval hint: "query", "document", or empty
	InputType string

	// Truncation controls model-side truncation of over-length inputs
	Truncation bool

	// OutputDimension is the requested vector length; zero uses the model default
	OutputDimension int

	// OutputDtype is the numeric type of the returned vectors
	OutputDtype string

	// EncodingFormat selects plain arrays (empty) or "base64" packed buffers
	EncodingFormat string
}

// embeddingRequestWire mirrors EmbeddingRequest with snake_case wire names.
type embeddingRequestWire struct {
	Input           any    `json:"input"`
	Model           string `json:"model"`
	InputType       string `json:"input_type,omitempty"`
	Truncation      bool   `json:"truncation"`
	OutputDimension int    `json:"output_dimension,omitempty"`
	OutputDtype     string `json:"output_dtype,omitempty"`
	EncodingFormat  string `json:"encoding_format,omitempty"`
}

// MarshalJSON implements the single-string/array wire format for Input.
func (r EmbeddingRequest) MarshalJSON() ([]byte, error) {
	w := embeddingRequestWire{
		Model:           r.Model,
		InputType:       r.InputType,
		Truncation:      r.Truncation,
		OutputDimension: r.OutputDimension,
		OutputDtype:     r.OutputDtype,
		EncodingFormat:  r.EncodingFormat,
	}
	if len(r.Input) == 1 {
		w.Input = r.Input[0]
	} else {
		w.Input = r.Input
	}
	return json.Marshal(w)
}

// UnmarshalJSON accepts both the bare-string and the array form of Input.
func (r *EmbeddingRequest) UnmarshalJSON(data []byte) error {
	var w struct {
		Input           json.RawMessage `json:"input"`
		Model           string          `json:"model"`
		InputType       string          `json:"input_type"`
		Truncation      bool            `json:"truncation"`
		OutputDimension int             `json:"output_dimension"`
		OutputDtype     string          `json:"output_dtype"`
		EncodingFormat  string          `json:"encoding_format"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	r.Model = w.Model
	r.InputType = w.InputType
	r.Truncation = w.Truncation
	r.OutputDimension = w.OutputDimension
	r.OutputDtype = w.OutputDtype
	r.EncodingFormat = w.EncodingFormat

	r.Input = nil
	if len(w.Input) == 0 {
		return nil
	}
	var single string
	if err := json.Unmarshal(w.Input, &single); err == nil {
		r.Input = []string{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(w.Input, &many); err != nil {
		return fmt.Errorf("input must be a string or an array of strings: %w", err)
	}
	r.Input = many
	return nil
}

// Usage holds aggregate token counts reported by the API. The API reports
// a single total; it does not separate input from total tokens.
type Usage struct {
	TotalTokens int `json:"total_tokens"`
}

// EmbeddingData is one embedding entry of a response. Index points back
// into the original input batch; entries are not guaranteed to arrive in
// input order.
type EmbeddingData struct {
	Object    string    `json:"object"`
	Embedding Embedding `json:"embedding"`
	Index     int       `json:"index"`
}

// EmbeddingResponse is the JSON body of a successful embeddings call.
type EmbeddingResponse struct {
	Object string          `json:"object"`
	Data   []EmbeddingData `json:"data"`
	Model  string          `json:"model"`
	Usage  Usage           `json:"usage"`
}

type embeddingKind int

const (
	embeddingKindUnknown embeddingKind = iota
	embeddingKindFloats
	embeddingKindBase64
)

// Embedding is the numeric payload of one embedding entry: either a plain
// array of numbers or a base64-encoded little-endian packed float32
// buffer. The representation is chosen by inspecting the observed JSON
// shape, not by the request's encoding-format flag.
type Embedding struct {
	kind   embeddingKind
	floats []float32
	b64    string
	raw    json.RawMessage
}

// NewFloatEmbedding creates an Embedding from a float32 vector.
func NewFloatEmbedding(values []float32) Embedding {
	return Embedding{kind: embeddingKindFloats, floats: values}
}

// NewBase64Embedding creates an Embedding from a base64-encoded
// little-endian packed float32 buffer.
func NewBase64Embedding(encoded string) Embedding {
	return Embedding{kind: embeddingKindBase64, b64: encoded}
}

// UnmarshalJSON records the observed payload shape. Decoding to floats is
// deferred to Floats so a malformed element surfaces as a DecodingError
// rather than failing the whole response parse.
func (e *Embedding) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		e.kind = embeddingKindUnknown
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		e.kind = embeddingKindBase64
		e.b64 = s
	case '[':
		e.kind = embeddingKindFloats
		e.raw = append(json.RawMessage(nil), trimmed...)
	default:
		e.kind = embeddingKindUnknown
		e.raw = append(json.RawMessage(nil), trimmed...)
	}
	return nil
}

// MarshalJSON writes the payload back in its original wire form.
func (e Embedding) MarshalJSON() ([]byte, error) {
	switch e.kind {
	case embeddingKindBase64:
		return json.Marshal(e.b64)
	case embeddingKindFloats:
		if e.raw != nil {
			return e.raw, nil
		}
		return json.Marshal(e.floats)
	default:
		if e.raw != nil {
			return e.raw, nil
		}
		return []byte("null"), nil
	}
}

// Floats decodes the payload to a flat float32 vector.
func (e Embedding) Floats() ([]float32, error) {
	switch e.kind {
	case embeddingKindFloats:
		if e.raw == nil {
			return e.floats, nil
		}
		var values []float64
		if err := json.Unmarshal(e.raw, &values); err != nil {
			return nil, NewDecodingError("embedding array contains a non-numeric element")
		}
		out := make([]float32, len(values))
		for i, v := range values {
			out[i] = float32(v)
		}
		return out, nil
	case embeddingKindBase64:
		if e.b64 == "" {
			return nil, NewDecodingError("empty base64 embedding")
		}
		buf, err := base64.StdEncoding.DecodeString(e.b64)
		if err != nil {
			return nil, NewDecodingError(fmt.Sprintf("invalid base64 embedding: %v", err))
		}
		if len(buf)%4 != 0 {
			return nil, NewDecodingError(fmt.Sprintf("packed embedding has %d bytes, not a multiple of 4", len(buf)))
		}
		out := make([]float32, len(buf)/4)
		for i := range out {
			out[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		}
		return out, nil
	default:
		return nil, NewDecodingError("unsupported embedding payload shape")
	}
}
