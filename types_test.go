package voyage

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func packFloats(values []float32) string {
	buf := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return base64.StdEncoding.EncodeToString(buf)
}

func TestEmbeddingRequestMarshal(t *testing.T) {
	tests := []struct {
		name      string
		input     []string
		wantInput string
	}{
		{
			name:      "single text as bare string",
			input:     []string{"hello"},
			wantInput: `"hello"`,
		},
		{
			name:      "multiple texts as array",
			input:     []string{"a", "b"},
			wantInput: `["a","b"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(EmbeddingRequest{Input: tt.input, Model: "voyage-3.5"})
			require.NoError(t, err)

			var raw map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(data, &raw))
			assert.JSONEq(t, tt.wantInput, string(raw["input"]))
		})
	}
}

func TestEmbeddingRequestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		req  EmbeddingRequest
	}{
		{
			name: "single input",
			req: EmbeddingRequest{
				Input:      []string{"one"},
				Model:      "voyage-3.5",
				InputType:  InputTypeDocument,
				Truncation: true,
			},
		},
		{
			name: "batch with options",
			req: EmbeddingRequest{
				Input:           []string{"one", "two", "three"},
				Model:           "voyage-3.5",
				InputType:       InputTypeQuery,
				OutputDimension: 512,
				OutputDtype:     OutputDtypeFloat,
				EncodingFormat:  EncodingFormatBase64,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.req)
			require.NoError(t, err)

			var got EmbeddingRequest
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, tt.req, got)
		})
	}
}

func TestEmbeddingRequestUnmarshalRejectsBadInput(t *testing.T) {
	var req EmbeddingRequest
	err := json.Unmarshal([]byte(`{"input": 42, "model": "m"}`), &req)
	assert.Error(t, err)
}

func TestEmbeddingFloatsArrayAndBase64Agree(t *testing.T) {
	want := []float32{1.0, 2.0, 3.0}

	var fromArray Embedding
	require.NoError(t, json.Unmarshal([]byte(`[1.0, 2.0, 3.0]`), &fromArray))

	var fromBase64 Embedding
	encoded, err := json.Marshal(packFloats(want))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(encoded, &fromBase64))

	arrayVec, err := fromArray.Floats()
	require.NoError(t, err)
	base64Vec, err := fromBase64.Floats()
	require.NoError(t, err)

	assert.Equal(t, want, arrayVec)
	assert.Equal(t, want, base64Vec)
}

func TestEmbeddingFloatsDecodingErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{
			name:    "non-numeric array element",
			payload: `[1.0, "oops", 3.0]`,
		},
		{
			name:    "empty base64 string",
			payload: `""`,
		},
		{
			name:    "corrupt base64",
			payload: `"!!!not-base64!!!"`,
		},
		{
			name:    "truncated packed buffer",
			payload: `"` + base64.StdEncoding.EncodeToString([]byte{1, 2, 3}) + `"`,
		},
		{
			name:    "object payload",
			payload: `{"values": [1, 2]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Embedding
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &e), "shape errors surface at decode time, not parse time")

			_, err := e.Floats()
			require.Error(t, err)
			assert.True(t, errors.Is(err, &DecodingError{}), "got %v", err)
		})
	}
}

func TestEmbeddingResponseParse(t *testing.T) {
	body := `{
		"object": "list",
		"data": [
			{"object": "embedding", "embedding": "` + packFloats([]float32{0.5, -0.5}) + `", "index": 1},
			{"object": "embedding", "embedding": [1.5, 2.5], "index": 0}
		],
		"model": "voyage-3.5",
		"usage": {"total_tokens": 12}
	}`

	var resp EmbeddingResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, 12, resp.Usage.TotalTokens)

	// Mixed encodings within one response decode independently.
	first, err := resp.Data[0].Embedding.Floats()
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, -0.5}, first)
	assert.Equal(t, 1, resp.Data[0].Index)

	second, err := resp.Data[1].Embedding.Floats()
	require.NoError(t, err)
	assert.Equal(t, []float32{1.5, 2.5}, second)
}

func TestNewFloatEmbedding(t *testing.T) {
	e := NewFloatEmbedding([]float32{1, 2})
	vec, err := e.Floats()
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2}, vec)

	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 2]`, string(data))
}

func TestNewBase64Embedding(t *testing.T) {
	e := NewBase64Embedding(packFloats([]float32{4, 5}))
	vec, err := e.Floats()
	require.NoError(t, err)
	assert.Equal(t, []float32{4, 5}, vec)
}
