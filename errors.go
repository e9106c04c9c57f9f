package voyage

import "fmt"

// InvalidArgumentError indicates bad caller input, such as an empty text
// or an absent request. It is never retried.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	if e.Message == "" {
		return "invalid argument"
	}
	return "invalid argument: " + e.Message
}

// Is implements errors.Is support for InvalidArgumentError.
// This allows errors.Is(err, &InvalidArgumentError{}) to work with wrapped errors.
func (e *InvalidArgumentError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentError)
	return ok
}

// NewInvalidArgumentError creates a new invalid argument error
func NewInvalidArgumentError(message string) *InvalidArgumentError {
	return &InvalidArgumentError{Message: message}
}

// TransportError represents a non-2xx HTTP response, either immediately
// for non-retryable status codes or after the retry budget is exhausted.
type TransportError struct {
	// StatusCode is the HTTP status code of the final response
	StatusCode int
	// Detail is the error message extracted from the response body
	Detail string
	// URL is the request URL
	URL string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("embeddings request to %s failed with status %d: %s", e.URL, e.StatusCode, e.Detail)
}

// Is implements errors.Is support for TransportError.
// This allows errors.Is(err, &TransportError{}) to work with wrapped errors.
func (e *TransportError) Is(target error) bool {
	_, ok := target.(*TransportError)
	return ok
}

// NewTransportError creates a new transport error
func NewTransportError(statusCode int, detail, url string) *TransportError {
	return &TransportError{StatusCode: statusCode, Detail: detail, URL: url}
}

// DeserializationError indicates a success response whose body could not
// be parsed. Retrying cannot fix a malformed response shape, so it is
// surfaced immediately.
type DeserializationError struct {
	Message string
	Cause   error
}

func (e *DeserializationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("deserializing response: %s: %v", e.Message, e.Cause)
	}
	return "deserializing response: " + e.Message
}

func (e *DeserializationError) Unwrap() error { return e.Cause }

// Is implements errors.Is support for DeserializationError.
func (e *DeserializationError) Is(target error) bool {
	_, ok := target.(*DeserializationError)
	return ok
}

// NewDeserializationError creates a new deserialization error
func NewDeserializationError(message string, cause error) *DeserializationError {
	return &DeserializationError{Message: message, Cause: cause}
}

// DecodingError indicates an embedding payload that could not be decoded
// into a float32 vector: an unsupported JSON shape, a non-numeric array
// element, or a corrupt base64 buffer.
type DecodingError struct {
	Message string
}

func (e *DecodingError) Error() string {
	return "decoding embedding: " + e.Message
}

// Is implements errors.Is support for DecodingError.
func (e *DecodingError) Is(target error) bool {
	_, ok := target.(*DecodingError)
	return ok
}

// NewDecodingError creates a new decoding error
func NewDecodingError(message string) *DecodingError {
	return &DecodingError{Message: message}
}
