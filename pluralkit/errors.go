package pluralkit

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the PluralKit client.
var (
	// ErrNotAuthorized is returned before any network call when an
	// endpoint requires a token the client was not constructed with.
	ErrNotAuthorized = errors.New("operation requires an authorization token")

	// ErrClientClosed is returned when a call is made after Close.
	ErrClientClosed = errors.New("pluralkit client is closed")
)

// ErrorDetail is a field-level validation error reported by the API.
type ErrorDetail struct {
	Message      string `json:"message"`
	MaxLength    *int   `json:"max_length,omitempty"`
	ActualLength *int   `json:"actual_length,omitempty"`
}

// APIError is a structured error response from the API. StatusCode always
// mirrors the transport status; Code is the API's own error code from the
// response body.
type APIError struct {
	StatusCode int           `json:"http_code"`
	Code       int           `json:"code"`
	Message    string        `json:"message"`
	Errors     []ErrorDetail `json:"errors,omitempty"`
	RetryAfter *int          `json:"retry_after,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("pluralkit: error %d: %s (HTTP %d)", e.Code, e.Message, e.StatusCode)
}

// IsNotFound reports whether the error indicates a missing resource.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether the error indicates an authentication
// or permission failure.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsRateLimited reports whether the remote rejected the request for rate
// limiting reasons. The API's retry_after value is not dependable and the
// client never waits on it.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// HTTPError is a failing response that carried no usable error body. Only
// the transport status is known.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("pluralkit: HTTP %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// DecodeError is a response body that did not conform to its schema.
type DecodeError struct {
	Schema string
	Field  string
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	msg := "pluralkit: decoding " + e.Schema
	if e.Field != "" {
		msg += "." + e.Field
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err represents a 404 from the API, with or
// without a structured error body.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.IsNotFound()
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == http.StatusNotFound
	}
	return false
}

// Error response schemas. The 400/401/403/404 schemas pin a default
// http_code; classify always overwrites it with the transport status.
var (
	errorDetailSchema = &Schema{
		Name: "ErrorDetail",
		Fields: []Field{
			{Name: "message", Kind: KindString, Required: true},
			{Name: "max_length", Kind: KindInt},
			{Name: "actual_length", Kind: KindInt},
		},
	}

	errorResponseSchema = errorSchema("ErrorResponse", 0)

	errorSchemasByStatus = map[int]*Schema{
		http.StatusBadRequest:   errorSchema("BadRequest", http.StatusBadRequest),
		http.StatusUnauthorized: errorSchema("Unauthorized", http.StatusUnauthorized),
		http.StatusForbidden:    errorSchema("Forbidden", http.StatusForbidden),
		http.StatusNotFound:     errorSchema("NotFound", http.StatusNotFound),
	}
)

func errorSchema(name string, httpCode int) *Schema {
	s := &Schema{
		Name: name,
		Fields: []Field{
			{Name: "code", Kind: KindInt, Required: true},
			{Name: "message", Kind: KindString, Required: true},
			{Name: "http_code", Kind: KindInt, Required: true},
			{Name: "errors", Kind: KindList, Elem: errorDetailSchema},
			{Name: "retry_after", Kind: KindInt},
		},
	}
	if httpCode != 0 {
		s.Defaults = map[string]any{"http_code": httpCode}
	}
	return s
}

// classify maps a failing response to a typed error. A non-empty body is
// decoded with the error schema for the status; bodies that are not valid
// error JSON degrade to a bare *HTTPError carrying the status.
func classify(status int, body []byte) error {
	if len(body) == 0 {
		return &HTTPError{StatusCode: status}
	}
	schema, ok := errorSchemasByStatus[status]
	if !ok {
		schema = errorResponseSchema
	}
	raw, err := parseObject(body)
	if err != nil {
		return &HTTPError{StatusCode: status}
	}
	// the body's own code is an API code; the transport status wins
	raw["http_code"] = status
	apiErr, err := decodeRecord[APIError](raw, schema, nil)
	if err != nil {
		return &HTTPError{StatusCode: status}
	}
	return apiErr
}
