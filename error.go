package intasend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrInvalidRequest is returned before any network call when a payload fails validation.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrDecodeResponse wraps failures to decode a successful gateway response.
	ErrDecodeResponse = errors.New("decode response")
	// ErrUnexpectedHost rejects absolute URLs that do not belong to the configured gateway host.
	ErrUnexpectedHost = errors.New("unexpected host")
	// ErrNoNextPage is returned by NextPage when a listing has been exhausted.
	ErrNoNextPage = errors.New("no next page")

	// ErrBadRequest covers 400 and 422 responses.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized covers 401 and 403 responses.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound covers 404 responses.
	ErrNotFound = errors.New("not found")
	// ErrRateLimited covers 429 responses.
	ErrRateLimited = errors.New("rate limited")
	// ErrServer covers 5xx responses.
	ErrServer = errors.New("gateway server error")
	// ErrUnexpectedStatus covers any other non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// ErrorDetail is a single error entry reported by the gateway.
type ErrorDetail struct {
	Code   string `json:"code,omitempty"`
	Detail string `json:"detail"`
	Attr   string `json:"attr,omitempty"`
}

// APIError is returned for every non-2xx gateway response.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Type       string
	Errors     []ErrorDetail
	Body       []byte
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("intasend: %s %s: status %d", e.Method, e.Path, e.StatusCode)
	if len(e.Errors) == 0 {
		if body := strings.TrimSpace(string(e.Body)); body != "" {
			if len(body) > 256 {
				body = body[:256] + "..."
			}
			return msg + ": " + body
		}
		return msg
	}
	details := make([]string, 0, len(e.Errors))
	for _, d := range e.Errors {
		switch {
		case d.Attr != "":
			details = append(details, d.Attr+": "+d.Detail)
		default:
			details = append(details, d.Detail)
		}
	}
	return msg + ": " + strings.Join(details, "; ")
}

// Unwrap exposes the sentinel for the status class.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusBadRequest, e.StatusCode == http.StatusUnprocessableEntity:
		return ErrBadRequest
	case e.StatusCode == http.StatusUnauthorized, e.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case e.StatusCode >= 500:
		return ErrServer
	default:
		return ErrUnexpectedStatus
	}
}

// Temporary reports whether repeating the request later could succeed.
func (e *APIError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

type errorEnvelope struct {
	Type   string          `json:"type"`
	Errors []ErrorDetail   `json:"errors"`
	Detail json.RawMessage `json:"detail"`
}

func newAPIError(method, path string, status int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		Method:     method,
		Path:       path,
		Body:       body,
	}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return apiErr
	}
	apiErr.Type = env.Type
	apiErr.Errors = env.Errors
	if len(apiErr.Errors) == 0 && len(env.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(env.Detail, &detail); err == nil {
			apiErr.Errors = []ErrorDetail{{Detail: detail}}
		} else {
			apiErr.Errors = []ErrorDetail{{Detail: string(env.Detail)}}
		}
	}
	return apiErr
}
