// Package audit records metadata about every relayed request. Payloads and
// credentials are never stored.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// Entry is one relayed request.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	RequestID string    `json:"request_id"`
	Caller    string    `json:"caller,omitempty"`
	Method    string    `json:"method"`
	Route     string    `json:"route"`
	Status    int       `json:"status"`
	LatencyMS int64     `json:"latency_ms"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository persists audit entries.
type Repository interface {
	Insert(ctx context.Context, entry Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

// NewEntry stamps an entry with a fresh id and the current time.
func NewEntry(requestID, caller, method, route string, status int, latency time.Duration, err error) Entry {
	e := Entry{
		ID:        uuid.New(),
		RequestID: requestID,
		Caller:    caller,
		Method:    method,
		Route:     route,
		Status:    status,
		LatencyMS: latency.Milliseconds(),
		CreatedAt: time.Now().UTC(),
	}
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

// ClampLimit maps a requested page size onto [1, MaxLimit].
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}
