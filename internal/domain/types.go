package domain

import (
	"context"
	"errors"
	"time"
)

// --- Shared Custom Types ---

// JSONB holds free-form JSON objects such as product attributes or raw upstream payloads.
type JSONB map[string]interface{}

// Response is the {success, message, data} envelope used by the storefront API.
// Data may be nil when Success is false; callers must check Success first.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    *T     `json:"data,omitempty"`
}

// Result returns Data, or an *UnsuccessfulError when the envelope reports failure
// or carries no data.
func (r *Response[T]) Result() (*T, error) {
	if r == nil || !r.Success || r.Data == nil {
		msg := ""
		if r != nil {
			msg = r.Message
		}
		return nil, &UnsuccessfulError{Message: msg}
	}
	return r.Data, nil
}

// Value returns Data or the zero value of T.
func (r *Response[T]) Value() T {
	var zero T
	if r == nil || r.Data == nil {
		return zero
	}
	return *r.Data
}

// UnsuccessfulError is a 2xx response whose envelope says success=false.
type UnsuccessfulError struct {
	Message string
}

func (e *UnsuccessfulError) Error() string {
	if e.Message == "" {
		return "request was not successful"
	}
	return e.Message
}

// Paginated mirrors the paginator payload returned by list endpoints.
type Paginated[T any] struct {
	CurrentPage int    `json:"current_page"`
	Data        []T    `json:"data"`
	LastPage    int    `json:"last_page"`
	PerPage     int    `json:"per_page"`
	Total       int    `json:"total"`
	From        int    `json:"from,omitempty"`
	To          int    `json:"to,omitempty"`
	NextPageURL string `json:"next_page_url,omitempty"`
}

// Message is the body of endpoints that only acknowledge an action.
type Message struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// --- Persisted client state ---

// StateStore is the single access point for state persisted on the client
// (cookies in the gateway, memory in tests and tools). Values are opaque strings.
type StateStore interface {
	Get(key string) (string, bool)
	Set(key, value string, ttl time.Duration) error
	Delete(key string) error
}

// TokenStore reads and writes the bearer token attached to authenticated requests.
type TokenStore interface {
	// GetToken returns false when no token is stored or no client storage is available.
	GetToken(ctx context.Context) (string, bool)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

var (
	ErrNoSession           = errors.New("no client state store in context")
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrInvalidQuantity     = errors.New("quantity must be greater than zero")
	ErrInvalidPrice        = errors.New("price must be greater than zero")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrInvalidCoordinates  = errors.New("coordinates out of range")
	ErrQuantityLimit       = errors.New("quantity exceeds the allowed maximum")
	ErrItemNotFound        = errors.New("item not found")
	ErrInvalidProduct      = errors.New("product id is required")
	ErrLocationNotFound    = errors.New("location not found")
	ErrTrackingUnavailable = errors.New("tracking information unavailable")
	ErrStateTooLarge       = errors.New("saved state is too large")
)
