// Package contextkeys provides centralized context key definitions.
//
// All context keys used across the service must be defined here. This
// prevents typos, documents dependencies between middleware and handlers, and
// makes key usage discoverable.
package contextkeys

import (
	"context"

	"github.com/vendascope/vendascope/pkg/scope"
)

// Key is the type for context keys to prevent collisions.
type Key string

const (
	// ScopeKey contains the request's derived scope.UserScope.
	// Set by: middleware.ScopeContext
	// Required by: route-permission middleware, authorization handlers
	ScopeKey Key = "user_scope"

	// RequestIDKey contains the request ID string (UUID).
	// Set by: middleware.RequestID
	// Used by: logging, error responses
	RequestIDKey Key = "request_id"
)

// WithScope adds the derived user scope to the context.
func WithScope(ctx context.Context, s scope.UserScope) context.Context {
	return context.WithValue(ctx, ScopeKey, s)
}

// ScopeFrom extracts the user scope from the context. The second return is
// false when no scope middleware ran for this request.
func ScopeFrom(ctx context.Context) (scope.UserScope, bool) {
	s, ok := ctx.Value(ScopeKey).(scope.UserScope)
	return s, ok
}

// WithRequestID adds the request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// RequestIDFrom extracts the request ID from the context, or "" when absent.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
