// Package middleware provides the HTTP middleware chain of the authorization
// service: request IDs, request logging and metrics, panic recovery, scope
// derivation, the route-permission gate, and per-handler capability guards.
//
// The intended order is Recovery, RequestID, Logging, ScopeContext, then
// RoutePermissions; capability guards wrap individual handlers after that.
// ScopeContext must run before anything that calls contextkeys.ScopeFrom.
package middleware
