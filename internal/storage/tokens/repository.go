// Package tokens persists the session credential across program restarts.
// The layout is deliberately minimal: a single-table key-value store in
// which only the "token" key is ever written.
package tokens

import "context"

// Repository is a string key-value store for session state.
type Repository interface {
	// Get returns the stored value for key, or "" when absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Clear removes all stored values. Safe to call when already empty.
	Clear(ctx context.Context) error
}

// TokenKey is the only key the session manager uses.
const TokenKey = "token"
