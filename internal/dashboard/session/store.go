// Package session persists per-browser dashboard state between requests.
// State is stored as JSON under an opaque session id carried in a cookie.
package session

import (
	"context"
	"errors"
)

// ErrInvalidID is returned for empty session ids.
var ErrInvalidID = errors.New("session: invalid id")

// Store loads and saves session state.
type Store interface {
	// Load decodes the state saved under id into dst. It reports false when
	// no live state exists.
	Load(ctx context.Context, id string, dst any) (bool, error)
	Save(ctx context.Context, id string, v any) error
	Delete(ctx context.Context, id string) error
	// Ping reports whether the backing storage is reachable.
	Ping(ctx context.Context) error
	// Kind names the backend for health output.
	Kind() string
}
