// Package storage defines the Storage interface: the contract any
// registration store backend must satisfy.
//
// Handlers depend only on this interface, never on a concrete database,
// so tests can pass an in-memory fake and main can pick the backend.
//
// The store trusts its caller. Non-empty name and email are enforced at
// the validation boundary, not here.
package storage

import (
	"context"

	"github.com/aanand-mishra/registration-form/internal/types"
)

// Storage is the registration store contract.
type Storage interface {
	// CreateRegistration persists a new record built from the Name and
	// Email of reg. The store assigns the ID and creation time. Any
	// storage-layer failure is returned to the caller unchanged in
	// meaning (wrapped, never swallowed).
	CreateRegistration(ctx context.Context, reg types.Registration) error

	// GetRegistrations returns every persisted record in insertion
	// order. Returns an empty slice (not nil) when there are none.
	GetRegistrations(ctx context.Context) ([]types.Registration, error)
}
