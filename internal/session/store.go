package session

import "context"

// Store is a keyed save-slot store. Get reports absence with the bool
// rather than an error; Delete on a missing key is a no-op.
type Store[T any] interface {
	Get(ctx context.Context, id string) (T, bool, error)
	Put(ctx context.Context, id string, v T) error
	Delete(ctx context.Context, id string) error
	NewID() string
}
