// Package session keeps the authenticated identity of a client session in a key-value slot.
package session

import (
	"context"
	"time"
)

// Slot is a key-value entry store. A zero ttl keeps the entry until it is deleted.
type Slot interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
