package ports

import (
	"context"
	"time"
)

// SessionRevoker records signed-out token IDs until the tokens would have
// expired on their own.
type SessionRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
