package service

import (
	"context"
	"time"
)

// SessionRevoker records token IDs invalidated before their natural expiry.
// Deployments without Redis run with a no-op revoker: revocation is then
// by expiry or secret rotation only.
type SessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
