package cache

import "context"

// Store is the persistent tier: a plain key/value blob store. Entries placed
// here are treated as valid until explicitly refreshed or deleted; there is
// no freshness check on read. The DynamoDB repository implements it.
type Store interface {
	// Get returns the stored payload, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	// DeletePrefix removes every entry whose key starts with prefix.
	DeletePrefix(ctx context.Context, prefix string) error
	PurgeAll(ctx context.Context) error
}
