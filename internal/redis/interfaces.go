package redis

import "context"

// ResponseStoreInterface defines the operations used for idempotent replay.
type ResponseStoreInterface interface {
	Get(ctx context.Context, key string) (*CachedResponse, error)
	Set(ctx context.Context, key string, resp *CachedResponse) error
}

// Ensure concrete types implement interfaces.
var _ ResponseStoreInterface = (*ResponseStore)(nil)
