package assembler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"document-workers/internal/common/logger"
	"document-workers/internal/models"
)

// CachedStore is a read-through Redis cache in front of another Store.
// Cache failures are logged and fall through to the underlying store.
type CachedStore struct {
	next   Store
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedStore(next Store, client *redis.Client, ttl time.Duration, log logger.Logger) *CachedStore {
	return &CachedStore{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "record-cache"}),
	}
}

func cacheKey(kind models.RecordKind, id string) string {
	return fmt.Sprintf("document:record:%s:%s", kind, id)
}

func (c *CachedStore) Get(ctx context.Context, kind models.RecordKind, id string, dest interface{}) error {
	key := cacheKey(kind, id)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(raw, dest); jsonErr == nil {
			return nil
		}
		c.logger.Warn("discarding undecodable cache entry", map[string]interface{}{"key": key})
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warn("cache read failed", map[string]interface{}{"key": key, "error": err})
	}

	if err := c.next.Get(ctx, kind, id, dest); err != nil {
		return err
	}

	encoded, err := json.Marshal(dest)
	if err != nil {
		return nil
	}
	if err := c.client.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", map[string]interface{}{"key": key, "error": err})
	}
	return nil
}
