package searchinfra

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hireloop/radar/pkg/logx"
	"github.com/hireloop/radar/recruitment/search"
)

// DefaultCacheTTL keeps parsed requirements around long enough for a
// recruiter session reusing the same query.
const DefaultCacheTTL = 30 * time.Minute

// RedisRequirementCache implements search.RequirementCache on Redis.
// Cache failures are logged and treated as misses; the parser always
// has a deterministic path behind it.
type RedisRequirementCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRequirementCache creates a Redis-backed requirement cache.
func NewRedisRequirementCache(client *redis.Client, ttl time.Duration) search.RequirementCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &RedisRequirementCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached requirement for a query, if present.
func (c *RedisRequirementCache) Get(ctx context.Context, query string) (*search.Requirement, bool) {
	data, err := c.client.Get(ctx, cacheKey(query)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logx.Warnf("requirement cache get failed: %v", err)
		return nil, false
	}

	var req search.Requirement
	if err := json.Unmarshal(data, &req); err != nil {
		logx.Warnf("requirement cache entry corrupt, dropping: %v", err)
		c.client.Del(ctx, cacheKey(query))
		return nil, false
	}

	return &req, true
}

// Set stores a parsed requirement under the query's key.
func (c *RedisRequirementCache) Set(ctx context.Context, query string, req *search.Requirement) {
	if req == nil {
		return
	}

	data, err := json.Marshal(req)
	if err != nil {
		logx.Warnf("requirement cache marshal failed: %v", err)
		return
	}

	if err := c.client.Set(ctx, cacheKey(query), data, c.ttl).Err(); err != nil {
		logx.Warnf("requirement cache set failed: %v", err)
	}
}

// cacheKey hashes the normalized query so arbitrary recruiter text never
// lands in a Redis key.
func cacheKey(query string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(query))))
	return "search:requirement:" + hex.EncodeToString(sum[:])
}
