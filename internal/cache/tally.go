// Package cache holds a redis read-through cache for spam tallies.
package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "spam:tally:"
	genPrefix = "spam:tallygen:"

	// Generation keys must outlive any in-flight fill.
	genTTL = 24 * time.Hour
)

// fillScript writes the tally only if the number's generation still matches
// the one read before counting. A report bumps the generation, so a count
// taken before the report can never land in the cache after it.
var fillScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if (current or '') ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`)

// TallyCache stores spam report counts per number for a short TTL.
// Methods on a nil *TallyCache are no-ops that always miss.
type TallyCache struct {
	client *redis.Client
	ttl    time.Duration
}

// Snapshot is one cache read. Generation is passed back to Fill.
type Snapshot struct {
	Tally      int64
	Found      bool
	Generation string
}

// NewTallyCache returns nil when client is nil or ttl is not positive.
func NewTallyCache(client *redis.Client, ttl time.Duration) *TallyCache {
	if client == nil || ttl <= 0 {
		return nil
	}
	return &TallyCache{client: client, ttl: ttl}
}

func key(number string) string {
	return keyPrefix + number
}

func genKey(number string) string {
	return genPrefix + number
}

// Get reads the cached tally and the number's generation in one round trip.
func (c *TallyCache) Get(ctx context.Context, number string) (Snapshot, error) {
	if c == nil {
		return Snapshot{}, nil
	}
	vals, err := c.client.MGet(ctx, key(number), genKey(number)).Result()
	if err != nil {
		return Snapshot{}, err
	}

	var snap Snapshot
	if gen, ok := vals[1].(string); ok {
		snap.Generation = gen
	}
	raw, ok := vals[0].(string)
	if !ok {
		return snap, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Snapshot{}, fmt.Errorf("parse cached tally %q: %w", raw, err)
	}
	snap.Tally = n
	snap.Found = true
	return snap, nil
}

// Fill caches tally unless a report was recorded since generation was read.
// It reports whether the value was written.
func (c *TallyCache) Fill(ctx context.Context, number string, tally int64, generation string) (bool, error) {
	if c == nil {
		return false, nil
	}
	written, err := fillScript.Run(ctx, c.client,
		[]string{genKey(number), key(number)},
		generation, tally, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, err
	}
	return written == 1, nil
}

// Invalidate drops the cached tally and bumps the generation so fills that
// started before the call are discarded.
func (c *TallyCache) Invalidate(ctx context.Context, number string) error {
	if c == nil {
		return nil
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey(number))
		pipe.Expire(ctx, genKey(number), genTTL)
		pipe.Del(ctx, key(number))
		return nil
	})
	return err
}

// Flush drops every cached tally. Generations are left in place.
func (c *TallyCache) Flush(ctx context.Context) (int64, error) {
	if c == nil {
		return 0, nil
	}
	var deleted int64
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		n, err := c.client.Del(ctx, iter.Val()).Result()
		if err != nil {
			return deleted, err
		}
		deleted += n
	}
	return deleted, iter.Err()
}
