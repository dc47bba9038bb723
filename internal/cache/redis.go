package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "reelrate:query:"
	opTimeout        = 2 * time.Second
)

func init() {
	Register("redis", newRedisCache)
}

// redisCache keeps every body in one hash ({prefix}bodies) with per-field TTL
// (HPEXPIRE, Redis 7.4+ / Valkey 8+) and tracks recency in a sorted set
// ({prefix}recency). Scripts keep touch and write+evict atomic so several
// processes can share one query cache.
type redisCache struct {
	client     *redis.Client
	ttl        time.Duration
	maxSize    int
	onEvict    EvictCallback
	logger     Logger
	bodiesKey  string
	recencyKey string
}

// KEYS[1] = bodies hash, KEYS[2] = recency zset
// ARGV[1] = now (µs), ARGV[2] = field
var touchScript = redis.NewScript(`
local body = redis.call('HGET', KEYS[1], ARGV[2])
if body then
    redis.call('ZADD', KEYS[2], ARGV[1], ARGV[2])
else
    redis.call('ZREM', KEYS[2], ARGV[2])
end
return body
`)

// KEYS[1] = bodies hash, KEYS[2] = recency zset
// ARGV[1] = body, ARGV[2] = now (µs), ARGV[3] = field, ARGV[4] = max entries, ARGV[5] = ttl (ms)
// Returns the evicted fields.
var storeScript = redis.NewScript(`
local field = ARGV[3]
redis.call('HSET', KEYS[1], field, ARGV[1])
redis.call('HPEXPIRE', KEYS[1], tonumber(ARGV[5]), 'FIELDS', 1, field)
redis.call('ZADD', KEYS[2], ARGV[2], field)

local limit = tonumber(ARGV[4])
local evicted = {}
while redis.call('ZCARD', KEYS[2]) > limit do
    local oldest = redis.call('ZPOPMIN', KEYS[2], 1)
    if #oldest == 0 then break end
    redis.call('HDEL', KEYS[1], oldest[1])
    evicted[#evicted + 1] = oldest[1]
end
return evicted
`)

func newRedisCache(cfg ProviderConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &redisCache{
		client:     client,
		ttl:        cfg.TTL,
		maxSize:    cfg.Size,
		onEvict:    cfg.OnEvict,
		logger:     cfg.Logger,
		bodiesKey:  prefix + "bodies",
		recencyKey: prefix + "recency",
	}, nil
}

func (r *redisCache) keys() []string {
	return []string{r.bodiesKey, r.recencyKey}
}

func (r *redisCache) report(msg string, err error) {
	if r.logger != nil {
		r.logger.Error(msg, err)
	}
}

func nowMicros() string {
	return strconv.FormatInt(time.Now().UnixMicro(), 10)
}

func (r *redisCache) Get(key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	body, err := touchScript.Run(ctx, r.client, r.keys(), nowMicros(), key).Text()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.report("redis query cache Get failed", err)
		}
		return nil, false
	}
	return []byte(body), true
}

func (r *redisCache) Set(key string, value []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	evicted, err := storeScript.Run(ctx, r.client, r.keys(),
		value, nowMicros(), key, strconv.Itoa(r.maxSize), strconv.FormatInt(r.ttl.Milliseconds(), 10),
	).StringSlice()
	if err != nil {
		r.report("redis query cache Set failed", err)
		return
	}

	if r.onEvict == nil {
		return
	}
	for _, field := range evicted {
		r.onEvict(field, nil)
	}
}

func (r *redisCache) Contains(key string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	ok, err := r.client.HExists(ctx, r.bodiesKey, key).Result()
	if err != nil {
		r.report("redis query cache Contains failed", err)
		return false
	}
	return ok
}

func (r *redisCache) Remove(key string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var removed *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		removed = pipe.HDel(ctx, r.bodiesKey, key)
		pipe.ZRem(ctx, r.recencyKey, key)
		return nil
	})
	if err != nil {
		r.report("redis query cache Remove failed", err)
		return false
	}
	if removed.Val() == 0 {
		return false
	}
	if r.onEvict != nil {
		r.onEvict(key, nil)
	}
	return true
}

func (r *redisCache) Len() int {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	n, err := r.client.HLen(ctx, r.bodiesKey).Result()
	if err != nil {
		r.report("redis query cache Len failed", err)
		return 0
	}
	return int(n)
}

func (r *redisCache) Close() error {
	return r.client.Close()
}
