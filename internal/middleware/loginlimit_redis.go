package middleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const loginLimitKeyPrefix = "loginlimit:"

var loginLimitScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

local windowStart = now - window

redis.call('ZREMRANGEBYSCORE', key, '-inf', windowStart)

local count = redis.call('ZCARD', key)

if count >= limit then
    return 0
end

redis.call('ZADD', key, now, now .. '-' .. math.random())
redis.call('EXPIRE', key, window + 10)

return 1
`)

// RedisLoginLimiter is a sliding-window per-IP counter shared across
// instances. On Redis failure it fails open: a broken limiter must not
// lock the admin out.
type RedisLoginLimiter struct {
	client *redis.Client
}

func NewRedisLoginLimiter(client *redis.Client) *RedisLoginLimiter {
	return &RedisLoginLimiter{client: client}
}

func (l *RedisLoginLimiter) Allow(ctx context.Context, ip string) bool {
	key := loginLimitKeyPrefix + ip
	now := time.Now().Unix()

	result, err := loginLimitScript.Run(ctx, l.client, []string{key},
		now, int64(loginWindowDuration.Seconds()), loginMaxAttempts).Int64()
	if err != nil {
		log.Warn().Err(err).Str("ip", ip).Msg("redis login limit check failed, allowing request")
		return true
	}

	return result == 1
}
