package queue

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/rueidis"
)

// releaseScript deletes KEYS[1] only while it still holds the caller's token.
var releaseScript = rueidis.NewLuaScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisLoginGuard struct {
	client rueidis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisLoginGuard(client rueidis.Client, prefix string, ttl time.Duration) *RedisLoginGuard {
	return &RedisLoginGuard{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *RedisLoginGuard) Acquire(ctx context.Context, key string) (string, error) {
	token := uuid.NewString()
	cmd := r.client.B().Set().Key(r.prefix + key).Value(token).Nx().PxMilliseconds(r.ttl.Milliseconds()).Build()
	result := r.client.Do(ctx, cmd)

	if err := result.Error(); err != nil {
		// SET NX replies nil when the key already exists.
		if rueidis.IsRedisNil(err) {
			return "", ErrAlreadyHeld
		}
		return "", err
	}

	return token, nil
}

func (r *RedisLoginGuard) Release(ctx context.Context, key, token string) error {
	return releaseScript.Exec(ctx, r.client, []string{r.prefix + key}, []string{token}).Error()
}
