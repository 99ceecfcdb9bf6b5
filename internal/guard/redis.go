package guard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"treasury/internal/proposal/ports"
	"treasury/pkg/domain"
)

const (
	lockKeyPrefix = "treasury:lock:org:"

	// DefaultLockTTL bounds how long a crashed holder can keep an organization locked.
	DefaultLockTTL = 30 * time.Second

	releaseTimeout = 2 * time.Second
)

// releaseScript deletes the key only if it still carries the holder's token, so an
// expired holder cannot release a lock someone else has since taken.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker shares the organization lock across instances using SET NX PX.
type RedisLocker struct {
	client   *redis.Client
	ttl      time.Duration
	logger   *slog.Logger
	recorder ContentionRecorder
}

type RedisLockerOption func(*RedisLocker)

func WithTTL(ttl time.Duration) RedisLockerOption {
	return func(l *RedisLocker) {
		if ttl > 0 {
			l.ttl = ttl
		}
	}
}

func WithLogger(logger *slog.Logger) RedisLockerOption {
	return func(l *RedisLocker) {
		l.logger = logger
	}
}

func WithContentionRecorder(r ContentionRecorder) RedisLockerOption {
	return func(l *RedisLocker) {
		l.recorder = r
	}
}

func NewRedisLocker(client *redis.Client, opts ...RedisLockerOption) *RedisLocker {
	l := &RedisLocker{
		client: client,
		ttl:    DefaultLockTTL,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

func (l *RedisLocker) Lock(ctx context.Context, org domain.OrganizationID) (func(), error) {
	key := lockKeyPrefix + org.String()
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lock for %s: %w", org, err)
	}
	if !ok {
		if l.recorder != nil {
			l.recorder.IncLockContention()
		}
		return nil, reentrant(org)
	}

	var once sync.Once
	return func() {
		once.Do(func() { l.release(ctx, org, key, token) })
	}, nil
}

func (l *RedisLocker) release(ctx context.Context, org domain.OrganizationID, key, token string) {
	// Release must run even when the operation's context was cancelled.
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()
	if err := releaseScript.Run(rctx, l.client, []string{key}, token).Err(); err != nil {
		l.logger.ErrorContext(rctx, "failed to release organization lock",
			"organization", org,
			"error", err,
		)
	}
}

var _ ports.Locker = (*RedisLocker)(nil)
