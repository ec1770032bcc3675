package redis

import (
	"context"
	"net"
	"strings"

	"github.com/hyp3rd/ewrap"
	"github.com/redis/go-redis/v9"

	"github.com/hyp3rd/numstats/internal/constants"
)

// Store holds the redis client shared by Redis series backends.
type Store struct {
	Client *redis.Client
}

// New creates a redis store with the given options. The address is required.
func New(opts ...Option) (*Store, error) {
	opt := &redis.Options{
		Dialer: func(ctx context.Context, network, addr string) (net.Conn, error) {
			dialer := &net.Dialer{
				Timeout: constants.RedisDialTimeout,
			}

			return dialer.DialContext(ctx, network, addr)
		},
		MaxRetries:   constants.RedisClientMaxRetries,
		DialTimeout:  constants.RedisDialTimeout,
		ReadTimeout:  constants.RedisClientReadTimeout,
		WriteTimeout: constants.RedisClientWriteTimeout,
		PoolSize:     constants.RedisClientPoolSize,
	}

	ApplyOptions(opt, opts...)

	if strings.TrimSpace(opt.Addr) == "" {
		return nil, ewrap.New("redis address is empty")
	}

	return &Store{Client: redis.NewClient(opt)}, nil
}

// Ping checks the connection to the server.
func (s *Store) Ping(ctx context.Context) error {
	err := s.Client.Ping(ctx).Err()
	if err != nil {
		return ewrap.Wrap(err, "redis ping")
	}

	return nil
}

// Close closes the client and its connection pool.
func (s *Store) Close() error {
	return s.Client.Close()
}
