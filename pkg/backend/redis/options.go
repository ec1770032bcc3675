// Package redis builds the go-redis client used by the Redis sample series backend.
// Connection settings are configured with functional options over redis.Options.
package redis

import (
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"
)

// Option configures the redis.Options used to build the client.
type Option func(*redis.Options)

// ApplyOptions applies the given options to opt.
func ApplyOptions(opt *redis.Options, options ...Option) {
	for _, option := range options {
		option(opt)
	}
}

// WithAddr sets the server address (host:port).
func WithAddr(addr string) Option {
	return func(opt *redis.Options) {
		opt.Addr = addr
	}
}

// WithCredentials sets the ACL username and password.
func WithCredentials(username, password string) Option {
	return func(opt *redis.Options) {
		opt.Username = username
		opt.Password = password
	}
}

// WithDB selects the logical database.
func WithDB(db int) Option {
	return func(opt *redis.Options) {
		opt.DB = db
	}
}

// WithTimeouts sets the dial, read and write timeouts. Zero values keep the defaults.
func WithTimeouts(dial, read, write time.Duration) Option {
	return func(opt *redis.Options) {
		if dial > 0 {
			opt.DialTimeout = dial
		}

		if read > 0 {
			opt.ReadTimeout = read
		}

		if write > 0 {
			opt.WriteTimeout = write
		}
	}
}

// WithPoolSize sets the maximum number of socket connections.
func WithPoolSize(poolSize int) Option {
	return func(opt *redis.Options) {
		opt.PoolSize = poolSize
	}
}

// WithTLSConfig enables TLS with the given configuration.
func WithTLSConfig(tlsConfig *tls.Config) Option {
	return func(opt *redis.Options) {
		opt.TLSConfig = tlsConfig
	}
}
