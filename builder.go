package goToken

import (
	"github.com/redis/go-redis/v9"
)

// Builder assembles an [Issuer]. Configure it with the With* methods and call
// [Builder.Build] exactly once; the resulting Issuer is immutable and safe
// for concurrent use.
type Builder struct {
	config Config
	redis  redis.UniversalClient
}

// New returns a Builder with default configuration.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the full configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithSecret sets the symmetric secret used for all wire tokens.
func (b *Builder) WithSecret(secret []byte) *Builder {
	b.config.Secret = secret
	return b
}

// WithSecretString sets the secret from a string. Thin convenience over
// [Builder.WithSecret]; the byte form is canonical.
func (b *Builder) WithSecretString(secret string) *Builder {
	b.config.Secret = []byte(secret)
	return b
}

// WithRedis sets the cache client backing the consumption tracker.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithDefaultLife sets the lifetime Issue applies when none is given.
func (b *Builder) WithDefaultLife(life Life) *Builder {
	b.config.DefaultLife = life
	return b
}

// WithNonce enables the per-token random nonce payload field.
func (b *Builder) WithNonce() *Builder {
	b.config.Nonce = true
	return b
}

// Build validates the configuration and returns a ready Issuer.
func (b *Builder) Build() (*Issuer, error) {
	if len(b.config.Secret) == 0 {
		return nil, ErrSecretMissing
	}
	if b.redis == nil {
		return nil, ErrRedisMissing
	}

	cfg := b.config
	cfg.applyDefaults()

	return &Issuer{
		config:  cfg,
		tracker: NewTracker(b.redis, cfg.ConsumedKeyPrefix, cfg.ForeverMarkTTL),
		metrics: &metricsRecorder{},
	}, nil
}
