package goToken

import "time"

// Config carries the issuer settings. Configure once during initialization
// and treat as immutable afterwards.
type Config struct {
	// Secret is the symmetric key material used to seal and open wire
	// tokens. Any length is accepted; it is reduced to a fixed-size key by
	// the cipher layer. Required.
	Secret []byte

	// DefaultLife is the lifetime applied by Issue when the caller does not
	// pick one. Defaults to [Short].
	DefaultLife Life

	// ConsumedKeyPrefix overrides the cache namespace for consumption marks.
	// Leave empty for the default.
	ConsumedKeyPrefix string

	// ForeverMarkTTL bounds the consumption-mark lifetime for never-expiring
	// tokens, which have no due instant to derive a TTL from. Zero keeps the
	// mark until the cache drops it.
	ForeverMarkTTL time.Duration

	// Nonce appends a random trailing payload field to every issued token,
	// making otherwise-identical tokens distinct instances with independent
	// consumption marks.
	Nonce bool
}

func defaultConfig() Config {
	return Config{
		DefaultLife: Short,
	}
}

func (c *Config) applyDefaults() {
	if c.DefaultLife == 0 {
		c.DefaultLife = Short
	}
}
