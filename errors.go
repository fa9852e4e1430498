package goToken

import "errors"

var (
	// ErrTokenInvalid is returned by Issuer verification for every rejected
	// token shape: wrong id, expired, consumed, malformed, or tampered.
	// Callers get one uniform rejection; the reason is not leaked.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrRedisUnavailable wraps consumption-cache failures. These are
	// infrastructure faults, distinct from token rejection.
	ErrRedisUnavailable = errors.New("redis unavailable")
	// ErrSecretMissing is returned by Build when no secret was configured.
	ErrSecretMissing = errors.New("secret required")
	// ErrRedisMissing is returned by Build when no redis client was configured.
	ErrRedisMissing = errors.New("redis client required")
)
