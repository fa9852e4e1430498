// Package goToken implements a stateless, secret-keyed authentication token:
// an identity, an absolute expiry, and an ordered payload, sealed into an
// opaque URL-safe string that can travel through emails and links and be
// validated later without a server-side session.
//
// The typical flow is a secret handle in an email: the server issues a token
// for a user id, embeds it in a link, and when the link comes back it parses
// the wire string, checks that it is well formed, not expired, and not
// already consumed, and then marks it consumed so the link cannot be replayed.
//
// # Architecture boundaries
//
// goToken is the public surface. [Generate], [Parse], and [IsTokenValid] are
// pure and need no infrastructure. Consumption state lives in an external
// expiring cache behind [Tracker]; [Issuer] ties secret, codec, and tracker
// together for callers that want a single injected dependency instead of
// free functions.
//
// # Error posture
//
// The parse path never fails: malformed, tampered, or stale input degrades to
// a sentinel Token checked through its predicates, so attacker-controlled
// strings cannot crash a caller or skip validation through an error path.
// The generate path and the cache path are loud: bad key material and cache
// outages are operator faults and surface as errors.
package goToken
