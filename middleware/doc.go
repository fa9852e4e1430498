// Package middleware exposes an HTTP adapter for link-token flows built on
// top of goToken.Issuer verification.
//
// [Require] reads the wire token from a header or query parameter, resolves
// the expected identity for the request, runs Verify (or Redeem for one-time
// links), and injects the decoded token into the request context.
//
// # Architecture boundaries
//
// This package translates HTTP semantics into Issuer calls. It makes no
// validity decisions of its own: every rejected token maps to 401, and an
// unavailable consumption cache maps to 503.
package middleware
