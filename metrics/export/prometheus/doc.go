// Package prometheus renders the issuer counters in Prometheus text
// exposition format.
//
// [NewExporter] accepts a [goToken.Issuer] and exposes an [http.Handler]
// that renders every counter. Counter names are prefixed gotoken_*_total.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry; callers mount the
//     Handler.
//   - Mutate issuer state.
package prometheus
