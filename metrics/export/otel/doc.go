// Package otel provides OpenTelemetry metric exporter bindings for the issuer
// counters.
//
// [NewExporter] registers an Int64ObservableCounter per issuer metric. A
// single callback reads the issuer's metrics snapshot on each collection
// cycle.
//
// # What this package must NOT do
//
//   - Own the OTel MeterProvider; callers supply the Meter.
//   - Mutate issuer state.
package otel
