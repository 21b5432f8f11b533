// Package tracing records deployment steps as OpenTelemetry spans. Tracing is
// opt-in: until Init or InitWithExporter is called spans are no-ops.
package tracing
