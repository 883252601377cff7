// Package telemetry provides operational observability for the scoring
// service.
//
// Telemetry events capture what the service did (games created, rounds
// recorded) for monitoring and usage analysis. They are appended through
// the storage layer's TelemetryStore and carry the active span's trace
// and span ids when a tracer is installed, so stored events can be
// correlated with traces later.
//
// Telemetry never participates in game state: a failed emit is logged by
// the caller and the operation proceeds.
package telemetry
