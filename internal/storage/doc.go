// Package storage defines the persistence interfaces consumed by the
// service layer: game records, appended rounds with their computed
// points, and operational telemetry. Implementations live in subpackages.
package storage
