// Package metrics provides Prometheus-backed instrumentation for registry
// operations. This package is internal and should not be imported by
// external projects.
//
// Collector implements registry.Instrumentation: registrations, removals,
// lookups (hit/miss), instantiations (with status and latency), and the live
// registry size, all labeled by registry name and scoped to a namespace.
package metrics
