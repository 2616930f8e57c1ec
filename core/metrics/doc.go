// Package metrics defines the observability interfaces of the simulation
// engine. Concrete sinks live in infra/metrics and register themselves with
// RegisterRunSink; NewRunSink returns a MultiSink automatically when several
// sinks are configured.
package metrics
