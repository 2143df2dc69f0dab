// Package instrument provides observability decorators for the statex
// flush coordinator seam.
//
// Metrics wraps a coordinator with Prometheus counters and a flush
// latency histogram; Tracing wraps one with an OpenTelemetry span per
// flush. Decorators compose:
//
//	statex.SetCoordinator(
//	    instrument.Metrics(
//	        instrument.Tracing(statex.SyncCoordinator{}),
//	    ),
//	)
package instrument
