// Package statex provides an in-process reactive-state layer.
//
// Plain data is held behind wrappers that observe in-place mutation and
// forward it into a dependency graph of reactive fields, so computed
// values refresh when their inputs change.
//
// # Core Types
//
// Field is the unit of observable state:
//
//	count := statex.UseVar("count", 0)
//	count.Set(5)                       // marks the field dirty, listeners fire
//	doubled := count.Do(func(v any) any { return v.(int) * 2 })
//
// Object wraps a record described by a Schema. Member writes and in-place
// mutation of nested lists and maps emit keyed events that mark the
// matching fields dirty:
//
//	cart := statex.NewSchema("Cart").
//	    Init(func() map[string]any {
//	        return map[string]any{"count": 1, "items": []any{}}
//	    }).
//	    Computed("doubled", func(o *statex.Object) any {
//	        return o.Get("count").(int) * 2
//	    }, "count")
//
//	state := statex.New(cart)
//	f, _ := state.Field("doubled")
//	stop := f.OnChange(func(src any) { /* react */ })
//	state.Set("count", 5) // doubled is marked dirty transitively
//	stop()
//
// # Dirty propagation
//
// Marking a field dirty recurses into every dependent with the same
// provenance token and hands each newly dirty field to the Coordinator.
// The default coordinator flushes synchronously on the mutating call
// stack; it is the seam for batched or instrumented flush policies
// (see package instrument).
//
// Propagation is at-least-once: marking an already-dirty field still
// re-propagates. There is no topological scheduling and no deduplication
// beyond the dirty flag itself.
//
// # Wrapping
//
// Assigning a composite value ([]any, map[string]any, or *Record) into a
// wrapped slot wraps it recursively. Strings, numeric and boolean kinds,
// []byte, time.Time, time.Duration, and reflect.Type values pass through
// unwrapped, as do nil and already-wrapped values. Slice and map types
// other than []any and map[string]any are not instrumented and pass
// through as-is.
//
// # Concurrency
//
// A wrapped object graph is single-threaded and cooperative: no internal
// locking protects concurrent mutation of the same values. The
// call-boundary batcher keeps its call-depth stack per goroutine, so
// independent goroutines driving instrumented calls against the same
// graph batch independently; serializing the mutations themselves is the
// caller's job.
package statex
