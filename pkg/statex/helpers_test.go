package statex

import "testing"

// recorder captures listener invocations with their provenance tokens.
type recorder struct {
	calls []any
}

func (r *recorder) listen(src any) {
	r.calls = append(r.calls, src)
}

func (r *recorder) count() int {
	return len(r.calls)
}

func (r *recorder) last() any {
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
}

// queueCoordinator collects dirty fields instead of flushing them, so
// tests can observe dirty state before notification.
type queueCoordinator struct {
	queue []*Field
}

func (q *queueCoordinator) AddDirty(f *Field) {
	q.queue = append(q.queue, f)
}

func (q *queueCoordinator) flushAll() {
	pending := q.queue
	q.queue = nil
	for _, f := range pending {
		f.Flush()
	}
}

// useQueueCoordinator swaps in a queueCoordinator for the duration of a
// test.
func useQueueCoordinator(t *testing.T) *queueCoordinator {
	t.Helper()
	q := &queueCoordinator{}
	SetCoordinator(q)
	t.Cleanup(func() { SetCoordinator(nil) })
	return q
}

// holderField builds a plain field over a captured variable without the
// self-marking setter that UseVar installs.
func holderField(key string, initial any) *Field {
	holder := initial
	return NewField(
		key,
		func() any { return holder },
		WithSetter(func(v any) { holder = v }),
	)
}
