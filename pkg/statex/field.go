package statex

import (
	"fmt"
	"reflect"
)

// Field is a reactive field node: a unit of observable state with an
// accessor, an optional mutator, a dirty flag, dependents, and listeners.
//
// Dependents are held as plain pointers; registering as a dependent does
// not tie the two lifetimes together beyond ordinary reachability.
type Field struct {
	key string

	get   func() any
	apply func(args ...any) any
	set   func(any)

	// typ is the declared value type. Diagnostic only; may be nil.
	typ reflect.Type

	// coord overrides the package coordinator when non-nil.
	coord Coordinator

	dirty bool

	// source is the provenance token of the pending change.
	// Invariant: dirty == false implies source == nil.
	source any

	// dependents are the fields that must go dirty when this one does.
	// Deduplicated by pointer; traversal is forward-only.
	dependents []*Field

	// listeners is allocated on first OnChange.
	listeners []listenerEntry
}

type listenerEntry struct {
	id uint64
	fn func(src any)
}

// FieldOption configures a field at construction.
type FieldOption func(*Field)

// WithSetter supplies the field's mutator.
func WithSetter(set func(any)) FieldOption {
	return func(f *Field) { f.set = set }
}

// WithDeps makes the new field a dependent of each given field.
func WithDeps(deps ...*Field) FieldOption {
	return func(f *Field) {
		for _, dep := range deps {
			if dep != nil {
				dep.attachDependent(f)
			}
		}
	}
}

// WithType records the declared value type. Diagnostic only.
func WithType(t reflect.Type) FieldOption {
	return func(f *Field) { f.typ = t }
}

// WithCoordinator pins the field to a specific coordinator instead of
// the package-level one.
func WithCoordinator(c Coordinator) FieldOption {
	return func(f *Field) { f.coord = c }
}

// WithApply supplies an argument-taking accessor alongside get, enabling
// Invoke on the field.
func WithApply(apply func(args ...any) any) FieldOption {
	return func(f *Field) { f.apply = apply }
}

// NewField creates a field around the given accessor. The key is a
// diagnostic label and need not be unique.
func NewField(key string, get func() any, opts ...FieldOption) *Field {
	f := &Field{
		key: key,
		get: get,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Key returns the field's diagnostic key.
func (f *Field) Key() string { return f.key }

// Type returns the declared value type, or nil if none was recorded.
func (f *Field) Type() reflect.Type { return f.typ }

// Dirty reports whether the field has a pending, unflushed change.
func (f *Field) Dirty() bool { return f.dirty }

// Source returns the provenance token of the pending change, or nil
// when the field is clean.
func (f *Field) Source() any { return f.source }

// Get returns the current value. Reading has no graph side effects; the
// accessor is always live, so a dirty field still reads current.
func (f *Field) Get() any {
	return f.get()
}

// Set invokes the field's mutator. Returns ErrNoSetter if the field was
// built without one.
func (f *Field) Set(value any) error {
	if f.set == nil {
		return fmt.Errorf("%w: %s", ErrNoSetter, f.key)
	}
	f.set(value)
	return nil
}

// AddDependency registers this field as a dependent of dep: whenever dep
// goes dirty, this field goes dirty too. The edge is rejected with
// ErrCyclicDependency if it would make the field reachable from itself.
func (f *Field) AddDependency(dep *Field) error {
	if dep == nil {
		return nil
	}
	if dep == f || f.reaches(dep) {
		return fmt.Errorf("%w: %s -> %s", ErrCyclicDependency, dep.key, f.key)
	}
	dep.attachDependent(f)
	return nil
}

// reaches reports whether target is reachable from f over dependent edges.
func (f *Field) reaches(target *Field) bool {
	for _, d := range f.dependents {
		if d == target || d.reaches(target) {
			return true
		}
	}
	return false
}

// attachDependent appends d to the dependents set, deduplicated by
// pointer. No cycle check; callers that accept arbitrary edges go
// through AddDependency.
func (f *Field) attachDependent(d *Field) {
	for _, existing := range f.dependents {
		if existing == d {
			return
		}
	}
	f.dependents = append(f.dependents, d)
}

// MarkDirty flags the field as changed with the given provenance token,
// recurses into every dependent with the same token, and hands the field
// to the coordinator for flushing.
//
// Marking is at-least-once: an already-dirty field still re-propagates
// and re-registers with the coordinator. In a diamond-shaped graph the
// shared sink is therefore marked once per path.
func (f *Field) MarkDirty(src any) {
	f.dirty = true
	f.source = src
	logger.Debug().Str("field", f.key).Interface("source", src).Msg("marked dirty")
	for _, d := range f.dependents {
		d.MarkDirty(src)
	}
	f.coordinator().AddDirty(f)
}

// OnChange subscribes fn to flushes of this field. The returned function
// removes exactly this subscription; other listeners are unaffected.
func (f *Field) OnChange(fn func(src any)) func() {
	id := nextID()
	f.listeners = append(f.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, l := range f.listeners {
			if l.id == id {
				f.listeners = append(f.listeners[:i], f.listeners[i+1:]...)
				return
			}
		}
	}
}

// Flush notifies listeners of a dirty field with the stored provenance
// token, then clears the dirty state. A no-op on a clean field.
//
// Listeners run in subscription order on the caller's stack. A listener
// that panics aborts the remaining notifications for this flush.
func (f *Field) Flush() {
	if !f.dirty {
		return
	}
	src := f.source
	if len(f.listeners) > 0 {
		// Copy so that listeners may unsubscribe during notification.
		snapshot := make([]listenerEntry, len(f.listeners))
		copy(snapshot, f.listeners)
		logger.Debug().Str("field", f.key).Int("listeners", len(snapshot)).Msg("flush")
		for _, l := range snapshot {
			l.fn(src)
		}
	}
	f.dirty = false
	f.source = nil
}

// coordinator resolves the coordinator in effect for this field.
func (f *Field) coordinator() Coordinator {
	if f.coord != nil {
		return f.coord
	}
	return defaultCoordinator
}
