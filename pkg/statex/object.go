package statex

import "fmt"

// Object is the record wrapper: it owns the record's data exclusively,
// re-wraps every composite member recursively, and emits an event under
// the member key for each write. Method calls run with the Object as
// receiver, bracketed by the call-boundary batcher.
type Object struct {
	schema  *Schema
	data    map[string]any
	bus     *bus
	root    *Object
	factory *Factory

	// Batching hooks, consulted on the root only.
	onCallBegin func()
	onCallEnd   func()
}

// newObject wraps a plain record. root is the topmost wrapped ancestor;
// nil means the new object is itself the root.
func newObject(rec *Record, root *Object) *Object {
	o := &Object{
		schema: rec.schema,
		data:   rec.data,
		bus:    newBus(),
	}
	if root == nil {
		root = o
	}
	o.root = root
	o.factory = newFactory(o)

	// Wrap composite members in place so in-place mutation of nested
	// values bubbles up under the member key.
	for name, value := range o.data {
		o.data[name] = wrap(value, o.root, func() { o.emitMember(name) })
	}
	logger.Debug().Str("schema", o.schema.name).Msg("record wrapped")
	return o
}

// Schema returns the defining schema of the wrapped record.
func (o *Object) Schema() *Schema { return o.schema }

// Root returns the topmost wrapped ancestor of this object.
func (o *Object) Root() *Object { return o.root }

// Get returns the current value of a data member, wrapped if composite.
// Unknown members read as nil.
func (o *Object) Get(name string) any {
	return o.data[name]
}

// Set assigns a data member: the value is wrapped if composite, stored,
// and an event is emitted under the member key. Assigning nil or an
// already-wrapped value stores it as-is.
func (o *Object) Set(name string, value any) {
	o.data[name] = wrap(value, o.root, func() { o.emitMember(name) })
	o.emitMember(name)
}

// Call invokes a registered method with this object as receiver. The
// call is bracketed by the batcher: if it is the outermost instrumented
// call on this goroutine for this object graph, the root's begin hook
// fires before the body and the end hook after it. Nested instrumented
// calls share the bracket.
func (o *Object) Call(name string, args ...any) (any, error) {
	m, ok := o.schema.methods[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownMember, o.schema.name, name)
	}
	enterCall(o.root, name)
	defer exitCall(o.root)
	return m(o, args...), nil
}

// Field returns the reactive field node for a member, creating it on
// first request. Repeated lookups return the identical node.
func (o *Object) Field(name string) (*Field, error) {
	return o.factory.Get(name)
}

// MustField is Field for members known to exist; it panics on
// configuration errors.
func (o *Object) MustField(name string) *Field {
	f, err := o.factory.Get(name)
	if err != nil {
		panic(err)
	}
	return f
}

// OnCallBegin registers the hook fired when the outermost instrumented
// call on this object graph begins. Effective on the root object.
func (o *Object) OnCallBegin(fn func()) {
	o.onCallBegin = fn
}

// OnCallEnd registers the hook fired when the outermost instrumented
// call on this object graph returns.
func (o *Object) OnCallEnd(fn func()) {
	o.onCallEnd = fn
}

// Subscribe registers fn for events under the given member key (or
// KeyAll for any change). Returns an unsubscribe function.
func (o *Object) Subscribe(key string, fn func()) func() {
	return o.bus.on(key, fn)
}

// emitMember fires the member's own key and then the whole-value
// sentinel, which parents of a nested object subscribe to for bubbling.
func (o *Object) emitMember(name string) {
	o.bus.emit(name)
	o.bus.emit(KeyAll)
}
