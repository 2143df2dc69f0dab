package statex

// Dict is the associative-container wrapper. It owns the underlying map
// exclusively, wraps inserted composite values recursively, and emits
// the whole-value sentinel after every mutation; there is no per-key
// tracking.
type Dict struct {
	bus  *bus
	root *Object
	data map[string]any
}

func newDict(raw map[string]any, root *Object) *Dict {
	d := &Dict{
		bus:  newBus(),
		root: root,
		data: raw,
	}
	for k, v := range raw {
		d.data[k] = d.wrapValue(v)
	}
	return d
}

func (d *Dict) wrapValue(v any) any {
	return wrap(v, d.root, func() { d.bus.emit(KeyAll) })
}

// Len returns the number of keys.
func (d *Dict) Len() int { return len(d.data) }

// Get returns the value for key and whether it exists.
func (d *Dict) Get(key string) (any, bool) {
	v, ok := d.data[key]
	return v, ok
}

// Has reports whether key exists.
func (d *Dict) Has(key string) bool {
	_, ok := d.data[key]
	return ok
}

// Keys returns the current keys in unspecified order.
func (d *Dict) Keys() []string {
	out := make([]string, 0, len(d.data))
	for k := range d.data {
		out = append(out, k)
	}
	return out
}

// Set stores a key-value pair.
func (d *Dict) Set(key string, value any) {
	d.data[key] = d.wrapValue(value)
	d.bus.emit(KeyAll)
}

// Delete removes a key. Removing an absent key is a no-op and emits
// nothing.
func (d *Dict) Delete(key string) {
	if _, ok := d.data[key]; !ok {
		return
	}
	delete(d.data, key)
	d.bus.emit(KeyAll)
}

// Subscribe registers fn for this dict's whole-value event. Returns an
// unsubscribe function.
func (d *Dict) Subscribe(fn func()) func() {
	return d.bus.on(KeyAll, fn)
}
