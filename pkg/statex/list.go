package statex

// List is the sequence wrapper. It owns the underlying slice
// exclusively, wraps inserted composite elements recursively, and emits
// the whole-value sentinel after every mutation; there is no per-index
// tracking.
//
// Index methods follow bounds-checked no-op semantics: out-of-range
// reads return nil and out-of-range mutations do nothing.
type List struct {
	bus   *bus
	root  *Object
	items []any
}

func newList(raw []any, root *Object) *List {
	l := &List{
		bus:   newBus(),
		root:  root,
		items: raw,
	}
	for i, v := range raw {
		l.items[i] = l.wrapElem(v)
	}
	return l
}

// wrapElem wraps a composite element and bubbles its in-place mutations
// into this list's whole-value event.
func (l *List) wrapElem(v any) any {
	return wrap(v, l.root, func() { l.bus.emit(KeyAll) })
}

// Len returns the number of elements.
func (l *List) Len() int { return len(l.items) }

// Get returns the element at index, or nil if out of range.
func (l *List) Get(index int) any {
	if index < 0 || index >= len(l.items) {
		return nil
	}
	return l.items[index]
}

// Items returns a copy of the elements.
func (l *List) Items() []any {
	out := make([]any, len(l.items))
	copy(out, l.items)
	return out
}

// Set replaces the element at index.
func (l *List) Set(index int, value any) {
	if index < 0 || index >= len(l.items) {
		return
	}
	l.items[index] = l.wrapElem(value)
	l.bus.emit(KeyAll)
}

// Append adds an element at the end.
func (l *List) Append(value any) {
	l.items = append(l.items, l.wrapElem(value))
	l.bus.emit(KeyAll)
}

// Insert places an element at index, shifting the rest. Out-of-range
// indexes clamp to the ends.
func (l *List) Insert(index int, value any) {
	if index < 0 {
		index = 0
	}
	if index > len(l.items) {
		index = len(l.items)
	}
	wrapped := l.wrapElem(value)
	l.items = append(l.items, nil)
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = wrapped
	l.bus.emit(KeyAll)
}

// Delete removes the element at index.
func (l *List) Delete(index int) {
	if index < 0 || index >= len(l.items) {
		return
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	l.bus.emit(KeyAll)
}

// Pop removes and returns the last element, or nil if the list is empty.
func (l *List) Pop() any {
	if len(l.items) == 0 {
		return nil
	}
	v := l.items[len(l.items)-1]
	l.items = l.items[:len(l.items)-1]
	l.bus.emit(KeyAll)
	return v
}

// Remove deletes the first element equal to value, reporting whether one
// was found.
func (l *List) Remove(value any) bool {
	for i, v := range l.items {
		if valuesEqual(v, value) {
			l.items = append(l.items[:i], l.items[i+1:]...)
			l.bus.emit(KeyAll)
			return true
		}
	}
	return false
}

// Subscribe registers fn for this list's whole-value event. Returns an
// unsubscribe function.
func (l *List) Subscribe(fn func()) func() {
	return l.bus.on(KeyAll, fn)
}
