package statex

// KeyAll is the "whole value changed" notification key. Sequence and
// associative wrappers emit it for every mutation; record wrappers emit
// it alongside the member key so nested wrappers can bubble changes to
// the root.
const KeyAll = "."

type busHandler struct {
	id uint64
	fn func()
}

// bus is a per-wrapper map from notification key to subscriber list.
// Events carry no payload; the key is the information.
type bus struct {
	handlers map[string][]busHandler
}

func newBus() *bus {
	return &bus{handlers: make(map[string][]busHandler)}
}

// on subscribes fn under key and returns a removal function for exactly
// that subscription.
func (b *bus) on(key string, fn func()) func() {
	id := nextID()
	b.handlers[key] = append(b.handlers[key], busHandler{id: id, fn: fn})
	return func() {
		hs := b.handlers[key]
		for i, h := range hs {
			if h.id == id {
				b.handlers[key] = append(hs[:i], hs[i+1:]...)
				return
			}
		}
	}
}

// emit fires every handler subscribed under key, in subscription order.
func (b *bus) emit(key string) {
	hs := b.handlers[key]
	if len(hs) == 0 {
		return
	}
	// Copy so handlers may subscribe or unsubscribe during delivery.
	snapshot := make([]busHandler, len(hs))
	copy(snapshot, hs)
	for _, h := range snapshot {
		h.fn()
	}
}
