package statex

import (
	"reflect"
	"time"
)

// wrap converts a raw value into its observed form:
//
//   - nil and already-wrapped values pass through untouched
//   - *Record becomes an *Object
//   - map[string]any becomes a *Dict
//   - []any becomes a *List
//   - pass-through kinds (see isPassthrough) stay raw
//   - anything else stays raw; without a schema there is nothing to
//     instrument
//
// notify, when non-nil, is subscribed to the new wrapper's whole-value
// event so in-place mutations bubble into the parent. root is the
// topmost wrapped ancestor the new wrapper belongs to.
func wrap(value any, root *Object, notify func()) any {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case *Object, *List, *Dict:
		return v
	case *Record:
		o := newObject(v, root)
		if notify != nil {
			o.bus.on(KeyAll, notify)
		}
		return o
	case map[string]any:
		d := newDict(v, root)
		if notify != nil {
			d.bus.on(KeyAll, notify)
		}
		return d
	case []any:
		l := newList(v, root)
		if notify != nil {
			l.bus.on(KeyAll, notify)
		}
		return l
	}
	if isPassthrough(value) {
		return value
	}
	logger.Debug().Str("type", reflect.TypeOf(value).String()).Msg("value kind not instrumented, passing through")
	return value
}

// isPassthrough reports whether a value is of a recognized immutable or
// primitive kind that never gets wrapped: text, numeric, boolean, binary,
// date/time, and type markers. Named basic types (enum-style constants)
// qualify through their underlying kind.
func isPassthrough(value any) bool {
	switch value.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128,
		[]byte, time.Time, time.Duration, reflect.Type:
		return true
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}
