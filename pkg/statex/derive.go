package statex

import (
	"fmt"
	"reflect"
)

// Derived-node constructors. Each builds a new field whose accessor
// composes a function over this field's accessor and registers the new
// field as a dependent, so it goes dirty whenever the source does.
// Derived fields have no setter.

// Do returns a field computing fn over this field's value.
func (f *Field) Do(fn func(v any) any) *Field {
	nf := NewField(
		fmt.Sprintf("%s.do", f.key),
		func() any { return fn(f.Get()) },
	)
	f.attachDependent(nf)
	return nf
}

// Map returns a field that applies fn to every element of this field's
// sequence value. The source may hold a []any or a wrapped *List; any
// other value maps to nil.
func (f *Field) Map(fn func(v any, i int) any) *Field {
	nf := NewField(
		fmt.Sprintf("%s.map", f.key),
		func() any {
			var items []any
			switch v := f.Get().(type) {
			case []any:
				items = v
			case *List:
				items = v.Items()
			default:
				return nil
			}
			out := make([]any, len(items))
			for i, item := range items {
				out[i] = fn(item, i)
			}
			return out
		},
	)
	f.attachDependent(nf)
	return nf
}

// Eq returns a boolean field reporting whether this field's value equals
// value.
func (f *Field) Eq(value any) *Field {
	nf := NewField(
		fmt.Sprintf("%s.eq(%v)", f.key, value),
		func() any { return valuesEqual(f.Get(), value) },
	)
	f.attachDependent(nf)
	return nf
}

// Invoke returns a field that re-invokes this field's argument-taking
// accessor with the given arguments on every read. The source must have
// been built with WithApply (or registered via Schema.ComputedFunc);
// otherwise Invoke fails with ErrNotInvokable.
func (f *Field) Invoke(args ...any) (*Field, error) {
	if f.apply == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotInvokable, f.key)
	}
	nf := NewField(
		fmt.Sprintf("%s(%v)", f.key, args),
		func() any { return f.apply(args...) },
	)
	f.attachDependent(nf)
	return nf, nil
}

// valuesEqual compares two values, using == for the common comparable
// kinds and reflect.DeepEqual for everything else.
func valuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	default:
		return reflect.DeepEqual(a, b)
	}
}
