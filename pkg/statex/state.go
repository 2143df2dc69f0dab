package statex

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

// New instantiates a schema's value factory and wraps the result as a
// root record. This is the construction entry point for a reactive
// object graph.
func New(schema *Schema) *Object {
	return Wrap(schema.NewRecord())
}

// Wrap wraps an already-built plain record as a root object.
func Wrap(rec *Record) *Object {
	return newObject(rec, nil)
}

// UseCalc builds a standalone computed field from an accessor and its
// explicit dependencies. The field has no setter.
func UseCalc(get func() any, deps ...*Field) *Field {
	return NewField(
		fmt.Sprintf("calc(%s)", uuid.NewString()),
		get,
		WithDeps(deps...),
	)
}

// UseVar builds a standalone mutable field holding the given initial
// value. Setting the field stores the value and marks it dirty; use
// Assign to attach a provenance token. The declared type is inferred
// from the initial value.
func UseVar(name string, initial any, deps ...*Field) *Field {
	holder := initial
	var f *Field
	f = NewField(
		fmt.Sprintf("var(%s)", name),
		func() any { return holder },
		WithSetter(func(v any) {
			holder = v
			f.MarkDirty(nil)
		}),
		WithDeps(deps...),
		WithType(reflect.TypeOf(initial)),
	)
	return f
}

// Assign sets a field's value and marks it dirty with an explicit
// provenance token, which propagates transitively to dependents and
// reaches listeners on flush.
func Assign(f *Field, value any, src any) error {
	if err := f.Set(value); err != nil {
		return err
	}
	f.MarkDirty(src)
	return nil
}

// NewOrigin returns a fresh opaque provenance token for callers that
// have no natural change-origin identifier.
func NewOrigin() string {
	return uuid.NewString()
}
