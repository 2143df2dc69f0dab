package statex

import "fmt"

// Factory lazily materializes and caches one reactive field node per
// named member of a wrapped record. The cache is populated once and
// never invalidated, so repeated lookups preserve listener and
// dependency identity.
type Factory struct {
	obj    *Object
	fields map[string]*Field
}

func newFactory(o *Object) *Factory {
	return &Factory{
		obj:    o,
		fields: make(map[string]*Field),
	}
}

// Get resolves the field node for a member:
//
//   - computed member: a node over the registered compute function,
//     wired as a dependent of each declared dependency
//   - method without a computed registration: ErrNotRegistered
//   - data member: a node reading and writing the member, marked dirty
//     by the record's event bus under the member key
//   - anything else: ErrUnknownMember
func (fa *Factory) Get(name string) (*Field, error) {
	if f, ok := fa.fields[name]; ok {
		return f, nil
	}

	o := fa.obj
	if def, ok := o.schema.computed[name]; ok {
		opts := []FieldOption{WithType(o.schema.types[name])}
		if def.apply != nil {
			opts = append(opts, WithApply(func(args ...any) any {
				return def.apply(o, args...)
			}))
		}
		f := NewField(name, func() any { return def.fn(o) }, opts...)

		// Cache before resolving dependencies so that mutually computed
		// members terminate here instead of recursing forever; the
		// offending edge then fails the cycle check below.
		fa.fields[name] = f
		for _, dep := range def.deps {
			dn, err := fa.Get(dep)
			if err == nil {
				err = f.AddDependency(dn)
			}
			if err != nil {
				delete(fa.fields, name)
				return nil, fmt.Errorf("computed member %s.%s: %w", o.schema.name, name, err)
			}
		}
		return f, nil
	}

	if _, ok := o.schema.methods[name]; ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrNotRegistered, o.schema.name, name)
	}

	if _, ok := o.data[name]; ok {
		f := NewField(
			name,
			func() any { return o.Get(name) },
			WithSetter(func(v any) { o.Set(name, v) }),
			WithType(o.schema.types[name]),
		)
		o.bus.on(name, func() { f.MarkDirty(nil) })
		fa.fields[name] = f
		return f, nil
	}

	return nil, fmt.Errorf("%w: %s.%s", ErrUnknownMember, o.schema.name, name)
}
