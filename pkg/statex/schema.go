package statex

import "reflect"

// Method is a callable member of a record. It runs with the wrapped
// Object as receiver and is bracketed by the call-boundary batcher.
type Method func(o *Object, args ...any) any

// computedDef is one entry of the registration table: the compute
// function for a computed member plus the names of the members it
// depends on.
type computedDef struct {
	fn    func(o *Object) any
	apply func(o *Object, args ...any) any
	deps  []string
}

// Schema is the registration table for a record kind: its data members
// (via the Init value factory), computed members with declared
// dependencies, callable members, and optional per-member type
// annotations. Build one per record kind at setup time, then instantiate
// with New.
type Schema struct {
	name     string
	init     func() map[string]any
	computed map[string]*computedDef
	methods  map[string]Method
	types    map[string]reflect.Type
}

// NewSchema starts a schema with the given diagnostic name.
func NewSchema(name string) *Schema {
	return &Schema{
		name:     name,
		computed: make(map[string]*computedDef),
		methods:  make(map[string]Method),
		types:    make(map[string]reflect.Type),
	}
}

// Init sets the zero-argument value factory producing the record's
// initial data members.
func (s *Schema) Init(fn func() map[string]any) *Schema {
	s.init = fn
	return s
}

// Computed registers a computed member with its declared dependency
// names. Dependencies may be empty, and each name may itself be a plain
// or computed member.
func (s *Schema) Computed(name string, fn func(o *Object) any, deps ...string) *Schema {
	s.computed[name] = &computedDef{fn: fn, deps: deps}
	return s
}

// ComputedFunc registers a computed member whose accessor takes
// arguments, enabling Field.Invoke on the resulting node. Reading the
// field without Invoke calls fn with no arguments.
func (s *Schema) ComputedFunc(name string, fn func(o *Object, args ...any) any, deps ...string) *Schema {
	s.computed[name] = &computedDef{
		fn:    func(o *Object) any { return fn(o) },
		apply: fn,
		deps:  deps,
	}
	return s
}

// Method registers a callable member. Methods are not reactive fields;
// requesting one via Object.Field fails with ErrNotRegistered unless it
// was also registered as computed.
func (s *Schema) Method(name string, fn Method) *Schema {
	s.methods[name] = fn
	return s
}

// Typed records a declared value type for a member. Diagnostic only;
// absence is tolerated everywhere.
func (s *Schema) Typed(name string, t reflect.Type) *Schema {
	s.types[name] = t
	return s
}

// Name returns the schema's diagnostic name.
func (s *Schema) Name() string { return s.name }

// NewRecord runs the Init factory and returns a plain, unwrapped record.
func (s *Schema) NewRecord() *Record {
	data := map[string]any{}
	if s.init != nil {
		data = s.init()
	}
	return &Record{schema: s, data: data}
}

// Record is a plain record value: instance data plus the schema that
// defines its members. Assigning a Record into a wrapped slot (or
// passing it to Wrap) turns it into an Object.
type Record struct {
	schema *Schema
	data   map[string]any
}

// Schema returns the record's defining schema.
func (r *Record) Schema() *Schema { return r.schema }
