package statex

import "errors"

// ErrNoSetter is returned when Set is called on a field that was built
// without a setter (computed and derived fields).
var ErrNoSetter = errors.New("statex: field has no setter")

// ErrNotRegistered is returned when a method member is requested as a
// reactive field but was never registered as computed on the schema.
//
// Register the member with Schema.Computed (or Schema.ComputedFunc) and
// declare its dependencies there.
var ErrNotRegistered = errors.New("statex: method is not registered as a computed field")

// ErrUnknownMember is returned when a member name matches neither a data
// member, a computed member, nor a method of the wrapped record.
var ErrUnknownMember = errors.New("statex: unknown member")

// ErrCyclicDependency is returned by AddDependency when the new edge
// would make the field reachable from itself. Cycles are rejected at
// registration time because dirty propagation does not guard against
// recursion.
var ErrCyclicDependency = errors.New("statex: cyclic dependency")

// ErrNotInvokable is returned by Invoke on a field whose accessor does
// not accept arguments.
var ErrNotInvokable = errors.New("statex: field accessor does not accept arguments")
