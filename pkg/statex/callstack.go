package statex

import (
	"runtime"
	"sync"
)

// The call-boundary batcher tracks the depth of nested instrumented
// calls per goroutine and per object graph. The root's begin hook fires
// when the first instrumented call enters on a goroutine; the end hook
// fires when the last one returns. Concurrent call chains on different
// goroutines bracket independently even when they share a graph.

// callStacks maps goroutine ID to that goroutine's per-root call-name
// stacks. Entries are removed when a goroutine's stacks empty out, so
// the map only holds goroutines currently inside instrumented calls.
var callStacks sync.Map // uint64 -> map[*Object][]string

// goroutineID extracts the current goroutine's ID from the runtime
// stack header ("goroutine <id> ..."). Implementation detail; never
// exposed.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := len("goroutine "); i < n; i++ {
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// goroutineStacks returns the per-root stacks for the current goroutine,
// creating them on first use.
func goroutineStacks() map[*Object][]string {
	gid := goroutineID()
	if v, ok := callStacks.Load(gid); ok {
		return v.(map[*Object][]string)
	}
	stacks := make(map[*Object][]string)
	callStacks.Store(gid, stacks)
	return stacks
}

// enterCall pushes an instrumented call onto the stack for root, firing
// the root's begin hook first when the stack was empty.
func enterCall(root *Object, name string) {
	stacks := goroutineStacks()
	st := stacks[root]
	if len(st) == 0 {
		logger.Debug().Str("call", name).Msg("outermost instrumented call begins")
		if root.onCallBegin != nil {
			root.onCallBegin()
		}
	}
	stacks[root] = append(st, name)
}

// exitCall pops the innermost instrumented call for root, firing the
// root's end hook when the stack empties.
func exitCall(root *Object) {
	gid := goroutineID()
	v, ok := callStacks.Load(gid)
	if !ok {
		return
	}
	stacks := v.(map[*Object][]string)
	st := stacks[root]
	if len(st) == 0 {
		return
	}
	name := st[len(st)-1]
	st = st[:len(st)-1]
	if len(st) == 0 {
		delete(stacks, root)
		if len(stacks) == 0 {
			callStacks.Delete(gid)
		}
		logger.Debug().Str("call", name).Msg("outermost instrumented call ends")
		if root.onCallEnd != nil {
			root.onCallEnd()
		}
		return
	}
	stacks[root] = st
}
