package statex

import (
	"errors"
	"reflect"
	"testing"
)

func TestDeriveDo(t *testing.T) {
	n := UseVar("n", 2)
	doubled := n.Do(func(v any) any { return v.(int) * 2 })

	if got := doubled.Get(); got != 4 {
		t.Errorf("expected 4, got %v", got)
	}

	rec := &recorder{}
	doubled.OnChange(rec.listen)

	if err := n.Set(5); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if rec.count() != 1 {
		t.Errorf("derived field should flush once, got %d", rec.count())
	}
	if got := doubled.Get(); got != 10 {
		t.Errorf("expected 10 after source change, got %v", got)
	}
}

func TestDeriveEq(t *testing.T) {
	n := UseVar("n", 2)
	isTwo := n.Eq(2)

	if got := isTwo.Get(); got != true {
		t.Errorf("expected true, got %v", got)
	}
	if err := n.Set(3); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := isTwo.Get(); got != false {
		t.Errorf("expected false after change, got %v", got)
	}
}

func TestDeriveEqDeepValues(t *testing.T) {
	n := UseVar("pair", []any{1, 2})
	same := n.Eq([]any{1, 2})

	if got := same.Get(); got != true {
		t.Errorf("expected deep equality, got %v", got)
	}
}

func TestDeriveMap(t *testing.T) {
	items := UseVar("items", []any{1, 2, 3})
	scaled := items.Map(func(v any, i int) any { return v.(int) * 10 })

	got := scaled.Get()
	if !reflect.DeepEqual(got, []any{10, 20, 30}) {
		t.Errorf("expected scaled elements, got %v", got)
	}
}

func TestDeriveMapOverWrappedList(t *testing.T) {
	schema := NewSchema("Box").Init(func() map[string]any {
		return map[string]any{"items": []any{1, 2}}
	})
	o := New(schema)
	f := o.MustField("items")

	sums := f.Map(func(v any, i int) any { return v.(int) + i })
	got := sums.Get()
	if !reflect.DeepEqual(got, []any{1, 3}) {
		t.Errorf("expected mapped list, got %v", got)
	}
}

func TestDeriveMapNonSequence(t *testing.T) {
	n := UseVar("n", 1)
	mapped := n.Map(func(v any, i int) any { return v })

	if got := mapped.Get(); got != nil {
		t.Errorf("mapping a non-sequence should yield nil, got %v", got)
	}
}

func TestDeriveHasNoSetter(t *testing.T) {
	n := UseVar("n", 1)
	derived := n.Do(func(v any) any { return v })

	if err := derived.Set(2); !errors.Is(err, ErrNoSetter) {
		t.Errorf("derived field should have no setter, got %v", err)
	}
}

func TestInvoke(t *testing.T) {
	add := func(args ...any) any {
		total := 0
		for _, a := range args {
			total += a.(int)
		}
		return total
	}
	f := NewField("add", func() any { return add() }, WithApply(add))

	bound, err := f.Invoke(20, 22)
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if got := bound.Get(); got != 42 {
		t.Errorf("expected 42, got %v", got)
	}

	// The bound field is a dependent of its source.
	rec := &recorder{}
	bound.OnChange(rec.listen)
	f.MarkDirty("S")
	if rec.count() != 1 || rec.last() != "S" {
		t.Errorf("bound field should flush with source provenance, got %v", rec.calls)
	}
}

func TestInvokeRequiresApply(t *testing.T) {
	f := NewField("plain", func() any { return 1 })

	if _, err := f.Invoke(1); !errors.Is(err, ErrNotInvokable) {
		t.Errorf("expected ErrNotInvokable, got %v", err)
	}
}
