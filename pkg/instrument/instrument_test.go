package instrument

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rados4y/statex/pkg/statex"
)

func TestMetricsCoordinatorDelegatesAndCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	coord := Metrics(statex.SyncCoordinator{}, WithRegistry(reg), WithNamespace("test"))

	f := statex.NewField("count", func() any { return 1 },
		statex.WithCoordinator(coord))
	notified := 0
	f.OnChange(func(src any) { notified++ })

	f.MarkDirty("tok")
	f.MarkDirty("tok")

	if notified != 2 {
		t.Fatalf("decorated coordinator must still flush, got %d notifications", notified)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	var dirtyTotal float64
	histSamples := uint64(0)
	for _, mf := range families {
		switch mf.GetName() {
		case "test_dirty_total":
			for _, m := range mf.GetMetric() {
				dirtyTotal += m.GetCounter().GetValue()
			}
		case "test_flush_duration_seconds":
			for _, m := range mf.GetMetric() {
				histSamples += m.GetHistogram().GetSampleCount()
			}
		}
	}
	if dirtyTotal != 2 {
		t.Errorf("expected 2 dirty registrations counted, got %v", dirtyTotal)
	}
	if histSamples != 2 {
		t.Errorf("expected 2 flush duration samples, got %d", histSamples)
	}
}

func TestTracingCoordinatorDelegates(t *testing.T) {
	coord := Tracing(statex.SyncCoordinator{}, WithTracerName("test"))

	f := statex.NewField("count", func() any { return 1 },
		statex.WithCoordinator(coord))
	notified := 0
	f.OnChange(func(src any) { notified++ })

	f.MarkDirty(nil)

	if notified != 1 {
		t.Errorf("traced coordinator must still flush, got %d notifications", notified)
	}
	if f.Dirty() {
		t.Error("field should be clean after the traced flush")
	}
}

func TestDecoratorsCompose(t *testing.T) {
	reg := prometheus.NewRegistry()
	coord := Metrics(
		Tracing(statex.SyncCoordinator{}),
		WithRegistry(reg),
	)

	f := statex.NewField("count", func() any { return 1 },
		statex.WithCoordinator(coord))
	notified := 0
	f.OnChange(func(src any) { notified++ })

	f.MarkDirty(nil)

	if notified != 1 {
		t.Errorf("composed decorators must still flush, got %d", notified)
	}
}
