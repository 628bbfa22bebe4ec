package budget_test

import (
	"testing"

	"github.com/notesmgr/notectx/internal/budget"
)

func TestAllocateTiers(t *testing.T) {
	a := budget.NewAllocator(nil)
	cases := []struct {
		detail budget.DetailLevel
		want   budget.Budget
	}{
		{budget.DetailMinimal, budget.Budget{Readme: 500, Architecture: 1000, Glossary: 500, Snapshots: 1000, Total: 3000}},
		{budget.DetailStandard, budget.Budget{Readme: 1000, Architecture: 2000, Glossary: 1000, Snapshots: 4000, Total: 8000}},
		{budget.DetailComprehensive, budget.Budget{Readme: 2000, Architecture: 3000, Glossary: 2000, Snapshots: 8000, Total: 15000}},
	}
	for _, c := range cases {
		got := a.Allocate(c.detail, budget.FocusNone, 100000)
		if got != c.want {
			t.Errorf("%s: got %+v, want %+v", c.detail, got, c.want)
		}
	}
}

func TestAllocateUnknownDetailFallsBackToStandard(t *testing.T) {
	a := budget.NewAllocator(nil)
	got := a.Allocate("bogus", budget.FocusNone, 100000)
	want := a.Allocate(budget.DetailStandard, budget.FocusNone, 100000)
	if got != want {
		t.Fatalf("got %+v, want standard tier %+v", got, want)
	}
}

func TestAllocateFocusDoublesMappedComponent(t *testing.T) {
	a := budget.NewAllocator(nil)
	cases := []struct {
		focus budget.FocusArea
		check func(budget.Budget) (got, want int)
	}{
		{budget.FocusGeneral, func(b budget.Budget) (int, int) { return b.Readme, 2000 }},
		{budget.FocusArchitecture, func(b budget.Budget) (int, int) { return b.Architecture, 4000 }},
		{budget.FocusKnowledgeGraph, func(b budget.Budget) (int, int) { return b.Snapshots, 8000 }},
		{budget.FocusWorkflow, func(b budget.Budget) (int, int) { return b.Snapshots, 8000 }},
		{budget.FocusAgent, func(b budget.Budget) (int, int) { return b.Snapshots, 8000 }},
	}
	for _, c := range cases {
		b := a.Allocate(budget.DetailStandard, c.focus, 100000)
		if got, want := c.check(b); got != want {
			t.Errorf("focus %q: got %d, want %d", c.focus, got, want)
		}
		// Total keeps the tier value when no capping occurs.
		if b.Total != 8000 {
			t.Errorf("focus %q: total changed to %d", c.focus, b.Total)
		}
	}
}

func TestAllocateUnknownFocusIsNoop(t *testing.T) {
	a := budget.NewAllocator(nil)
	base := a.Allocate(budget.DetailStandard, budget.FocusNone, 100000)
	got := a.Allocate(budget.DetailStandard, "sideways", 100000)
	if got != base {
		t.Fatalf("got %+v, want %+v", got, base)
	}
}

func TestAllocateScalesDownToCap(t *testing.T) {
	a := budget.NewAllocator(nil)
	got := a.Allocate(budget.DetailStandard, budget.FocusNone, 4000)
	want := budget.Budget{Readme: 500, Architecture: 1000, Glossary: 500, Snapshots: 2000, Total: 4000}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestAllocateCapAppliesAfterFocusBoost(t *testing.T) {
	a := budget.NewAllocator(nil)
	// Boosted sum is 12000 against a cap of 8000, so the scale is 2/3.
	got := a.Allocate(budget.DetailStandard, budget.FocusKnowledgeGraph, 8000)
	want := budget.Budget{Readme: 666, Architecture: 1333, Glossary: 666, Snapshots: 5333, Total: 8000}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestAllocateNeverExceedsCap(t *testing.T) {
	a := budget.NewAllocator(nil)
	details := []budget.DetailLevel{budget.DetailMinimal, budget.DetailStandard, budget.DetailComprehensive, "bogus"}
	focuses := []budget.FocusArea{budget.FocusNone, budget.FocusGeneral, budget.FocusArchitecture, budget.FocusKnowledgeGraph, budget.FocusAgent}
	for _, d := range details {
		for _, f := range focuses {
			for _, max := range []int{100, 3000, 8000, 50000} {
				b := a.Allocate(d, f, max)
				if sum := b.ComponentSum(); sum > max {
					t.Errorf("detail=%s focus=%s max=%d: component sum %d exceeds cap", d, f, max, sum)
				}
			}
		}
	}
}

func TestAllocateDoesNotExpandUnderCap(t *testing.T) {
	a := budget.NewAllocator(nil)
	b := a.Allocate(budget.DetailMinimal, budget.FocusNone, 1000000)
	if b.ComponentSum() != 3000 || b.Total != 3000 {
		t.Fatalf("minimal tier changed under a large cap: %+v", b)
	}
}

func TestAllocateUsesInjectedTables(t *testing.T) {
	tables := map[budget.DetailLevel]budget.Budget{
		budget.DetailStandard: {Readme: 10, Architecture: 20, Glossary: 10, Snapshots: 40, Total: 80},
	}
	a := budget.NewAllocator(tables)
	b := a.Allocate(budget.DetailStandard, budget.FocusNone, 1000)
	if b.Readme != 10 || b.Snapshots != 40 {
		t.Fatalf("injected table not used: %+v", b)
	}
}

func TestAllocateDoesNotMutateTables(t *testing.T) {
	tables := budget.DefaultTables()
	a := budget.NewAllocator(tables)
	a.Allocate(budget.DetailStandard, budget.FocusArchitecture, 100)
	if tables[budget.DetailStandard].Architecture != 2000 {
		t.Fatalf("tier table mutated: %+v", tables[budget.DetailStandard])
	}
}
