package autoconf

import "testing"

func TestImportListeners_FiredPerContribution(t *testing.T) {
	var events []ImportEvent
	record := ImportListenerFunc(func(event ImportEvent) {
		events = append(events, event)
	})

	selector, err := NewSelector(
		WithCandidates("alpha", "beta", "gamma"),
		WithListeners(record),
	)
	if err != nil {
		t.Fatal(err)
	}

	first := NewTrigger("web")
	first.ExcludeName = []string{"gamma"}
	second := NewTrigger("data")

	if _, err := selector.SelectImports(first); err != nil {
		t.Fatal(err)
	}
	if _, err := selector.SelectImports(second); err != nil {
		t.Fatal(err)
	}

	if len(events) != 2 {
		t.Fatalf("got %d events, want one per contribution", len(events))
	}
	if events[0].Trigger.Name != "web" || events[1].Trigger.Name != "data" {
		t.Errorf("event triggers = %s, %s; want web, data",
			events[0].Trigger.Name, events[1].Trigger.Name)
	}
	if got := events[0].Configurations; len(got) != 2 || got[0] != "alpha" || got[1] != "beta" {
		t.Errorf("first event configurations = %v, want [alpha beta]", got)
	}
	if got := events[0].Exclusions; len(got) != 1 || got[0] != "gamma" {
		t.Errorf("first event exclusions = %v, want [gamma]", got)
	}
	if got := events[1].Configurations; len(got) != 3 {
		t.Errorf("second event configurations = %v, want all three", got)
	}
}

func TestImportListeners_RegistrationOrder(t *testing.T) {
	var order []string
	mk := func(label string) ImportListener {
		return ImportListenerFunc(func(ImportEvent) {
			order = append(order, label)
		})
	}

	selector, err := NewSelector(
		WithCandidates("alpha"),
		WithListeners(mk("first"), mk("second")),
		WithListeners(mk("third")),
	)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := selector.SelectImports(NewTrigger("app")); err != nil {
		t.Fatal(err)
	}
	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "third" {
		t.Errorf("listener order = %v, want [first second third]", order)
	}
}
