package autoconf

// ImportEvent describes the outcome of one trigger's contribution: the
// admitted configurations and the exclusions applied to them.
type ImportEvent struct {
	// Trigger is the contributing call site.
	Trigger Trigger

	// Configurations are the admitted candidate names, in pool order.
	Configurations []string

	// Exclusions are the applied exclusions, in name order.
	Exclusions []string
}

// ImportListener observes per-trigger resolution outcomes. Listeners
// run synchronously in registration order at the end of each
// contribution; a panicking listener propagates to the caller, since a
// failing listener indicates a configuration fault the caller must see.
type ImportListener interface {
	OnImport(event ImportEvent)
}

// ImportListenerFunc adapts a function to the ImportListener interface.
type ImportListenerFunc func(event ImportEvent)

// OnImport calls f.
func (f ImportListenerFunc) OnImport(event ImportEvent) {
	f(event)
}

// fireImportEvents broadcasts the trigger's outcome to every registered
// listener.
func (s *Selector) fireImportEvents(trigger Trigger, configurations []string, exclusions map[string]struct{}) {
	if len(s.listeners) == 0 {
		return
	}
	event := ImportEvent{
		Trigger:        trigger,
		Configurations: configurations,
		Exclusions:     sortedExclusions(exclusions),
	}
	for _, listener := range s.listeners {
		listener.OnImport(event)
	}
}
