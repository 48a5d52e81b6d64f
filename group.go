package autoconf

import (
	"sort"

	"github.com/componentry/go-autoconf/ordering"
)

// Group accumulates contributions from independent triggers and merges
// them into one deduplicated, globally sorted sequence.
//
// A group serves exactly one resolution session: create it, call
// Contribute once per trigger, then Finalize. Finalize is intended to
// run once; calling it again on an unmodified group repeats the merge
// and yields the same answer.
type Group struct {
	selector *Selector
	sorter   *ordering.Sorter

	entries []Entry

	// owners records provenance with first-writer-wins semantics.
	owners map[string]Trigger
}

// NewGroup creates a resolution session from the given options.
func NewGroup(opts ...Option) (*Group, error) {
	selector, err := NewSelector(opts...)
	if err != nil {
		return nil, err
	}
	return newGroup(selector), nil
}

func newGroup(selector *Selector) *Group {
	return &Group{
		selector: selector,
		sorter:   ordering.NewSorter(selector.Store()),
		owners:   make(map[string]Trigger),
	}
}

// Contribute resolves one trigger's candidate set through the
// per-trigger pipeline and records it for the final merge. The first
// trigger to contribute a candidate becomes its provenance.
func (g *Group) Contribute(trigger Trigger) (Entry, error) {
	entry, err := g.selector.SelectImports(trigger)
	if err != nil {
		return EmptyEntry, err
	}
	g.entries = append(g.entries, entry)
	for _, name := range entry.configurations {
		if _, claimed := g.owners[name]; !claimed {
			g.owners[name] = trigger
		}
	}
	return entry, nil
}

// Finalize merges all contributions: exclusion sets are unioned,
// admitted sequences are unioned and deduplicated, the global
// exclusions are subtracted, and the remainder is sorted into the final
// activation order. Each selection carries the provenance recorded at
// contribution time.
//
// A group with zero contributions finalizes to an empty sequence
// without invoking the sorter.
func (g *Group) Finalize() ([]Selection, error) {
	if len(g.entries) == 0 {
		return nil, nil
	}

	allExclusions := make(map[string]struct{})
	for _, entry := range g.entries {
		for name := range entry.exclusions {
			allExclusions[name] = struct{}{}
		}
	}

	processed := make([]string, 0, len(g.owners))
	seen := make(map[string]struct{}, len(g.owners))
	for _, entry := range g.entries {
		for _, name := range entry.configurations {
			if _, dup := seen[name]; dup {
				continue
			}
			if _, excluded := allExclusions[name]; excluded {
				continue
			}
			seen[name] = struct{}{}
			processed = append(processed, name)
		}
	}

	ordered, err := g.sorter.InPriorityOrder(processed)
	if err != nil {
		return nil, err
	}

	selections := make([]Selection, len(ordered))
	for i, name := range ordered {
		selections[i] = Selection{Name: name, Source: g.owners[name]}
	}
	return selections, nil
}

// Exclusions returns the union of all per-trigger exclusion sets seen
// so far, in name order.
func (g *Group) Exclusions() []string {
	set := make(map[string]struct{})
	for _, entry := range g.entries {
		for name := range entry.exclusions {
			set[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
