package ordering

import "sort"

// Sorter produces the activation order for a set of candidate names.
//
// Sorting proceeds in three passes:
//  1. The requested names are sorted lexicographically.
//  2. A stable sort by priority refines that order; ties keep the
//     lexicographic order.
//  3. A depth-first constraint walk places every candidate after its
//     before/after prerequisites, visiting candidates in the order
//     established by the first two passes.
//
// The walk runs over the full candidate universe: names reachable
// through before/after references join it even when they were not
// requested, so their constraints still shape the relative order of
// requested candidates. They are dropped from the final result.
//
// A Sorter is stateless between calls and safe to reuse.
type Sorter struct {
	provider Provider
}

// NewSorter creates a sorter that resolves ordering facts from p.
func NewSorter(p Provider) *Sorter {
	return &Sorter{provider: p}
}

// InPriorityOrder returns the names in activation order.
//
// An empty input yields an empty order. A constraint cycle, including a
// candidate referencing itself, fails with a *CycleError.
func (s *Sorter) InPriorityOrder(names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}

	u := newUniverse(s.provider)
	u.add(names, true)

	ordered := make([]string, len(names))
	copy(ordered, names)
	sort.Strings(ordered)
	sort.SliceStable(ordered, func(i, j int) bool {
		return u.priority(ordered[i]) < u.priority(ordered[j])
	})

	// The walk starts from the priority-ordered requested names, then
	// sweeps up any universe nodes reachable only via constraints.
	visit := append(ordered, u.sortedNames()...)

	placed, err := s.walk(u, visit)
	if err != nil {
		return nil, err
	}

	requested := make(map[string]struct{}, len(names))
	for _, name := range names {
		requested[name] = struct{}{}
	}
	result := make([]string, 0, len(names))
	for _, name := range placed {
		if _, ok := requested[name]; ok {
			result = append(result, name)
		}
	}
	return result, nil
}

// Colors for the depth-first walk: unvisited, in progress, placed.
type nodeColor uint8

const (
	colorWhite nodeColor = iota
	colorGray
	colorBlack
)

// frame is one level of the explicit traversal stack. Using a stack
// instead of recursion keeps very large candidate pools from exhausting
// goroutine stack growth on deep constraint chains.
type frame struct {
	name string
	deps []string
	next int
}

func (s *Sorter) walk(u *universe, visit []string) ([]string, error) {
	colors := make(map[string]nodeColor, u.size())
	placed := make([]string, 0, u.size())
	var stack []frame

	for _, root := range visit {
		if colors[root] != colorWhite || !u.contains(root) {
			continue
		}
		colors[root] = colorGray
		stack = append(stack[:0], frame{name: root, deps: u.mustPrecede(root)})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(top.deps) {
				dep := top.deps[top.next]
				top.next++
				if !u.contains(dep) {
					// Reference to a candidate outside the working
					// universe; it cannot constrain anything.
					continue
				}
				switch colors[dep] {
				case colorGray:
					return nil, &CycleError{Current: top.name, Conflict: dep}
				case colorWhite:
					colors[dep] = colorGray
					stack = append(stack, frame{name: dep, deps: u.mustPrecede(dep)})
				}
			} else {
				colors[top.name] = colorBlack
				placed = append(placed, top.name)
				stack = stack[:len(stack)-1]
			}
		}
	}
	return placed, nil
}

// universe is the set of candidates participating in a single sort:
// every requested name plus every available candidate reachable through
// before/after references.
type universe struct {
	provider Provider
	facts    map[string]Facts

	// beforeOf[x] lists candidates that declared "before x", i.e.
	// additional prerequisites of x. Built once after add.
	beforeOf map[string][]string
	names    []string
}

func newUniverse(p Provider) *universe {
	return &universe{
		provider: p,
		facts:    make(map[string]Facts),
	}
}

// add resolves names into the universe. Requested names always join;
// names reached only through constraint references join when their
// facts are available. Available members pull in their own before/after
// references transitively.
func (u *universe) add(names []string, required bool) {
	for _, name := range names {
		if _, seen := u.facts[name]; seen {
			continue
		}
		f := u.provider.Facts(name)
		if required || f.Available {
			kept := f
			if !kept.Available {
				// Requested but unresolvable: participate with
				// neutral facts.
				kept = Facts{Priority: DefaultPriority}
			}
			u.facts[name] = kept
		}
		if f.Available {
			u.add(f.Before, false)
			u.add(f.After, false)
		}
	}
	u.beforeOf = nil
	u.names = nil
}

func (u *universe) contains(name string) bool {
	_, ok := u.facts[name]
	return ok
}

func (u *universe) size() int {
	return len(u.facts)
}

func (u *universe) priority(name string) int {
	return u.facts[name].Priority
}

// sortedNames returns every universe member in lexicographic order.
func (u *universe) sortedNames() []string {
	u.freeze()
	return u.names
}

// mustPrecede returns the candidates that must activate before name:
// the name's own after set plus every candidate declaring name in its
// before set. The result is name-sorted so walks are reproducible.
func (u *universe) mustPrecede(name string) []string {
	u.freeze()
	set := make(map[string]struct{})
	for _, after := range u.facts[name].After {
		set[after] = struct{}{}
	}
	for _, declarer := range u.beforeOf[name] {
		set[declarer] = struct{}{}
	}
	deps := make([]string, 0, len(set))
	for dep := range set {
		deps = append(deps, dep)
	}
	sort.Strings(deps)
	return deps
}

// freeze builds the sorted name list and the reverse before-index.
// Invalidated by add.
func (u *universe) freeze() {
	if u.names != nil {
		return
	}
	u.names = make([]string, 0, len(u.facts))
	for name := range u.facts {
		u.names = append(u.names, name)
	}
	sort.Strings(u.names)

	u.beforeOf = make(map[string][]string)
	for _, name := range u.names {
		for _, target := range u.facts[name].Before {
			u.beforeOf[target] = append(u.beforeOf[target], name)
		}
	}
}
