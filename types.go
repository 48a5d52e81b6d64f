package autoconf

import (
	"sort"

	"github.com/google/uuid"
)

// Trigger identifies one independent call site contributing candidate
// configurations to a resolution session. Several triggers may request
// overlapping candidates; the first trigger to contribute a candidate
// becomes its recorded provenance.
type Trigger struct {
	// ID uniquely identifies the trigger within a session.
	ID string

	// Name is a human-readable label used in reports.
	Name string

	// Exclude lists candidates this trigger excludes by identity.
	Exclude []string

	// ExcludeName lists candidates this trigger excludes by name only,
	// without requiring the identity to be resolvable at declaration
	// time.
	ExcludeName []string

	// Attributes carries arbitrary trigger metadata for listeners and
	// reports. The resolution pipeline never reads it.
	Attributes map[string]string
}

// NewTrigger creates a trigger with a generated unique ID.
func NewTrigger(name string) Trigger {
	return Trigger{ID: uuid.NewString(), Name: name}
}

// Entry is the immutable result of a single trigger's contribution: the
// admitted candidate names in discovery order plus the exclusions that
// were applied to them.
type Entry struct {
	configurations []string
	exclusions     map[string]struct{}
}

// EmptyEntry represents a contribution that admitted nothing.
var EmptyEntry = Entry{}

// NewEntry creates an entry from admitted configurations and applied
// exclusions. Both inputs are copied.
func NewEntry(configurations, exclusions []string) Entry {
	e := Entry{
		configurations: make([]string, len(configurations)),
		exclusions:     make(map[string]struct{}, len(exclusions)),
	}
	copy(e.configurations, configurations)
	for _, name := range exclusions {
		e.exclusions[name] = struct{}{}
	}
	return e
}

// Configurations returns the admitted candidate names in order.
func (e Entry) Configurations() []string {
	out := make([]string, len(e.configurations))
	copy(out, e.configurations)
	return out
}

// Exclusions returns the applied exclusions in name order.
func (e Entry) Exclusions() []string {
	out := make([]string, 0, len(e.exclusions))
	for name := range e.exclusions {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// IsEmpty reports whether the entry admitted no configurations.
func (e Entry) IsEmpty() bool {
	return len(e.configurations) == 0
}

// Selection pairs a selected configuration with the trigger that first
// requested it.
type Selection struct {
	// Name is the candidate configuration name.
	Name string

	// Source is the trigger whose contribution first included Name.
	Source Trigger
}

// Result is the outcome of a full resolution session: the globally
// ordered selections plus the union of all applied exclusions.
type Result struct {
	Selections []Selection
	Exclusions []string
}

// Names returns the selected configuration names in activation order.
func (r *Result) Names() []string {
	names := make([]string, len(r.Selections))
	for i, sel := range r.Selections {
		names[i] = sel.Name
	}
	return names
}

// CandidateSource supplies the raw candidate pool for a session. The
// discovery mechanism itself (files, embedding, code generation) is up
// to the caller.
type CandidateSource interface {
	Candidates() ([]string, error)
}

// StaticCandidates is a fixed candidate pool.
type StaticCandidates []string

// Candidates returns the pool as-is.
func (s StaticCandidates) Candidates() ([]string, error) {
	return s, nil
}
