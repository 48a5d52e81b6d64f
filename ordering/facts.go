package ordering

// DefaultPriority is the priority used by candidates that do not declare
// one. Lower values sort earlier; negative priorities are allowed.
const DefaultPriority = 0

// Facts holds the ordering metadata resolved for a single candidate.
type Facts struct {
	// Priority orders candidates numerically; lower sorts earlier.
	Priority int

	// Before lists candidates that must activate after this one.
	Before []string

	// After lists candidates that must activate before this one.
	After []string

	// Available reports whether the candidate's metadata could be
	// resolved at all. Unavailable candidates sort with neutral facts
	// when explicitly requested and are otherwise ignored.
	Available bool
}

// Provider resolves ordering facts for candidate names.
//
// Facts must be deterministic for the duration of a sort: the sorter may
// ask for the same name more than once and assumes identical answers.
type Provider interface {
	Facts(name string) Facts
}
