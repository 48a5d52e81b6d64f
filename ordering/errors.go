package ordering

import "fmt"

// CycleError is returned when the before/after constraint graph contains
// a cycle reachable from the working set. Current is the candidate being
// placed and Conflict the prerequisite whose revisit exposed the cycle;
// the two are equal for a self-referencing constraint.
type CycleError struct {
	Current  string
	Conflict string
}

func (e *CycleError) Error() string {
	if e.Current == e.Conflict {
		return fmt.Sprintf("ordering cycle detected: %s references itself", e.Current)
	}
	return fmt.Sprintf("ordering cycle detected between %s and %s", e.Current, e.Conflict)
}
