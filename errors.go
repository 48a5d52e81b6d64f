package autoconf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/componentry/go-autoconf/ordering"
)

// ErrNoCandidates indicates the candidate source produced zero names.
// An empty pool is treated as a configuration fault, not a valid empty
// result: it almost always means a missing or misread candidate
// manifest.
var ErrNoCandidates = errors.New("no candidate configurations found")

// ConstraintCycleError is an alias for the ordering package's cycle
// error so callers can match it without importing ordering directly.
type ConstraintCycleError = ordering.CycleError

// InvalidExclusionsError is returned when one or more excluded names
// are resolvable in the current environment but absent from the
// candidate pool. All offending names are reported together.
type InvalidExclusionsError struct {
	// Names lists every invalid exclusion, in name order.
	Names []string
}

func (e *InvalidExclusionsError) Error() string {
	if len(e.Names) == 1 {
		return fmt.Sprintf("excluded configuration %s is not a candidate", e.Names[0])
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d excluded configurations are not candidates:", len(e.Names))
	for _, name := range e.Names {
		sb.WriteString("\n  - ")
		sb.WriteString(name)
	}
	return sb.String()
}
