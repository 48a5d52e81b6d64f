package autoconf

import (
	"fmt"
	"log/slog"

	"github.com/componentry/go-autoconf/metadata"
)

// Selector runs the per-trigger resolution pipeline: candidate
// discovery, deduplication, exclusion, admission filtering, and event
// notification. Sorting happens later, once per session, in the Group.
//
// A Selector is single-threaded and belongs to exactly one session.
type Selector struct {
	store      *CandidateStore
	source     metadata.Source
	candidates CandidateSource
	filters    []Filter
	listeners  []ImportListener
	props      PropertySource
	logger     *slog.Logger
}

// NewSelector creates a selector from the given options. Most callers
// use Group or the Resolve facade instead of a bare selector.
func NewSelector(opts ...Option) (*Selector, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.newSelector(), nil
}

func (c *config) newSelector() *Selector {
	return &Selector{
		store:      NewCandidateStore(c.source, c.introspector),
		source:     c.source,
		candidates: c.candidates,
		filters:    c.filters,
		listeners:  c.listeners,
		props:      c.props,
		logger:     c.log(),
	}
}

// Store returns the selector's candidate store, which also serves as
// the ordering facts provider for the session's sorter.
func (s *Selector) Store() *CandidateStore {
	return s.store
}

// SelectImports resolves one trigger's contribution.
//
// The pipeline loads the candidate pool, collapses duplicates (first
// occurrence wins), resolves and validates the trigger's exclusions,
// runs the admission filter chain, and finally notifies import
// listeners with the (configurations, exclusions) pair.
//
// A disabled session (per the property source) yields EmptyEntry. An
// empty candidate pool fails with ErrNoCandidates.
func (s *Selector) SelectImports(trigger Trigger) (Entry, error) {
	if s.props != nil && !s.props.Enabled() {
		return EmptyEntry, nil
	}

	names, err := s.candidates.Candidates()
	if err != nil {
		return EmptyEntry, fmt.Errorf("load candidate configurations: %w", err)
	}
	if len(names) == 0 {
		return EmptyEntry, ErrNoCandidates
	}

	configurations := removeDuplicates(names)
	exclusions := s.exclusions(trigger)
	if err := checkExcluded(configurations, exclusions, s.store); err != nil {
		return EmptyEntry, err
	}
	configurations = removeExcluded(configurations, exclusions)
	configurations = s.filter(configurations)

	s.logger.Debug("resolved trigger contribution",
		"trigger", trigger.Name,
		"admitted", len(configurations),
		"excluded", len(exclusions))
	s.fireImportEvents(trigger, configurations, exclusions)
	return NewEntry(configurations, sortedExclusions(exclusions)), nil
}

// removeDuplicates collapses repeated names, keeping first occurrences
// in their original positions.
func removeDuplicates(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}
	return result
}
