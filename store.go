package autoconf

import (
	"sync"

	"github.com/componentry/go-autoconf/metadata"
	"github.com/componentry/go-autoconf/ordering"
)

// Introspector resolves ordering declarations directly from a candidate
// when no precomputed metadata exists for it. Implementations return an
// error for names that cannot be resolved in the current environment;
// the store records such names as unavailable.
type Introspector interface {
	Introspect(name string) (ordering.Facts, error)
}

// IntrospectorFunc adapts a function to the Introspector interface.
type IntrospectorFunc func(name string) (ordering.Facts, error)

// Introspect calls f.
func (f IntrospectorFunc) Introspect(name string) (ordering.Facts, error) {
	return f(name)
}

// CandidateStore lazily resolves ordering facts per candidate name.
//
// Resolution takes two paths: the fast path consults the metadata
// source when it has a precomputed record for the name; otherwise the
// introspector examines the candidate directly. Results, including
// negative ones, are cached for the remainder of the session, so the
// introspector runs at most once per name.
//
// The cache is guarded by a mutex, so a store tolerates concurrent
// lazy resolution, but a store instance is meant to serve exactly one
// resolution session. Sessions must not share a store.
type CandidateStore struct {
	source       metadata.Source
	introspector Introspector

	mu    sync.Mutex
	cache map[string]ordering.Facts
}

// NewCandidateStore creates a store over the given metadata source and
// introspection fallback. Either may be nil, in which case that path is
// skipped.
func NewCandidateStore(source metadata.Source, introspector Introspector) *CandidateStore {
	return &CandidateStore{
		source:       source,
		introspector: introspector,
		cache:        make(map[string]ordering.Facts),
	}
}

// Facts resolves ordering facts for name, consulting the cache first.
// Names neither path can resolve come back with Available == false and
// neutral facts.
func (s *CandidateStore) Facts(name string) ordering.Facts {
	s.mu.Lock()
	defer s.mu.Unlock()

	if facts, ok := s.cache[name]; ok {
		return facts
	}
	facts := s.resolve(name)
	s.cache[name] = facts
	return facts
}

// Resolvable reports whether name denotes a candidate the current
// environment can materialize at all.
func (s *CandidateStore) Resolvable(name string) bool {
	return s.Facts(name).Available
}

func (s *CandidateStore) resolve(name string) ordering.Facts {
	if s.source != nil && s.source.WasPrecomputed(name) {
		priority, ok := s.source.Priority(name)
		if !ok {
			priority = ordering.DefaultPriority
		}
		return ordering.Facts{
			Priority:  priority,
			Before:    s.source.Before(name),
			After:     s.source.After(name),
			Available: true,
		}
	}
	if s.introspector != nil {
		facts, err := s.introspector.Introspect(name)
		if err == nil {
			facts.Available = true
			return facts
		}
	}
	return ordering.Facts{Priority: ordering.DefaultPriority}
}

var _ ordering.Provider = (*CandidateStore)(nil)
