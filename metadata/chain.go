package metadata

import "sync"

// Chain composes multiple sources with first-match semantics.
//
// Lookups try sources in order; the first source that has a record for
// a name answers, and the chain remembers that source so every later
// lookup for the same name goes straight to it. Names unknown to all
// sources are not memoized, so a source added later in the session
// would still be consulted.
//
// Chain is safe for concurrent lookups.
type Chain struct {
	sources []Source

	// nameSource tracks which source answered for each name.
	nameSource   map[string]int
	nameSourceMu sync.RWMutex
}

// NewChain creates a chain over the given sources, tried in order.
func NewChain(sources ...Source) *Chain {
	return &Chain{
		sources:    sources,
		nameSource: make(map[string]int),
	}
}

// lookup returns the source that has a record for name, memoizing the
// source index on first success.
func (c *Chain) lookup(name string) (Source, bool) {
	c.nameSourceMu.RLock()
	idx, found := c.nameSource[name]
	c.nameSourceMu.RUnlock()

	if found {
		return c.sources[idx], true
	}

	for i, source := range c.sources {
		if !source.WasPrecomputed(name) {
			continue
		}
		c.nameSourceMu.Lock()
		if _, exists := c.nameSource[name]; !exists {
			c.nameSource[name] = i
		}
		c.nameSourceMu.Unlock()
		return source, true
	}
	return nil, false
}

// Priority returns the priority recorded by the first matching source.
func (c *Chain) Priority(name string) (int, bool) {
	source, ok := c.lookup(name)
	if !ok {
		return 0, false
	}
	return source.Priority(name)
}

// Before returns the before set recorded by the first matching source.
func (c *Chain) Before(name string) []string {
	source, ok := c.lookup(name)
	if !ok {
		return nil
	}
	return source.Before(name)
}

// After returns the after set recorded by the first matching source.
func (c *Chain) After(name string) []string {
	source, ok := c.lookup(name)
	if !ok {
		return nil
	}
	return source.After(name)
}

// WasPrecomputed reports whether any source has a record for name.
func (c *Chain) WasPrecomputed(name string) bool {
	_, ok := c.lookup(name)
	return ok
}

var _ Source = (*Chain)(nil)
