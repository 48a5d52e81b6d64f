package autoconf

import "github.com/componentry/go-autoconf/metadata"

// Filter votes on each candidate position before sorting. Match
// receives the full candidate array, already deduplicated and stripped
// of exclusions, together with the session's metadata source, and
// returns one boolean per position: true keeps the candidate.
//
// Filters must be deterministic and must not mutate the candidate
// array. A returned mask shorter than the array leaves the tail
// admitted.
type Filter interface {
	Match(candidates []string, source metadata.Source) []bool
}

// FilterFunc adapts a function to the Filter interface.
type FilterFunc func(candidates []string, source metadata.Source) []bool

// Match calls f.
func (f FilterFunc) Match(candidates []string, source metadata.Source) []bool {
	return f(candidates, source)
}

// filter runs the admission filter chain over the candidate array.
// Filters run in registration order against the same positional array;
// a candidate is dropped when any filter rejects its position.
func (s *Selector) filter(configurations []string) []string {
	if len(s.filters) == 0 {
		return configurations
	}

	skip := make([]bool, len(configurations))
	skipped := false
	for _, f := range s.filters {
		match := f.Match(configurations, s.source)
		for i := 0; i < len(match) && i < len(configurations); i++ {
			if !match[i] {
				skip[i] = true
				skipped = true
			}
		}
	}
	if !skipped {
		return configurations
	}

	result := make([]string, 0, len(configurations))
	for i, name := range configurations {
		if !skip[i] {
			result = append(result, name)
		}
	}
	s.logger.Debug("filtered candidate configurations",
		"dropped", len(configurations)-len(result),
		"remaining", len(result))
	return result
}
