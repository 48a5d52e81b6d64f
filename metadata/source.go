package metadata

// Source is a read-only lookup of precomputed ordering metadata.
//
// WasPrecomputed reports whether the source has any record for the
// name; the remaining methods answer only for precomputed names and
// return zero values otherwise. Priority's second result is false when
// the record exists but declares no priority.
type Source interface {
	Priority(name string) (int, bool)
	Before(name string) []string
	After(name string) []string
	WasPrecomputed(name string) bool
}
