// Package ordering computes the activation order for candidate
// configurations.
//
// The sorter combines three ordering signals, applied in a fixed
// sequence:
//
//   - Lexicographic order of candidate names (the reproducible base)
//   - Numeric priority (lower values sort earlier, stable over the base)
//   - Before/after constraints (a depth-first constraint walk over the
//     priority order, with cycle detection)
//
// # Facts and Providers
//
// Ordering metadata is supplied per name through the Provider interface:
//
//	facts := provider.Facts("cache")
//	// facts.Priority, facts.Before, facts.After, facts.Available
//
// A candidate whose facts cannot be resolved (Available == false) still
// sorts when it was explicitly requested, using neutral facts. Names
// discovered only through before/after references of other candidates
// influence the walk but never appear in the result.
//
// # Sorting
//
//	sorter := ordering.NewSorter(provider)
//	ordered, err := sorter.InPriorityOrder(names)
//
// A before/after cycle (including a self-reference) fails with a
// *CycleError naming the two candidates whose revisit exposed it.
package ordering
