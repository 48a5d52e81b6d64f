// Package metadata supplies precomputed ordering metadata for candidate
// configurations.
//
// A Source answers per-name lookups for priority and before/after
// constraint sets without introspecting the candidate itself. The
// typical producer is a build step that writes the table to a YAML
// file; consumers load it once per session:
//
//	table, err := metadata.LoadTable("autoconf-metadata.yaml")
//
// Multiple sources compose with first-match semantics:
//
//	source := metadata.NewChain(projectTable, frameworkTable)
//
// The chain remembers which source answered for each name, so all
// lookups for that name keep hitting the same source.
package metadata
