// Package autoconf resolves which candidate configurations a component
// wiring should activate, and in what order.
//
// Given a pool of named candidate configurations, optionally annotated
// with before/after constraints and numeric priorities, the package
// applies exclusion rules and pluggable admission filters, then
// computes the unique deterministic activation order. It decides names
// and order only; it never instantiates anything.
//
// # Overview
//
// The package provides four main components:
//
//   - CandidateStore: lazily resolves per-candidate ordering facts from
//     precomputed metadata, falling back to introspection
//   - Selector: runs the per-trigger pipeline (dedupe, exclude, filter,
//     notify)
//   - Group: merges contributions from multiple triggers into one
//     globally sorted sequence with provenance
//   - ordering.Sorter: the priority- and constraint-aware sort
//
// # Quick Start
//
// The simplest way to resolve a manifest:
//
//	result, err := autoconf.ResolveFile("autoconf.yaml")
//
//	// Or from manifest content
//	result, err := autoconf.Resolve(manifestYAML)
//
//	// With collaborators
//	result, err := autoconf.ResolveFile("autoconf.yaml",
//	    autoconf.WithFilters(onlyEnabledProfiles),
//	    autoconf.WithViper(v),
//	)
//
// For full control over the session, drive the Group directly:
//
//	group, _ := autoconf.NewGroup(
//	    autoconf.WithCandidates("web", "cache", "database"),
//	    autoconf.WithMetadataSource(table),
//	)
//	entry, _ := group.Contribute(autoconf.NewTrigger("app"))
//	selections, _ := group.Finalize()
//
// # Single-threaded sessions
//
// A session (Group plus its store) runs synchronously within the
// calling goroutine and must not be shared across concurrent sessions.
// The store and the metadata chain tolerate concurrent lazy lookups,
// but the session types themselves are not synchronized.
package autoconf

import "fmt"

// Resolve resolves a full session from YAML manifest content.
//
// Every trigger declared in the manifest contributes once, in
// declaration order, and the merged result is returned. This is the
// recommended entry point for manifest-driven resolution.
func Resolve(manifestYAML []byte, opts ...Option) (*Result, error) {
	manifest, err := ParseManifest(manifestYAML)
	if err != nil {
		return nil, err
	}
	return ResolveManifest(manifest, opts...)
}

// ResolveFile resolves a full session from a YAML manifest file.
func ResolveFile(path string, opts ...Option) (*Result, error) {
	manifest, err := LoadManifest(path)
	if err != nil {
		return nil, err
	}
	result, err := ResolveManifest(manifest, opts...)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	return result, nil
}

// ResolveManifest resolves a full session from a parsed manifest. The
// manifest supplies the candidate pool and the introspection fallback;
// additional options may layer metadata sources, filters, listeners,
// and properties on top.
func ResolveManifest(manifest *Manifest, opts ...Option) (*Result, error) {
	base := []Option{
		WithCandidateSource(manifest.Source()),
		WithIntrospector(manifest.Introspector()),
	}
	group, err := NewGroup(append(base, opts...)...)
	if err != nil {
		return nil, err
	}

	for _, trigger := range manifest.SessionTriggers() {
		if _, err := group.Contribute(trigger); err != nil {
			return nil, err
		}
	}

	selections, err := group.Finalize()
	if err != nil {
		return nil, err
	}
	return &Result{Selections: selections, Exclusions: group.Exclusions()}, nil
}
