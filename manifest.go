package autoconf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/componentry/go-autoconf/ordering"
)

// Manifest declares a whole resolution session in one document: the
// candidate pool with per-candidate ordering declarations, and the
// triggers that contribute to the session.
//
//	candidates:
//	  - name: database
//	  - name: cache
//	    after: [database]
//	  - name: web
//	    priority: 10
//	triggers:
//	  - name: app
//	    exclude: [metrics]
type Manifest struct {
	Candidates []CandidateDecl `yaml:"candidates"`
	Triggers   []TriggerDecl   `yaml:"triggers,omitempty"`
}

// CandidateDecl declares one candidate configuration and its ordering
// annotations.
type CandidateDecl struct {
	Name     string   `yaml:"name"`
	Priority *int     `yaml:"priority,omitempty"`
	Before   []string `yaml:"before,omitempty"`
	After    []string `yaml:"after,omitempty"`
}

// TriggerDecl declares one contributing trigger.
type TriggerDecl struct {
	Name        string   `yaml:"name"`
	Exclude     []string `yaml:"exclude,omitempty"`
	ExcludeName []string `yaml:"excludeName,omitempty"`
}

// ParseManifest parses a YAML manifest and validates its declarations.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	seen := make(map[string]struct{}, len(m.Candidates))
	for i, decl := range m.Candidates {
		if decl.Name == "" {
			return nil, fmt.Errorf("parse manifest: candidate %d has no name", i)
		}
		if _, dup := seen[decl.Name]; dup {
			return nil, fmt.Errorf("parse manifest: duplicate candidate declaration %s", decl.Name)
		}
		seen[decl.Name] = struct{}{}
	}
	for i, decl := range m.Triggers {
		if decl.Name == "" {
			return nil, fmt.Errorf("parse manifest: trigger %d has no name", i)
		}
	}
	return &m, nil
}

// LoadManifest reads and parses a YAML manifest from path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	return ParseManifest(data)
}

// CandidateNames returns the declared candidate pool in declaration
// order.
func (m *Manifest) CandidateNames() []string {
	names := make([]string, len(m.Candidates))
	for i, decl := range m.Candidates {
		names[i] = decl.Name
	}
	return names
}

// Source returns a CandidateSource over the declared pool.
func (m *Manifest) Source() CandidateSource {
	return StaticCandidates(m.CandidateNames())
}

// Introspector returns an introspection fallback that resolves the
// declared candidates. Names absent from the manifest fail, making them
// unavailable to the store.
func (m *Manifest) Introspector() Introspector {
	decls := make(map[string]CandidateDecl, len(m.Candidates))
	for _, decl := range m.Candidates {
		decls[decl.Name] = decl
	}
	return IntrospectorFunc(func(name string) (ordering.Facts, error) {
		decl, ok := decls[name]
		if !ok {
			return ordering.Facts{}, fmt.Errorf("candidate %s is not declared", name)
		}
		priority := ordering.DefaultPriority
		if decl.Priority != nil {
			priority = *decl.Priority
		}
		return ordering.Facts{
			Priority: priority,
			Before:   decl.Before,
			After:    decl.After,
		}, nil
	})
}

// SessionTriggers converts the declared triggers, assigning each a
// generated ID. A manifest without triggers yields one default trigger
// named "manifest" so a bare candidate list still resolves.
func (m *Manifest) SessionTriggers() []Trigger {
	if len(m.Triggers) == 0 {
		return []Trigger{NewTrigger("manifest")}
	}
	triggers := make([]Trigger, len(m.Triggers))
	for i, decl := range m.Triggers {
		trigger := NewTrigger(decl.Name)
		trigger.Exclude = decl.Exclude
		trigger.ExcludeName = decl.ExcludeName
		triggers[i] = trigger
	}
	return triggers
}
