package autoconf

import (
	"sort"

	"github.com/spf13/viper"
)

// Configuration keys recognized by the viper-backed property source.
const (
	// ExcludeProperty lists candidate names to exclude from resolution.
	ExcludeProperty = "autoconf.exclude"

	// EnabledProperty toggles resolution entirely; absent means enabled.
	EnabledProperty = "autoconf.enabled"
)

// PropertySource exposes externally configured resolution properties.
type PropertySource interface {
	// ExcludedNames returns the configured exclusion list; an absent
	// key yields an empty list.
	ExcludedNames() []string

	// Enabled reports whether resolution should run at all.
	Enabled() bool
}

// ViperPropertySource binds resolution properties from a viper
// instance, the way host applications usually carry configuration.
type ViperPropertySource struct {
	v *viper.Viper

	// key overrides ExcludeProperty when non-empty.
	key string
}

// NewViperPropertySource creates a property source reading the standard
// keys from v.
func NewViperPropertySource(v *viper.Viper) *ViperPropertySource {
	return &ViperPropertySource{v: v}
}

// NewViperPropertySourceAt uses key instead of ExcludeProperty for the
// exclusion list.
func NewViperPropertySourceAt(v *viper.Viper, key string) *ViperPropertySource {
	return &ViperPropertySource{v: v, key: key}
}

// ExcludedNames returns the bound exclusion list.
func (p *ViperPropertySource) ExcludedNames() []string {
	key := p.key
	if key == "" {
		key = ExcludeProperty
	}
	return p.v.GetStringSlice(key)
}

// Enabled reports the bound enabled flag, defaulting to true.
func (p *ViperPropertySource) Enabled() bool {
	if !p.v.IsSet(EnabledProperty) {
		return true
	}
	return p.v.GetBool(EnabledProperty)
}

// exclusions computes the effective exclusion set for one trigger: the
// union of its identity excludes, its name-only excludes, and the
// externally configured property list.
func (s *Selector) exclusions(trigger Trigger) map[string]struct{} {
	excluded := make(map[string]struct{})
	for _, name := range trigger.Exclude {
		excluded[name] = struct{}{}
	}
	for _, name := range trigger.ExcludeName {
		excluded[name] = struct{}{}
	}
	if s.props != nil {
		for _, name := range s.props.ExcludedNames() {
			excluded[name] = struct{}{}
		}
	}
	return excluded
}

// checkExcluded validates the exclusion set against the candidate pool.
// An exclusion is invalid when the name is resolvable in the current
// environment yet absent from the pool; every invalid name is reported
// in one error. Unresolvable absent names pass silently, since
// exclusions are best-effort for identities the environment cannot
// materialize.
func checkExcluded(configurations []string, exclusions map[string]struct{}, store *CandidateStore) error {
	pool := make(map[string]struct{}, len(configurations))
	for _, name := range configurations {
		pool[name] = struct{}{}
	}

	var invalid []string
	for name := range exclusions {
		if _, present := pool[name]; present {
			continue
		}
		if store.Resolvable(name) {
			invalid = append(invalid, name)
		}
	}
	if len(invalid) == 0 {
		return nil
	}
	sort.Strings(invalid)
	return &InvalidExclusionsError{Names: invalid}
}

// removeExcluded drops excluded names from the pool, preserving order.
func removeExcluded(configurations []string, exclusions map[string]struct{}) []string {
	result := make([]string, 0, len(configurations))
	for _, name := range configurations {
		if _, excluded := exclusions[name]; !excluded {
			result = append(result, name)
		}
	}
	return result
}

// sortedExclusions renders an exclusion set in name order.
func sortedExclusions(exclusions map[string]struct{}) []string {
	names := make([]string, 0, len(exclusions))
	for name := range exclusions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
