package autoconf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const separatorWidth = 60 // Width of separator lines in text output

// reportEntry is one line of the JSON report.
type reportEntry struct {
	Name    string `json:"name"`
	Trigger string `json:"trigger,omitempty"`
}

// report is the JSON report layout.
type report struct {
	Configurations []reportEntry `json:"configurations"`
	Exclusions     []string      `json:"exclusions,omitempty"`
}

// ToJSON renders the result as indented JSON.
func (r *Result) ToJSON() ([]byte, error) {
	out := report{
		Configurations: make([]reportEntry, len(r.Selections)),
		Exclusions:     r.Exclusions,
	}
	for i, sel := range r.Selections {
		out.Configurations[i] = reportEntry{Name: sel.Name, Trigger: sel.Source.Name}
	}
	return json.MarshalIndent(out, "", "  ")
}

// ToText renders a human-readable activation report.
func (r *Result) ToText() string {
	var buf bytes.Buffer

	buf.WriteString("Auto-Configuration Report\n")
	buf.WriteString(strings.Repeat("=", separatorWidth) + "\n\n")
	buf.WriteString(fmt.Sprintf("Selected configurations: %d\n", len(r.Selections)))
	buf.WriteString(fmt.Sprintf("Excluded configurations: %d\n", len(r.Exclusions)))
	buf.WriteString("\n")

	if len(r.Selections) > 0 {
		buf.WriteString("Activation Order:\n")
		for i, sel := range r.Selections {
			buf.WriteString(fmt.Sprintf("  %d. %s", i+1, sel.Name))
			if sel.Source.Name != "" {
				buf.WriteString(fmt.Sprintf(" (via %s)", sel.Source.Name))
			}
			buf.WriteString("\n")
		}
	}

	if len(r.Exclusions) > 0 {
		buf.WriteString("\nExclusions:\n")
		for _, name := range r.Exclusions {
			buf.WriteString(fmt.Sprintf("  - %s\n", name))
		}
	}

	return buf.String()
}
