package metadata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Record is one candidate's precomputed ordering metadata.
type Record struct {
	// Priority is nil when the candidate declares no priority.
	Priority *int `yaml:"priority,omitempty"`

	// Before lists candidates that must activate after this one.
	Before []string `yaml:"before,omitempty"`

	// After lists candidates that must activate before this one.
	After []string `yaml:"after,omitempty"`
}

// Table is an in-memory metadata source backed by a name→record map.
type Table struct {
	records map[string]Record
}

// NewTable creates a table from the given records. The map is used
// directly; callers must not mutate it afterwards.
func NewTable(records map[string]Record) *Table {
	if records == nil {
		records = make(map[string]Record)
	}
	return &Table{records: records}
}

// Priority returns the recorded priority for name. The second result is
// false when the name is unknown or its record declares no priority.
func (t *Table) Priority(name string) (int, bool) {
	rec, ok := t.records[name]
	if !ok || rec.Priority == nil {
		return 0, false
	}
	return *rec.Priority, true
}

// Before returns the recorded before set for name, or nil.
func (t *Table) Before(name string) []string {
	return t.records[name].Before
}

// After returns the recorded after set for name, or nil.
func (t *Table) After(name string) []string {
	return t.records[name].After
}

// WasPrecomputed reports whether the table has a record for name.
func (t *Table) WasPrecomputed(name string) bool {
	_, ok := t.records[name]
	return ok
}

// Len returns the number of records in the table.
func (t *Table) Len() int {
	return len(t.records)
}

// tableFile is the on-disk YAML layout:
//
//	candidates:
//	  web:
//	    priority: 10
//	    after: [database]
type tableFile struct {
	Candidates map[string]Record `yaml:"candidates"`
}

// ParseTable parses a YAML metadata table.
func ParseTable(data []byte) (*Table, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse metadata table: %w", err)
	}
	return NewTable(file.Candidates), nil
}

// LoadTable reads and parses a YAML metadata table from path.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata table %s: %w", path, err)
	}
	return ParseTable(data)
}

var _ Source = (*Table)(nil)
