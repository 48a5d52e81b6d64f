package ordering

import (
	"errors"
	"testing"
)

// mapProvider resolves facts from a fixed map. Names present in the map
// are available; everything else is unavailable.
type mapProvider map[string]Facts

func (m mapProvider) Facts(name string) Facts {
	f, ok := m[name]
	if !ok {
		return Facts{}
	}
	f.Available = true
	return f
}

func TestInPriorityOrder(t *testing.T) {
	tests := []struct {
		name     string
		provider mapProvider
		input    []string
		want     []string
	}{
		{
			name:     "no constraints sorts lexicographically",
			provider: mapProvider{"X": {}, "Y": {}, "Z": {}},
			input:    []string{"Z", "X", "Y"},
			want:     []string{"X", "Y", "Z"},
		},
		{
			name:     "after constraint reorders",
			provider: mapProvider{"A": {After: []string{"B"}}, "B": {}},
			input:    []string{"A", "B"},
			want:     []string{"B", "A"},
		},
		{
			name: "before constraint reorders",
			provider: mapProvider{
				"A": {},
				"B": {Before: []string{"A"}},
				"C": {},
			},
			input: []string{"A", "B", "C"},
			want:  []string{"B", "A", "C"},
		},
		{
			name: "priority refines lexicographic order",
			provider: mapProvider{
				"alpha": {},
				"beta":  {},
				"gamma": {Priority: -5},
			},
			input: []string{"alpha", "beta", "gamma"},
			want:  []string{"gamma", "alpha", "beta"},
		},
		{
			name: "constraint overrides priority",
			provider: mapProvider{
				"database": {Priority: 10},
				"web":      {Priority: -10, After: []string{"database"}},
			},
			input: []string{"web", "database"},
			want:  []string{"database", "web"},
		},
		{
			name:     "single candidate",
			provider: mapProvider{"only": {}},
			input:    []string{"only"},
			want:     []string{"only"},
		},
		{
			name: "transitive reference influences order without joining output",
			provider: mapProvider{
				"A": {After: []string{"M"}},
				"C": {},
				"M": {After: []string{"C"}},
			},
			input: []string{"A", "C"},
			want:  []string{"C", "A"},
		},
		{
			name:     "unavailable required candidate sorts with neutral facts",
			provider: mapProvider{"A": {}},
			input:    []string{"ghost", "A"},
			want:     []string{"A", "ghost"},
		},
		{
			name:     "unavailable reference is ignored",
			provider: mapProvider{"A": {After: []string{"ghost"}}},
			input:    []string{"A"},
			want:     []string{"A"},
		},
		{
			name: "chain of after constraints",
			provider: mapProvider{
				"web":      {After: []string{"cache"}},
				"cache":    {After: []string{"database"}},
				"database": {},
			},
			input: []string{"web", "cache", "database"},
			want:  []string{"database", "cache", "web"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewSorter(tt.provider).InPriorityOrder(tt.input)
			if err != nil {
				t.Fatalf("InPriorityOrder() error = %v", err)
			}
			if !equalOrder(got, tt.want) {
				t.Errorf("InPriorityOrder() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInPriorityOrder_Empty(t *testing.T) {
	got, err := NewSorter(mapProvider{}).InPriorityOrder(nil)
	if err != nil {
		t.Fatalf("InPriorityOrder(nil) error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("InPriorityOrder(nil) = %v, want empty", got)
	}
}

func TestInPriorityOrder_CycleDetection(t *testing.T) {
	tests := []struct {
		name     string
		provider mapProvider
		input    []string
	}{
		{
			name: "mutual after references",
			provider: mapProvider{
				"A": {After: []string{"B"}},
				"B": {After: []string{"A"}},
			},
			input: []string{"A", "B"},
		},
		{
			name: "mutual after references reversed input",
			provider: mapProvider{
				"A": {After: []string{"B"}},
				"B": {After: []string{"A"}},
			},
			input: []string{"B", "A"},
		},
		{
			name: "before and after forming a cycle",
			provider: mapProvider{
				"A": {Before: []string{"B"}},
				"B": {Before: []string{"A"}},
			},
			input: []string{"A", "B"},
		},
		{
			name:     "self reference",
			provider: mapProvider{"A": {After: []string{"A"}}},
			input:    []string{"A"},
		},
		{
			name: "cycle through transitive reference",
			provider: mapProvider{
				"A": {After: []string{"M"}},
				"M": {After: []string{"A"}},
			},
			input: []string{"A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSorter(tt.provider).InPriorityOrder(tt.input)
			if err == nil {
				t.Fatal("InPriorityOrder() expected cycle error, got nil")
			}
			var cycleErr *CycleError
			if !errors.As(err, &cycleErr) {
				t.Fatalf("InPriorityOrder() error = %v, want *CycleError", err)
			}
			if cycleErr.Current == "" || cycleErr.Conflict == "" {
				t.Errorf("CycleError missing participants: %+v", cycleErr)
			}
		})
	}
}

func TestInPriorityOrder_SelfReferenceError(t *testing.T) {
	provider := mapProvider{"A": {After: []string{"A"}}}
	_, err := NewSorter(provider).InPriorityOrder([]string{"A"})

	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("expected *CycleError, got %v", err)
	}
	if cycleErr.Current != "A" || cycleErr.Conflict != "A" {
		t.Errorf("CycleError = %+v, want both participants A", cycleErr)
	}
}

func TestInPriorityOrder_Idempotent(t *testing.T) {
	provider := mapProvider{
		"web":      {Priority: 5, After: []string{"cache"}},
		"cache":    {After: []string{"database"}},
		"database": {Priority: -1},
		"metrics":  {Before: []string{"web"}},
	}
	sorter := NewSorter(provider)

	first, err := sorter.InPriorityOrder([]string{"web", "cache", "database", "metrics"})
	if err != nil {
		t.Fatalf("first sort error = %v", err)
	}
	second, err := sorter.InPriorityOrder(first)
	if err != nil {
		t.Fatalf("second sort error = %v", err)
	}
	if !equalOrder(first, second) {
		t.Errorf("re-sorting changed the order: %v then %v", first, second)
	}
}

func TestInPriorityOrder_ConstraintEdgesHold(t *testing.T) {
	provider := mapProvider{
		"a": {After: []string{"b", "c"}},
		"b": {Before: []string{"d"}},
		"c": {},
		"d": {After: []string{"c"}},
		"e": {Priority: -100},
	}
	got, err := NewSorter(provider).InPriorityOrder([]string{"a", "b", "c", "d", "e"})
	if err != nil {
		t.Fatalf("InPriorityOrder() error = %v", err)
	}

	idx := make(map[string]int, len(got))
	for i, name := range got {
		idx[name] = i
	}
	edges := [][2]string{{"b", "a"}, {"c", "a"}, {"b", "d"}, {"c", "d"}}
	for _, edge := range edges {
		if idx[edge[0]] >= idx[edge[1]] {
			t.Errorf("constraint violated: %s should precede %s in %v", edge[0], edge[1], got)
		}
	}
}

func equalOrder(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
