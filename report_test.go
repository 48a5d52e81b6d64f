package autoconf

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

func reportResult() *Result {
	app := Trigger{ID: "t-1", Name: "app"}
	return &Result{
		Selections: []Selection{
			{Name: "database", Source: app},
			{Name: "cache", Source: app},
			{Name: "web", Source: app},
		},
		Exclusions: []string{"metrics"},
	}
}

func TestReportText(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "report_text", []byte(reportResult().ToText()))
}

func TestReportJSON(t *testing.T) {
	data, err := reportResult().ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	g := goldie.New(t)
	g.Assert(t, "report_json", data)
}

func TestReportText_Empty(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "report_empty", []byte((&Result{}).ToText()))
}
