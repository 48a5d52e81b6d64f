package autoconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleManifest = `
candidates:
  - name: web
    after: [cache]
  - name: database
    priority: -10
  - name: cache
    after: [database]
  - name: metrics
triggers:
  - name: app
    exclude: [metrics]
`

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(exampleManifest))
	require.NoError(t, err)

	assert.Equal(t, []string{"web", "database", "cache", "metrics"}, m.CandidateNames())
	require.Len(t, m.Triggers, 1)
	assert.Equal(t, "app", m.Triggers[0].Name)
	assert.Equal(t, []string{"metrics"}, m.Triggers[0].Exclude)

	require.Len(t, m.Candidates, 4)
	require.NotNil(t, m.Candidates[1].Priority)
	assert.Equal(t, -10, *m.Candidates[1].Priority)
	assert.Equal(t, []string{"cache"}, m.Candidates[0].After)
}

func TestParseManifest_DuplicateCandidate(t *testing.T) {
	_, err := ParseManifest([]byte(`
candidates:
  - name: web
  - name: web
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate candidate declaration web")
}

func TestParseManifest_MissingName(t *testing.T) {
	_, err := ParseManifest([]byte(`
candidates:
  - priority: 5
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no name")
}

func TestManifestIntrospector(t *testing.T) {
	m, err := ParseManifest([]byte(exampleManifest))
	require.NoError(t, err)

	intr := m.Introspector()
	facts, err := intr.Introspect("database")
	require.NoError(t, err)
	assert.Equal(t, -10, facts.Priority)

	facts, err = intr.Introspect("web")
	require.NoError(t, err)
	assert.Equal(t, []string{"cache"}, facts.After)

	_, err = intr.Introspect("undeclared")
	assert.Error(t, err)
}

func TestManifestSessionTriggers(t *testing.T) {
	m, err := ParseManifest([]byte(exampleManifest))
	require.NoError(t, err)

	triggers := m.SessionTriggers()
	require.Len(t, triggers, 1)
	assert.Equal(t, "app", triggers[0].Name)
	assert.NotEmpty(t, triggers[0].ID)
	assert.Equal(t, []string{"metrics"}, triggers[0].Exclude)
}

func TestManifestSessionTriggers_Default(t *testing.T) {
	m, err := ParseManifest([]byte(`
candidates:
  - name: web
`))
	require.NoError(t, err)

	triggers := m.SessionTriggers()
	require.Len(t, triggers, 1)
	assert.Equal(t, "manifest", triggers[0].Name)
}
