package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlan(t *testing.T) {
	plan, err := ParsePlan([]byte(`
selectors:
  - suite: JUnitBasicsTest
  - test: Calculator.broken
  - pattern: "*Adventure*"
`))
	require.NoError(t, err)
	assert.Equal(t, []PlanSelector{
		{Suite: "JUnitBasicsTest"},
		{Test: "Calculator.broken"},
		{Pattern: "*Adventure*"},
	}, plan.Selectors)
}

func TestParsePlan_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "two fields in one entry", yaml: "selectors:\n  - suite: A\n    test: A.b\n"},
		{name: "empty entry", yaml: "selectors:\n  - {}\n"},
		{name: "unknown key", yaml: "selectors:\n  - class: A\n"},
		{name: "not yaml", yaml: "selectors: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePlan([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParsePlan_Empty(t *testing.T) {
	plan, err := ParsePlan(nil)
	require.NoError(t, err)
	assert.Empty(t, plan.Selectors)
}

func TestLoadPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("selectors:\n  - suite: Calculator\n"), 0644))

	plan, err := LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, []PlanSelector{{Suite: "Calculator"}}, plan.Selectors)

	_, err = LoadPlan(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
