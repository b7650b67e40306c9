package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	xassert "xunit/internal/assert"
	"xunit/internal/cli"
	"xunit/internal/config"
	"xunit/internal/registry"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type harness struct {
	cfg *config.Config
	reg *registry.Registry
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	reg := registry.New()
	err := reg.Suite("Calculator").
		Test("addition", func() { xassert.Equals(4, 2+2) }).
		Test("divByZero", func() {
			zero := 0
			xassert.Throws(xassert.ArithmeticFault, func() { _ = 1 / zero })
		}).
		Test("broken", func() { xassert.Equals(1, 2) }).
		Err()
	require.NoError(t, err)

	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	return &harness{cfg: cfg, reg: reg}
}

// execute runs one CLI invocation against a fresh command tree
func (h *harness) execute(args ...string) (string, error) {
	root := &cobra.Command{Use: "xunit", SilenceUsage: true, SilenceErrors: true}
	var flags cli.Flags
	NewCommands(&Deps{Config: h.cfg, Logger: zap.NewNop(), Registry: h.reg}).Register(root, &flags)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRun_ReportsFailures(t *testing.T) {
	h := newHarness(t)

	out, err := h.execute("run", "--no-progress")
	require.ErrorIs(t, err, ErrTestsFailed)
	assert.EqualError(t, err, "tests failed: 1 of 3")

	assert.Contains(t, out, "Total tests: 3\n"+
		"Failed tests: 1\n"+
		"Some tests failed.\n"+
		"Failure in test: Calculator.broken\n"+
		"Reason: expected: <1> but was: <2>\n")

	_, err = os.Stat(h.cfg.GetOutputPath())
	assert.NoError(t, err)
}

func TestRun_Selectors(t *testing.T) {
	h := newHarness(t)

	out, err := h.execute("run", "--no-progress", "--select", "Calculator.addition", "--select", "Calculator.divByZero")
	require.NoError(t, err)
	assert.Contains(t, out, "Total tests: 2\nFailed tests: 0\nAll tests passed!\n")

	out, err = h.execute("run", "--no-progress", "--filter", "*add*")
	require.NoError(t, err)
	assert.Contains(t, out, "Total tests: 1\n")

	out, err = h.execute("run", "--no-progress", "--select", "Nope")
	require.NoError(t, err)
	assert.Equal(t, "No tests to execute\n", out)
}

func TestRun_Plan(t *testing.T) {
	h := newHarness(t)
	plan := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(plan, []byte("selectors:\n  - test: Calculator.broken\n  - pattern: \"*divBy*\"\n"), 0644))

	out, err := h.execute("run", "--no-progress", "--plan", plan)
	require.ErrorIs(t, err, ErrTestsFailed)
	assert.Contains(t, out, "Total tests: 2\nFailed tests: 1\n")

	require.NoError(t, os.WriteFile(plan, []byte("selectors:\n  - test: broken\n"), 0644))
	_, err = h.execute("run", "--no-progress", "--plan", plan)
	assert.ErrorContains(t, err, "must look like Suite.name")
}

func TestRun_OnlyFailed(t *testing.T) {
	h := newHarness(t)

	_, err := h.execute("run", "--no-progress", "--failed")
	require.ErrorIs(t, err, errNoPreviousRun)

	_, err = h.execute("run", "--no-progress")
	require.ErrorIs(t, err, ErrTestsFailed)

	out, err := h.execute("run", "--no-progress", "--failed")
	require.ErrorIs(t, err, ErrTestsFailed)
	assert.Contains(t, out, "Total tests: 1\nFailed tests: 1\n")

	_, err = h.execute("run", "--no-progress", "--select", "Calculator.addition")
	require.NoError(t, err)
	out, err = h.execute("run", "--no-progress", "--failed")
	require.NoError(t, err)
	assert.Equal(t, "No tests to execute\n", out)
}

func TestList(t *testing.T) {
	h := newHarness(t)

	out, err := h.execute("list")
	require.NoError(t, err)
	assert.Equal(t, "Found 1 suite(s) with 3 test(s):\n└── Calculator (3)\n", out)

	_, _ = h.execute("run", "--no-progress")

	out, err = h.execute("list", "--test-cases")
	require.NoError(t, err)
	assert.Equal(t, "Found 1 suite(s) with test cases:\n"+
		"└── Calculator\n"+
		"    ├── addition\n"+
		"    ├── divByZero\n"+
		"    └── broken [F]\n", out)

	out, err = h.execute("list", "--filter", "Other.*")
	require.NoError(t, err)
	assert.Equal(t, "No tests found\n", out)
}

func TestHistory(t *testing.T) {
	h := newHarness(t)

	out, err := h.execute("migrate")
	require.NoError(t, err)
	assert.Equal(t, "✓ History database is ready\n", out)

	out, err = h.execute("history")
	require.NoError(t, err)
	assert.Equal(t, "No runs recorded yet\n", out)

	_, err = h.execute("run", "--no-progress", "--history")
	require.ErrorIs(t, err, ErrTestsFailed)

	out, err = h.execute("history", "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Failures of run ")
	assert.Contains(t, out, "Calculator.broken (failed): expected: <1> but was: <2>")
}

func TestFailures_NoResults(t *testing.T) {
	h := newHarness(t)
	_, err := h.execute("failures")
	assert.ErrorContains(t, err, "read results file")
}

func TestFlags_ToConfigFlags(t *testing.T) {
	flags := cli.Flags{Selectors: []string{"Calculator"}, Verbose: true}
	got := flags.ToConfigFlags()

	assert.Equal(t, []string{"Calculator"}, got.Selectors)
	assert.True(t, got.Verbose)
	assert.Equal(t, config.DefaultHistoryLimit, got.Limit)
}
