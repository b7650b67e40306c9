package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"xunit/internal/domain"
	"xunit/internal/report"
	"xunit/internal/storage"
)

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// PrintSummary prints the statistics table, the text report and a tree of
// the failed tests grouped by suite
func (f *Formatter) PrintSummary(runID string, summary report.Summary, verbose bool) {
	fmt.Fprintln(f.out)
	cyan := color.New(color.FgCyan)
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                    Test Execution Statistics                  ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")

	t := newTable()
	t.AppendRow(table.Row{"Total Tests", summary.Found})
	t.AppendRow(table.Row{"Passed Tests", color.GreenString("%d", summary.Passed)})
	t.AppendRow(table.Row{"Failed Tests", color.RedString("%d", summary.Failed)})
	t.AppendRow(table.Row{"Errored Tests", color.RedString("%d", summary.Errored)})
	t.AppendRow(table.Row{"Duration", fmt.Sprintf("%.3fs", summary.Duration.Seconds())})
	if runID != "" {
		t.AppendRow(table.Row{"Run ID", runID})
	}
	fmt.Fprintln(f.out, t.Render())
	fmt.Fprintln(f.out)

	if verbose {
		fmt.Fprint(f.out, report.RenderVerbose(summary))
	} else {
		fmt.Fprint(f.out, report.Render(summary))
	}

	if summary.OK() {
		fmt.Fprintln(f.out)
		color.New(color.FgGreen).Fprintln(f.out, "✓ All tests passed!")
		return
	}
	fmt.Fprintln(f.out)
	color.New(color.FgRed).Fprintf(f.out, "✗ %d test(s) failed, %d errored\n", summary.Failed, summary.Errored)
	fmt.Fprintln(f.out)
	f.printFailedTestsTree(summary.Failures)
}

// printFailedTestsTree prints failures under their suite, keeping run order
func (f *Formatter) printFailedTestsTree(failures []report.FailureRecord) {
	var suites []string
	bySuite := make(map[string][]report.FailureRecord)
	for _, failure := range failures {
		if _, ok := bySuite[failure.ID.Suite]; !ok {
			suites = append(suites, failure.ID.Suite)
		}
		bySuite[failure.ID.Suite] = append(bySuite[failure.ID.Suite], failure)
	}

	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)
	for _, suite := range suites {
		yellow.Fprintln(f.out, suite)
		for _, failure := range bySuite[suite] {
			red.Fprintf(f.out, "  |_ %s", failure.ID.Name)
			fmt.Fprintf(f.out, " (%s): %s\n", failure.Status, firstLine(failure.Message))
		}
	}
}

// PrintTestList prints the suites of the given tests, optionally with their
// test cases. Tests in failed (from the last run) are marked with [F].
func (f *Formatter) PrintTestList(tests []domain.TestID, showTestCases bool, failed map[domain.TestID]struct{}) {
	var suites []string
	bySuite := make(map[string][]string)
	for _, id := range tests {
		if _, ok := bySuite[id.Suite]; !ok {
			suites = append(suites, id.Suite)
		}
		bySuite[id.Suite] = append(bySuite[id.Suite], id.Name)
	}

	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)
	marker := func(ids ...domain.TestID) string {
		for _, id := range ids {
			if _, ok := failed[id]; ok {
				return " " + color.RedString("[F]")
			}
		}
		return ""
	}

	if !showTestCases {
		green.Fprintf(f.out, "Found %d suite(s) with %d test(s):\n", len(suites), len(tests))
		for i, suite := range suites {
			ids := make([]domain.TestID, 0, len(bySuite[suite]))
			for _, name := range bySuite[suite] {
				ids = append(ids, domain.TestID{Suite: suite, Name: name})
			}
			cyan.Fprintf(f.out, "%s%s (%d)", branch(i == len(suites)-1), suite, len(ids))
			fmt.Fprintln(f.out, marker(ids...))
		}
		return
	}

	green.Fprintf(f.out, "Found %d suite(s) with test cases:\n", len(suites))
	for i, suite := range suites {
		isLastSuite := i == len(suites)-1
		cyan.Fprintf(f.out, "%s%s", branch(isLastSuite), suite)
		fmt.Fprintln(f.out)

		indent := "│   "
		if isLastSuite {
			indent = "    "
		}
		names := bySuite[suite]
		for j, name := range names {
			fmt.Fprintf(f.out, "%s%s%s%s\n", indent, branch(j == len(names)-1),
				color.YellowString(name), marker(domain.TestID{Suite: suite, Name: name}))
		}
		if !isLastSuite {
			fmt.Fprintln(f.out)
		}
	}
}

// PrintHistory prints past runs, newest first
func (f *Formatter) PrintHistory(runs []storage.RunRecord) {
	if len(runs) == 0 {
		color.New(color.FgYellow).Fprintln(f.out, "No runs recorded yet")
		return
	}

	t := newTable()
	t.AppendHeader(table.Row{"Run", "Started", "Total", "Passed", "Failed", "Errored", "Duration"})
	for _, r := range runs {
		t.AppendRow(table.Row{
			shortID(r.ID),
			r.StartedAt.Local().Format(time.DateTime),
			r.Total,
			color.GreenString("%d", r.Passed),
			color.RedString("%d", r.Failed),
			color.RedString("%d", r.Errored),
			r.Duration.String(),
		})
	}
	fmt.Fprintln(f.out, t.Render())
}

// PrintRunFailures prints the stored failures of one run
func (f *Formatter) PrintRunFailures(runID string, failures []storage.FailureRow) {
	if len(failures) == 0 {
		return
	}
	color.New(color.FgCyan).Fprintf(f.out, "Failures of run %s:\n", shortID(runID))
	for _, failure := range failures {
		color.New(color.FgRed).Fprintf(f.out, "  |_ %s.%s", failure.Suite, failure.Test)
		fmt.Fprintf(f.out, " (%s): %s\n", failure.Status, firstLine(failure.Message))
	}
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	return t
}

func branch(last bool) string {
	if last {
		return "└── "
	}
	return "├── "
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
