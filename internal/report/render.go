package report

import (
	"fmt"
	"strings"
)

const (
	allPassedLine  = "All tests passed!"
	someFailedLine = "Some tests failed."
	failurePrefix  = "Failure in test: "
	reasonPrefix   = "Reason: "
)

// Render writes the plain text report. The output depends only on the
// summary, so the same summary always renders the same text.
func Render(s Summary) string {
	var b strings.Builder
	writeHeader(&b, s)
	for _, f := range s.Failures {
		fmt.Fprintf(&b, "%s%s\n", failurePrefix, f.ID)
		fmt.Fprintf(&b, "%s%s\n", reasonPrefix, f.Message)
	}
	return b.String()
}

// RenderVerbose is Render with the status and kind of every failure and the
// passed and errored counts.
func RenderVerbose(s Summary) string {
	var b strings.Builder
	writeHeader(&b, s)
	fmt.Fprintf(&b, "Passed tests: %d\n", s.Passed)
	fmt.Fprintf(&b, "Errored tests: %d\n", s.Errored)
	for _, f := range s.Failures {
		fmt.Fprintf(&b, "%s%s\n", failurePrefix, f.ID)
		if f.Kind != 0 {
			fmt.Fprintf(&b, "  Status: %s (%s)\n", f.Status, f.Kind)
		} else {
			fmt.Fprintf(&b, "  Status: %s\n", f.Status)
		}
		fmt.Fprintf(&b, "  %s%s\n", reasonPrefix, f.Message)
	}
	return b.String()
}

func writeHeader(b *strings.Builder, s Summary) {
	fmt.Fprintf(b, "Total tests: %d\n", s.Found)
	fmt.Fprintf(b, "Failed tests: %d\n", s.FailedCount())
	if s.OK() {
		b.WriteString(allPassedLine + "\n")
	} else {
		b.WriteString(someFailedLine + "\n")
	}
}
