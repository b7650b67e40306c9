package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"xunit/internal/domain"
	"xunit/internal/storage"
)

// maxStackLines is how much of a fault's stack the details pane shows
const maxStackLines = 10

// ErrorViewer displays test failures in an interactive TUI
type ErrorViewer struct {
	storage storage.Storage
	out     io.Writer
}

// NewErrorViewer creates a new ErrorViewer. Resolved flags are written back through st.
func NewErrorViewer(st storage.Storage, out io.Writer) *ErrorViewer {
	return &ErrorViewer{storage: st, out: out}
}

// View displays test failures in an interactive TUI
func (ev *ErrorViewer) View(results *domain.ResultsOutput) error {
	if len(results.Details) == 0 {
		color.New(color.FgGreen).Fprintln(ev.out, "✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i := range results.Details {
		list.AddItem(listItemText(results.Details[i], i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	var saveErr error
	updateHeader := func() {
		header := headerText(results)
		if saveErr != nil {
			header += fmt.Sprintf("[red] save failed: %s[white]", tview.Escape(saveErr.Error()))
		}
		headerView.SetText(header)
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(results.Details) {
			statsView.SetText(formatFailureStats(results.Details[index]))
			detailsView.SetText(formatFailureDetails(results.Details[index]))
			detailsView.ScrollToBeginning()
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if toggleResolved(results, index) {
					list.SetItemText(index, listItemText(results.Details[index], index), "")
					saveErr = ev.storage.SaveOutput(results)
					updateHeader()
					updateDetails()
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return saveErr
}

// toggleResolved flips the resolved flag of one failure
func toggleResolved(results *domain.ResultsOutput, index int) bool {
	if index < 0 || index >= len(results.Details) {
		return false
	}
	results.Details[index].Resolved = !results.Details[index].Resolved
	return true
}

func countUnresolved(results *domain.ResultsOutput) int {
	count := 0
	for _, d := range results.Details {
		if !d.Resolved {
			count++
		}
	}
	return count
}

func headerText(results *domain.ResultsOutput) string {
	return fmt.Sprintf(" Test Failures (%d total, %d unresolved) | Use ↑↓ to navigate, [yellow]R[white] to mark resolved, → to view details, ← to go back, Ctrl+C to exit ",
		len(results.Details), countUnresolved(results))
}

func listItemText(detail domain.FailureDetail, index int) string {
	name := tview.Escape(detail.ID().String())
	if detail.Resolved {
		return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, name)
	}
	if detail.Status == domain.StatusErrored {
		return fmt.Sprintf("[yellow]%d.[red] %s[white]", index+1, name)
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, name)
}

// formatFailureDetails formats a failure for display using tview color tags
func formatFailureDetails(detail domain.FailureDetail) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ Test: %s[white]\n\n", tview.Escape(detail.ID().String()))

	if detail.Message != "" {
		fmt.Fprintf(&b, "[yellow]Reason:[white]\n%s\n\n", tview.Escape(detail.Message))
	}
	if detail.Expected != "" || detail.Actual != "" {
		fmt.Fprintf(&b, "[yellow]Expected:[white] %s\n", tview.Escape(detail.Expected))
		fmt.Fprintf(&b, "[yellow]Actual:[white]   %s\n\n", tview.Escape(detail.Actual))
	}
	if detail.FaultType != "" {
		fmt.Fprintf(&b, "[yellow]Fault Type:[white] %s\n\n", tview.Escape(detail.FaultType))
	}

	if len(detail.StackTrace) > 0 {
		b.WriteString("[yellow]Stack Trace:[white]\n")
		for i, line := range detail.StackTrace {
			if i == maxStackLines {
				fmt.Fprintf(&b, "  [gray]... and %d more lines[white]\n", len(detail.StackTrace)-maxStackLines)
				break
			}
			fmt.Fprintf(&b, "  %s\n", tview.Escape(line))
		}
	}
	return b.String()
}

// formatFailureStats formats the stats header for a failure
func formatFailureStats(detail domain.FailureDetail) string {
	status := detail.Status.String()
	if detail.Kind != 0 {
		status += " (" + detail.Kind.String() + ")"
	}
	return fmt.Sprintf("[cyan]suite:[white] [yellow]%s[white]  [cyan]test:[white] [yellow]%s[white]\n[cyan]status:[white] %s  [cyan]duration:[white] %dms\n",
		tview.Escape(detail.Suite), tview.Escape(detail.Test), status, detail.DurationMS)
}
