package report

import (
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xunit/internal/domain"
)

func passed(suite, name string) domain.TestOutcome {
	return domain.TestOutcome{
		ID:       domain.TestID{Suite: suite, Name: name},
		Status:   domain.StatusPassed,
		Duration: time.Millisecond,
	}
}

func failed(suite, name string, kind domain.FailureKind, message string) domain.TestOutcome {
	return domain.TestOutcome{
		ID:       domain.TestID{Suite: suite, Name: name},
		Status:   domain.StatusFailed,
		Failure:  &domain.AssertionFailure{Kind: kind, Message: message},
		Duration: 2 * time.Millisecond,
	}
}

func errored(suite, name, message string) domain.TestOutcome {
	return domain.TestOutcome{
		ID:       domain.TestID{Suite: suite, Name: name},
		Status:   domain.StatusErrored,
		Fault:    &domain.Fault{Message: message, Type: "runtime.boundsError"},
		Duration: 3 * time.Millisecond,
	}
}

// calculatorOutcomes is the addition/divByZero/broken scenario
func calculatorOutcomes() []domain.TestOutcome {
	return []domain.TestOutcome{
		passed("Calculator", "addition"),
		passed("Calculator", "divByZero"),
		failed("Calculator", "broken", domain.KindEquality, "expected: <1> but was: <2>"),
	}
}

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestSummarize_CalculatorScenario(t *testing.T) {
	s := Summarize(calculatorOutcomes())

	assert.Equal(t, 3, s.Found)
	assert.Equal(t, 2, s.Passed)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 0, s.Errored)
	assert.Equal(t, 4*time.Millisecond, s.Duration)
	require.Len(t, s.Failures, 1)
	assert.Equal(t, "Calculator.broken", s.Failures[0].ID.String())
	assert.Equal(t, domain.KindEquality, s.Failures[0].Kind)
	assert.False(t, s.OK())
}

func TestSummarize_CountsAlwaysAddUp(t *testing.T) {
	runs := [][]domain.TestOutcome{
		nil,
		{passed("S", "a")},
		{errored("S", "a", "boom")},
		append(calculatorOutcomes(), errored("S", "b", "boom"), passed("S", "c")),
	}
	for _, outcomes := range runs {
		s := Summarize(outcomes)
		assert.Equal(t, len(outcomes), s.Found)
		assert.Equal(t, s.Found, s.Passed+s.Failed+s.Errored)
		assert.Len(t, s.Failures, s.FailedCount())
	}
}

func TestSummarize_ErroredKeepsRunOrder(t *testing.T) {
	s := Summarize([]domain.TestOutcome{
		errored("S", "first", "index out of range"),
		passed("S", "second"),
		failed("S", "third", domain.KindTruth, "expected: <true> but was: <false>"),
	})

	require.Len(t, s.Failures, 2)
	assert.Equal(t, "first", s.Failures[0].ID.Name)
	assert.Equal(t, domain.StatusErrored, s.Failures[0].Status)
	assert.Zero(t, s.Failures[0].Kind)
	assert.Equal(t, "third", s.Failures[1].ID.Name)
	assert.Equal(t, 2, s.FailedCount())
}

func TestRender_Golden(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []domain.TestOutcome
	}{
		{name: "calculator", outcomes: calculatorOutcomes()},
		{name: "all_passed", outcomes: []domain.TestOutcome{passed("JUnitBasicsTest", "testAddition"), passed("JUnitBasicsTest", "testTrueCondition")}},
		{name: "errored", outcomes: []domain.TestOutcome{errored("Pitfalls", "outOfBounds", "runtime error: index out of range [3] with length 3"), passed("Pitfalls", "ok")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			golden(t).Assert(t, tt.name, []byte(Render(Summarize(tt.outcomes))))
		})
	}
}

func TestRenderVerbose_Golden(t *testing.T) {
	outcomes := append(calculatorOutcomes(), errored("Calculator", "overflow", "panic: stack exhausted"))
	golden(t).Assert(t, "calculator_verbose", []byte(RenderVerbose(Summarize(outcomes))))
}

func TestRender_Deterministic(t *testing.T) {
	s := Summarize(calculatorOutcomes())
	assert.Equal(t, Render(s), Render(s))

	again := Summarize(calculatorOutcomes())
	assert.Equal(t, Render(s), Render(again))
}

func TestSummaryListener(t *testing.T) {
	l := NewSummaryListener()
	l.RunStarted()
	for _, o := range calculatorOutcomes() {
		l.TestStarted(o.ID)
		l.TestFinished(o)
	}
	l.RunFinished(nil)

	s := l.Summary()
	assert.Equal(t, 3, s.Found)
	assert.Equal(t, 1, s.Failed)

	// a copy is handed out
	s.Failures[0].Message = "changed"
	assert.Equal(t, "expected: <1> but was: <2>", l.Summary().Failures[0].Message)

	// a new run starts from zero
	l.RunStarted()
	assert.Zero(t, l.Summary().Found)
}
