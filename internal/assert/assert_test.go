package assert

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"xunit/internal/domain"
)

// failureOf runs fn and returns the assertion failure it raised, or nil.
func failureOf(t *testing.T, fn func()) (failure *domain.AssertionFailure) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(*domain.AssertionFailure)
			require.Truef(t, ok, "expected *domain.AssertionFailure, got %T: %v", r, r)
			failure = f
		}
	}()
	fn()
	return nil
}

type point struct {
	x, y int
}

func TestEquals(t *testing.T) {
	tests := []struct {
		name     string
		expected any
		actual   any
		fails    bool
		message  string
	}{
		{name: "ints", expected: 4, actual: 2 + 2},
		{name: "strings", expected: "Hello", actual: "Hello"},
		{name: "structs with unexported fields", expected: point{1, 2}, actual: point{1, 2}},
		{name: "slices", expected: []int{1, 2}, actual: []int{1, 2}},
		{name: "both nil", expected: nil, actual: nil},
		{name: "different ints", expected: 1, actual: 2, fails: true, message: "expected: <1> but was: <2>"},
		{name: "different types same text", expected: 4, actual: int64(4), fails: true, message: "expected: <int(4)> but was: <int64(4)>"},
		{name: "nil vs value", expected: nil, actual: 0, fails: true, message: "expected: <<nil>> but was: <0>"},
		{name: "different structs", expected: point{1, 2}, actual: point{2, 1}, fails: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failure := failureOf(t, func() { Equals(tt.expected, tt.actual) })
			if !tt.fails {
				require.Nil(t, failure)
				return
			}
			require.NotNil(t, failure)
			require.Equal(t, domain.KindEquality, failure.Kind)
			require.Equal(t, tt.expected, failure.Expected)
			require.Equal(t, tt.actual, failure.Actual)
			if tt.message != "" {
				require.Equal(t, tt.message, failure.Message)
			}
		})
	}
}

func TestEquals_ReflexiveForAnyValue(t *testing.T) {
	values := []any{0, -1, "", "x", 3.5, true, []string{"a"}, map[string]int{"a": 1}, point{3, 4}, &point{5, 6}, struct{}{}}
	for _, v := range values {
		t.Run(fmt.Sprintf("%T", v), func(t *testing.T) {
			require.Nil(t, failureOf(t, func() { Equals(v, v) }))
		})
	}
}

func TestNotEquals(t *testing.T) {
	require.Nil(t, failureOf(t, func() { NotEquals(5, 2+2) }))

	failure := failureOf(t, func() { NotEquals(4, 2+2) })
	require.NotNil(t, failure)
	require.Equal(t, domain.KindEquality, failure.Kind)
	require.Equal(t, "expected: not equal but was: <4>", failure.Message)
}

func TestTrueFalse(t *testing.T) {
	require.Nil(t, failureOf(t, func() { True(5 > 3) }))
	require.Nil(t, failureOf(t, func() { False(2 > 5) }))

	failure := failureOf(t, func() { True(1 > 4) })
	require.NotNil(t, failure)
	require.Equal(t, domain.KindTruth, failure.Kind)
	require.Equal(t, "expected: <true> but was: <false>", failure.Message)

	failure = failureOf(t, func() { False(true) })
	require.NotNil(t, failure)
	require.Equal(t, domain.KindTruth, failure.Kind)
	require.Equal(t, "expected: <false> but was: <true>", failure.Message)
}

func TestNilNotNil(t *testing.T) {
	var nilPointer *point
	var nilMap map[string]int

	require.Nil(t, failureOf(t, func() { Nil(nil) }))
	require.Nil(t, failureOf(t, func() { Nil(nilPointer) }))
	require.Nil(t, failureOf(t, func() { Nil(nilMap) }))
	require.Nil(t, failureOf(t, func() { NotNil(123) }))

	failure := failureOf(t, func() { Nil(0) })
	require.NotNil(t, failure)
	require.Equal(t, domain.KindNullCheck, failure.Kind)
	require.Equal(t, "expected: <nil> but was: <0>", failure.Message)

	failure = failureOf(t, func() { NotNil(nilPointer) })
	require.NotNil(t, failure)
	require.Equal(t, domain.KindNullCheck, failure.Kind)
}

func TestSameNotSame(t *testing.T) {
	p1 := &point{1, 2}
	p2 := &point{1, 2}
	values := []int{1, 2, 3}

	t.Run("same pointer", func(t *testing.T) {
		require.Nil(t, failureOf(t, func() { Same(p1, p1) }))
	})

	t.Run("equal but distinct pointers", func(t *testing.T) {
		require.Nil(t, failureOf(t, func() { Equals(p1, p2) }))
		failure := failureOf(t, func() { Same(p1, p2) })
		require.NotNil(t, failure)
		require.Equal(t, domain.KindIdentity, failure.Kind)
		require.Contains(t, failure.Message, "expected same reference")
		require.Nil(t, failureOf(t, func() { NotSame(p1, p2) }))
	})

	t.Run("not same fails for one object", func(t *testing.T) {
		failure := failureOf(t, func() { NotSame(p1, p1) })
		require.NotNil(t, failure)
		require.Equal(t, domain.KindIdentity, failure.Kind)
	})

	t.Run("slices with different lengths", func(t *testing.T) {
		require.Nil(t, failureOf(t, func() { Same(values, values) }))
		require.NotNil(t, failureOf(t, func() { Same(values, values[:2]) }))
	})

	t.Run("values without identity", func(t *testing.T) {
		failure := failureOf(t, func() { Same("Hello", "Hello") })
		require.NotNil(t, failure)
		require.Equal(t, domain.KindIdentity, failure.Kind)
		require.Equal(t, "identity requires reference values, got <string> and <string>", failure.Message)

		require.NotNil(t, failureOf(t, func() { NotSame(1, 2) }))
	})
}

func TestNoErrorAndFail(t *testing.T) {
	require.Nil(t, failureOf(t, func() { NoError(nil) }))

	failure := failureOf(t, func() { NoError(errors.New("boom")) })
	require.NotNil(t, failure)
	require.Equal(t, domain.KindExplicit, failure.Kind)
	require.Equal(t, "unexpected error: <boom>", failure.Message)

	failure = failureOf(t, func() { Fail("not implemented: %s", "checkout") })
	require.NotNil(t, failure)
	require.Equal(t, domain.KindExplicit, failure.Kind)
	require.Equal(t, "not implemented: checkout", failure.Message)
}

func TestMessagePrefix(t *testing.T) {
	tests := []struct {
		name       string
		msgAndArgs []any
		expected   string
	}{
		{name: "no message", expected: "expected: <4> but was: <5>"},
		{name: "plain message", msgAndArgs: []any{"sum"}, expected: "sum ==> expected: <4> but was: <5>"},
		{name: "format", msgAndArgs: []any{"sum of %d and %d", 2, 3}, expected: "sum of 2 and 3 ==> expected: <4> but was: <5>"},
		{name: "non-string", msgAndArgs: []any{42}, expected: "42 ==> expected: <4> but was: <5>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failure := failureOf(t, func() { Equals(4, 5, tt.msgAndArgs...) })
			require.NotNil(t, failure)
			require.Equal(t, tt.expected, failure.Message)
		})
	}
}
