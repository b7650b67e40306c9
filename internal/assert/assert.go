// Package assert provides JUnit-style assertions for registered test actions.
//
// A failing assertion panics with a *domain.AssertionFailure, which the
// runner recovers and records as a failed test. Any other panic escaping a
// test action is recorded as an error instead. Every assertion accepts an
// optional message, either a single value or a format string followed by
// its arguments, which is prefixed to the failure message:
//
//	assert.Equals(4, 2+2)
//	assert.True(5 > 3, "five is greater than %d", 3)
package assert

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"

	"xunit/internal/domain"
)

// allowUnexported lets value equality see into unexported struct fields.
var allowUnexported = cmp.Exporter(func(reflect.Type) bool { return true })

// Equals fails with KindEquality unless expected and actual are deeply equal.
func Equals(expected, actual any, msgAndArgs ...any) {
	if !ObjectsAreEqual(expected, actual) {
		e, a := formatPair(expected, actual)
		fail(domain.KindEquality, expected, actual, msgAndArgs, "expected: %s but was: %s", e, a)
	}
}

// NotEquals fails with KindEquality when unexpected and actual are deeply equal.
func NotEquals(unexpected, actual any, msgAndArgs ...any) {
	if ObjectsAreEqual(unexpected, actual) {
		fail(domain.KindEquality, unexpected, actual, msgAndArgs, "expected: not equal but was: %s", format(actual))
	}
}

func True(condition bool, msgAndArgs ...any) {
	if !condition {
		fail(domain.KindTruth, true, false, msgAndArgs, "expected: <true> but was: <false>")
	}
}

func False(condition bool, msgAndArgs ...any) {
	if condition {
		fail(domain.KindTruth, false, true, msgAndArgs, "expected: <false> but was: <true>")
	}
}

// Nil fails with KindNullCheck unless value is nil or a typed nil.
func Nil(value any, msgAndArgs ...any) {
	if !isNil(value) {
		fail(domain.KindNullCheck, nil, value, msgAndArgs, "expected: <nil> but was: %s", format(value))
	}
}

func NotNil(value any, msgAndArgs ...any) {
	if isNil(value) {
		fail(domain.KindNullCheck, nil, value, msgAndArgs, "expected: not <nil>")
	}
}

// Same fails with KindIdentity unless expected and actual refer to the same
// object. Only reference values (pointers, maps, slices, channels) have an
// identity; anything else fails.
func Same(expected, actual any, msgAndArgs ...any) {
	same, ok := samePointers(expected, actual)
	if !ok {
		fail(domain.KindIdentity, expected, actual, msgAndArgs,
			"identity requires reference values, got <%T> and <%T>", expected, actual)
	}
	if !same {
		fail(domain.KindIdentity, expected, actual, msgAndArgs,
			"expected same reference: %s but was: %s", formatRef(expected), formatRef(actual))
	}
}

// NotSame fails with KindIdentity when expected and actual refer to the same object.
func NotSame(expected, actual any, msgAndArgs ...any) {
	same, ok := samePointers(expected, actual)
	if !ok {
		fail(domain.KindIdentity, expected, actual, msgAndArgs,
			"identity requires reference values, got <%T> and <%T>", expected, actual)
	}
	if same {
		fail(domain.KindIdentity, expected, actual, msgAndArgs,
			"expected: not same but was: %s", formatRef(actual))
	}
}

// NoError fails with KindExplicit when err is non-nil.
func NoError(err error, msgAndArgs ...any) {
	if err != nil {
		fail(domain.KindExplicit, nil, err, msgAndArgs, "unexpected error: <%v>", err)
	}
}

// Fail fails unconditionally.
func Fail(format string, args ...any) {
	panic(&domain.AssertionFailure{
		Kind:    domain.KindExplicit,
		Message: fmt.Sprintf(format, args...),
	})
}

// ObjectsAreEqual reports whether two values are deeply equal.
// Values of different dynamic types are never equal.
func ObjectsAreEqual(expected, actual any) bool {
	if expected == nil || actual == nil {
		return expected == nil && actual == nil
	}
	if reflect.TypeOf(expected) != reflect.TypeOf(actual) {
		return false
	}
	return cmp.Equal(expected, actual, allowUnexported)
}

func fail(kind domain.FailureKind, expected, actual any, msgAndArgs []any, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if prefix := messageFromMsgAndArgs(msgAndArgs...); prefix != "" {
		msg = prefix + " ==> " + msg
	}
	panic(&domain.AssertionFailure{
		Kind:     kind,
		Expected: expected,
		Actual:   actual,
		Message:  msg,
	})
}

func messageFromMsgAndArgs(msgAndArgs ...any) string {
	switch len(msgAndArgs) {
	case 0:
		return ""
	case 1:
		if msg, ok := msgAndArgs[0].(string); ok {
			return msg
		}
		return fmt.Sprintf("%+v", msgAndArgs[0])
	default:
		if format, ok := msgAndArgs[0].(string); ok {
			return fmt.Sprintf(format, msgAndArgs[1:]...)
		}
		return fmt.Sprint(msgAndArgs...)
	}
}

func format(v any) string {
	return fmt.Sprintf("<%v>", v)
}

// formatPair adds the dynamic types when both values print the same,
// so that 4 vs int64(4) does not read as "expected: <4> but was: <4>".
func formatPair(expected, actual any) (string, string) {
	e, a := format(expected), format(actual)
	if e == a {
		return fmt.Sprintf("<%T(%v)>", expected, expected), fmt.Sprintf("<%T(%v)>", actual, actual)
	}
	return e, a
}

func formatRef(v any) string {
	return fmt.Sprintf("<%T@%#x>", v, reflect.ValueOf(v).Pointer())
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

func isReference(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

// samePointers reports whether both values are references of the same type
// to the same object. ok is false when either value has no identity.
func samePointers(first, second any) (same bool, ok bool) {
	if first == nil || second == nil {
		return false, false
	}
	a, b := reflect.ValueOf(first), reflect.ValueOf(second)
	if !isReference(a) || !isReference(b) {
		return false, false
	}
	if a.Type() != b.Type() {
		return false, true
	}
	if a.Pointer() != b.Pointer() {
		return false, true
	}
	if a.Kind() == reflect.Slice && a.Len() != b.Len() {
		return false, true
	}
	return true, true
}
