package assert

import (
	"errors"
	"reflect"
	"runtime"
	"strings"

	"xunit/internal/domain"
)

// FaultKind classifies a fault raised by a test action, playing the role of
// an exception class in Throws.
type FaultKind struct {
	name  string
	match func(error) bool
}

// NewFaultKind returns a named kind matching faults accepted by match.
func NewFaultKind(name string, match func(error) bool) FaultKind {
	return FaultKind{name: name, match: match}
}

func (k FaultKind) String() string {
	return k.name
}

// Matches reports whether fault is of this kind.
func (k FaultKind) Matches(fault error) bool {
	return fault != nil && k.match != nil && k.match(fault)
}

var (
	// ArithmeticFault matches integer division by zero.
	ArithmeticFault = runtimeFault("ArithmeticFault", "integer divide by zero")
	// IndexFault matches out of range slice, array and string indexing.
	IndexFault = runtimeFault("IndexFault", "index out of range")
	// NilDereferenceFault matches dereferencing a nil pointer.
	NilDereferenceFault = runtimeFault("NilDereferenceFault", "nil pointer dereference")
	// AnyFault matches every fault.
	AnyFault = NewFaultKind("AnyFault", func(error) bool { return true })
)

func runtimeFault(name, fragment string) FaultKind {
	return NewFaultKind(name, func(err error) bool {
		var re runtime.Error
		return errors.As(err, &re) && strings.Contains(re.Error(), fragment)
	})
}

// ErrorIs matches faults that wrap target.
func ErrorIs(target error) FaultKind {
	return NewFaultKind("ErrorIs("+target.Error()+")", func(err error) bool {
		return errors.Is(err, target)
	})
}

// ErrorAs matches faults that have an error of type T in their chain.
func ErrorAs[T error]() FaultKind {
	return NewFaultKind(reflect.TypeFor[T]().String(), func(err error) bool {
		var target T
		return errors.As(err, &target)
	})
}

// Throws runs action and fails with KindMissingException unless it panics
// with a fault of the given kind. The matching fault is swallowed and returned.
func Throws(kind FaultKind, action func(), msgAndArgs ...any) error {
	fault := capture(action)
	if fault == nil {
		fail(domain.KindMissingException, kind.String(), nil, msgAndArgs,
			"expected %s to be thrown, but nothing was thrown", kind)
	}
	if !kind.Matches(fault) {
		fail(domain.KindMissingException, kind.String(), fault, msgAndArgs,
			"unexpected exception type thrown, expected: <%s> but was: <%s>", kind, fault)
	}
	return fault
}

func capture(action func()) (fault error) {
	defer func() {
		if r := recover(); r != nil {
			fault = domain.AsError(r)
		}
	}()
	action()
	return nil
}
