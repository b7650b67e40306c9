package suites

import (
	"xunit/internal/assert"
	"xunit/internal/registry"
)

// registerAssertionsPitfalls registers tests that are meant to fail, one per
// assertion misuse, plus one that faults without asserting anything
func registerAssertionsPitfalls(reg *registry.Registry) error {
	return reg.Suite("AssertionsPitfalls").
		Test("assertTrueOnFalseCondition", func() {
			assert.True(1 > 4)
		}).
		Test("assertSameOnDistinctObjects", func() {
			assert.Same(&[]string{"Hello"}, &[]string{"Hello"})
		}).
		Test("assertNotSameOnOneObject", func() {
			greeting := &[]string{"Hello"}
			assert.NotSame(greeting, greeting)
		}).
		Test("assertNullOnZero", func() {
			assert.Nil(0)
		}).
		Test("assertThrowsWithoutFault", func() {
			assert.Throws(assert.ArithmeticFault, func() { _ = divide(1, 1) })
		}).
		Test("indexOutOfRange", func() {
			rooms := []string{"Room 1", "Room 2"}
			i := len(rooms)
			_ = rooms[i]
		}).
		Err()
}
