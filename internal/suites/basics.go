package suites

import (
	"xunit/internal/assert"
	"xunit/internal/registry"
)

func divide(a, b int) int {
	return a / b
}

func registerJUnitBasics(reg *registry.Registry) error {
	return reg.Suite("JUnitBasicsTest").
		Test("testAddition", func() {
			assert.Equals(4, 2+2)
		}).
		Test("testTrueCondition", func() {
			assert.True(5 > 3)
		}).
		Test("testFalseCondition", func() {
			assert.False(2 > 5)
		}).
		Test("testException", func() {
			assert.Throws(assert.ArithmeticFault, func() { _ = divide(1, 0) })
		}).
		Err()
}
