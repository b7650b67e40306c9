package suites

import (
	"xunit/internal/assert"
	"xunit/internal/registry"
)

func registerCalculator(reg *registry.Registry) error {
	return reg.Suite("Calculator").
		Test("addition", func() {
			assert.Equals(4, 2+2)
		}).
		Test("divByZero", func() {
			assert.Throws(assert.ArithmeticFault, func() { _ = divide(1, 0) })
		}).
		Test("broken", func() {
			assert.Equals(1, 2)
		}).
		Err()
}
