package suites

import (
	"xunit/internal/assert"
	"xunit/internal/registry"
)

func registerAssertionsTour(reg *registry.Registry) error {
	greeting := &[]string{"Hello"}

	return reg.Suite("AssertionsTour").
		Test("assertTrue", func() { assert.True(5 > 3) }).
		Test("assertFalse", func() { assert.False(2 > 5) }).
		Test("assertEquals", func() { assert.Equals(4, 2+2) }).
		Test("assertNotEquals", func() { assert.NotEquals(5, 2+2) }).
		Test("assertSame", func() { assert.Same(greeting, greeting) }).
		Test("assertNotSame", func() { assert.NotSame(greeting, &[]string{"Hello"}) }).
		Test("assertNull", func() { assert.Nil(nil) }).
		Test("assertNotNull", func() { assert.NotNil(123) }).
		Test("assertThrows", func() {
			assert.Throws(assert.ArithmeticFault, func() { _ = divide(1, 0) })
		}).
		Err()
}
