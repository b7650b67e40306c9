// Package suites registers the built-in test suites run by the CLI.
package suites

import (
	"errors"

	"xunit/internal/registry"
)

// Register adds every built-in suite to reg
func Register(reg *registry.Registry) error {
	return errors.Join(
		registerJUnitBasics(reg),
		registerAssertionsTour(reg),
		registerAssertionsPitfalls(reg),
		registerCalculator(reg),
		registerAdventureWorld(reg),
	)
}

// Default returns a registry holding every built-in suite
func Default() (*registry.Registry, error) {
	reg := registry.New()
	if err := Register(reg); err != nil {
		return nil, err
	}
	return reg, nil
}
