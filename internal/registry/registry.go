// Package registry holds the named test cases of a run, grouped into suites.
package registry

import (
	"errors"
	"fmt"
	"iter"

	"xunit/internal/domain"
)

var (
	// ErrDuplicateTest is returned when a suite already holds a test with the same name
	ErrDuplicateTest = errors.New("duplicate test")
	// ErrInvalidTest is returned for tests without a name or an action
	ErrInvalidTest = errors.New("invalid test")
)

// Registry holds test cases in registration order
type Registry struct {
	tests  []domain.TestCase
	index  map[domain.TestID]int
	suites []string
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{index: make(map[domain.TestID]int)}
}

// Register adds a test to the named suite
func (r *Registry) Register(suite, name string, action func()) error {
	if suite == "" || name == "" {
		return fmt.Errorf("%w: suite and test names must not be empty", ErrInvalidTest)
	}
	id := domain.TestID{Suite: suite, Name: name}
	if action == nil {
		return fmt.Errorf("%w: %s has no action", ErrInvalidTest, id)
	}
	if _, exists := r.index[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTest, id)
	}

	if !r.hasSuite(suite) {
		r.suites = append(r.suites, suite)
	}
	r.index[id] = len(r.tests)
	r.tests = append(r.tests, domain.TestCase{ID: id, Action: action})
	return nil
}

// MustRegister is like Register but panics on error
func (r *Registry) MustRegister(suite, name string, action func()) {
	if err := r.Register(suite, name, action); err != nil {
		panic(err)
	}
}

// AllTests returns every registered test in registration order.
// The sequence is lazy and can be iterated any number of times.
func (r *Registry) AllTests() iter.Seq[domain.TestCase] {
	return func(yield func(domain.TestCase) bool) {
		for i := 0; i < len(r.tests); i++ {
			if !yield(r.tests[i]) {
				return
			}
		}
	}
}

// Select returns the tests matching any of the selectors, in registration
// order. Without selectors every test is selected.
func (r *Registry) Select(selectors ...Selector) iter.Seq[domain.TestCase] {
	if len(selectors) == 0 {
		return r.AllTests()
	}
	return func(yield func(domain.TestCase) bool) {
		for tc := range r.AllTests() {
			if !matchesAny(selectors, tc.ID) {
				continue
			}
			if !yield(tc) {
				return
			}
		}
	}
}

// Lookup returns the test with the given identity
func (r *Registry) Lookup(id domain.TestID) (domain.TestCase, bool) {
	i, ok := r.index[id]
	if !ok {
		return domain.TestCase{}, false
	}
	return r.tests[i], true
}

// Suites returns suite names in order of first registration
func (r *Registry) Suites() []string {
	return append([]string(nil), r.suites...)
}

// Tests returns the names of the tests in a suite
func (r *Registry) Tests(suite string) []string {
	var names []string
	for _, tc := range r.tests {
		if tc.ID.Suite == suite {
			names = append(names, tc.ID.Name)
		}
	}
	return names
}

// Len returns the number of registered tests
func (r *Registry) Len() int {
	return len(r.tests)
}

func (r *Registry) hasSuite(suite string) bool {
	for _, s := range r.suites {
		if s == suite {
			return true
		}
	}
	return false
}

// SuiteBuilder registers tests under one suite name
type SuiteBuilder struct {
	registry *Registry
	name     string
	err      error
}

// Suite starts registering tests under name
func (r *Registry) Suite(name string) *SuiteBuilder {
	return &SuiteBuilder{registry: r, name: name}
}

// Test registers a test in the suite. Errors are collected and reported by Err.
func (b *SuiteBuilder) Test(name string, action func()) *SuiteBuilder {
	if err := b.registry.Register(b.name, name, action); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

// Err returns the registration errors collected so far
func (b *SuiteBuilder) Err() error {
	return b.err
}
