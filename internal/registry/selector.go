package registry

import (
	"path"
	"strings"

	"xunit/internal/domain"
)

// Selector picks tests out of a registry
type Selector interface {
	Matches(id domain.TestID) bool
	String() string
}

// SelectSuite selects every test of a suite
func SelectSuite(suite string) Selector {
	return suiteSelector(suite)
}

// SelectTest selects a single test
func SelectTest(suite, name string) Selector {
	return testSelector(domain.TestID{Suite: suite, Name: name})
}

// SelectPattern selects tests whose Suite.Name or name matches pattern.
// Supports patterns like "*Basics*" or "Calculator.div*"; a pattern without
// wildcards matches by substring.
func SelectPattern(pattern string) Selector {
	return patternSelector(pattern)
}

// ParseSelector turns command line input into a selector: text with
// wildcards is a pattern, "Suite.name" selects a test, anything else a suite.
func ParseSelector(s string) Selector {
	if strings.ContainsAny(s, "*?") {
		return SelectPattern(s)
	}
	if suite, name, ok := strings.Cut(s, "."); ok && suite != "" && name != "" {
		return SelectTest(suite, name)
	}
	return SelectSuite(s)
}

type suiteSelector string

func (s suiteSelector) Matches(id domain.TestID) bool { return id.Suite == string(s) }
func (s suiteSelector) String() string                { return "suite:" + string(s) }

type testSelector domain.TestID

func (s testSelector) Matches(id domain.TestID) bool { return id == domain.TestID(s) }
func (s testSelector) String() string                { return "test:" + domain.TestID(s).String() }

type patternSelector string

func (s patternSelector) String() string { return "pattern:" + string(s) }

func (s patternSelector) Matches(id domain.TestID) bool {
	pattern := string(s)
	if pattern == "" {
		return true
	}

	for _, candidate := range []string{id.String(), id.Name} {
		// path.Match supports * and ? wildcards; dots are ordinary characters
		if matched, err := path.Match(pattern, candidate); err == nil && matched {
			return true
		}
	}

	full := id.String()
	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(full, pattern)
	}

	// Flexible fallback for patterns like "*assert*Null*": every literal part
	// must appear in the identity
	hasLiteral := false
	for _, part := range strings.FieldsFunc(pattern, func(r rune) bool { return r == '*' || r == '?' }) {
		hasLiteral = true
		if !strings.Contains(full, part) {
			return false
		}
	}
	return hasLiteral
}

func matchesAny(selectors []Selector, id domain.TestID) bool {
	for _, s := range selectors {
		if s.Matches(id) {
			return true
		}
	}
	return false
}
