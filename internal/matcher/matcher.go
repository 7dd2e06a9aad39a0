// Package matcher compiles regular expressions used to classify catalog
// fields. Patterns can be anchored at compile time.
package matcher

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher reports whether an input matches a compiled pattern.
type Matcher interface {
	Match(input string) bool
}

type matcher struct {
	compiled *regexp.Regexp
}

// Options configures the matcher behavior.
type Options struct {
	// Anchored wraps the pattern in ^(?:...)$ unless it is already anchored
	Anchored bool
}

// New compiles pattern into a Matcher. A nil opts compiles the pattern as is.
func New(pattern string, opts *Options) (Matcher, error) {
	if opts == nil {
		opts = &Options{}
	}

	compiled, err := regexp.Compile(expand(pattern, opts))
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern: invalid regex pattern: %w", err)
	}

	return &matcher{compiled: compiled}, nil
}

// MustNew creates a new Matcher and panics if there's an error.
func MustNew(pattern string, opts *Options) Matcher {
	m, err := New(pattern, opts)
	if err != nil {
		panic(err)
	}
	return m
}

func expand(pattern string, opts *Options) string {
	if opts.Anchored {
		if !strings.HasPrefix(pattern, "^") {
			pattern = "^(?:" + pattern + ")"
		}
		if !strings.HasSuffix(pattern, "$") {
			pattern += "$"
		}
	}
	return pattern
}

// Match checks if the input matches the pattern.
func (m *matcher) Match(input string) bool {
	return m.compiled.MatchString(input)
}

// MultiMatcher matches when any of its patterns matches.
type MultiMatcher struct {
	matchers []Matcher
}

// NewMultiMatcher compiles every pattern with the same options.
func NewMultiMatcher(patterns []string, opts *Options) (*MultiMatcher, error) {
	mm := &MultiMatcher{
		matchers: make([]Matcher, 0, len(patterns)),
	}

	for _, pattern := range patterns {
		m, err := New(pattern, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to create matcher for pattern %q: %w", pattern, err)
		}
		mm.matchers = append(mm.matchers, m)
	}

	return mm, nil
}

// MustNewMultiMatcher is NewMultiMatcher that panics on error.
func MustNewMultiMatcher(patterns []string, opts *Options) *MultiMatcher {
	mm, err := NewMultiMatcher(patterns, opts)
	if err != nil {
		panic(err)
	}
	return mm
}

// Match returns true if any pattern matches.
func (mm *MultiMatcher) Match(input string) bool {
	for _, m := range mm.matchers {
		if m.Match(input) {
			return true
		}
	}
	return false
}
