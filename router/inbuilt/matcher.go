package inbuilt

import "strings"

// Wildcard ending a pattern turns it into a prefix match. Whatever follows the prefix is
// captured and passed to the handler as the tail.
const Wildcard = "*"

type matcher struct {
	pattern string
	prefix  bool
}

func newMatcher(pattern string) matcher {
	if prefix, found := strings.CutSuffix(pattern, Wildcard); found {
		return matcher{pattern: prefix, prefix: true}
	}

	return matcher{pattern: pattern}
}

// Match reports whether the path matches. For prefix patterns the tail may be empty.
func (m matcher) Match(path string) (tail string, ok bool) {
	if m.prefix {
		return strings.CutPrefix(path, m.pattern)
	}

	return "", path == m.pattern
}

func (m matcher) String() string {
	if m.prefix {
		return m.pattern + Wildcard
	}

	return m.pattern
}
