package editor

import "strings"

// Match is a single occurrence of a search pattern: the zero-based line
// number and the full text of that line.
type Match struct {
	Num  int
	Text string
}

// Matches collects the occurrences of one search pattern in line order.
type Matches struct {
	pattern string
	matches []Match
}

// NewMatches creates a match group for pattern, optionally pre-populated.
func NewMatches(pattern string, matches ...Match) *Matches {
	return &Matches{pattern: pattern, matches: matches}
}

// Pattern returns the searched pattern.
func (m *Matches) Pattern() string {
	return m.pattern
}

// Add appends a match.
func (m *Matches) Add(match Match) {
	m.matches = append(m.matches, match)
}

// Len returns the number of recorded matches.
func (m *Matches) Len() int {
	return len(m.matches)
}

// At returns the i-th match in line order.
func (m *Matches) At(i int) Match {
	return m.matches[i]
}

// All returns the matches in line order. The slice is shared; callers must
// not mutate it.
func (m *Matches) All() []Match {
	return m.matches
}

// Found is the aggregate outcome of searching an editor for multiple
// patterns at once: one group per searched pattern, in pattern order,
// present even when a pattern matched nothing.
type Found []*Matches

// Len returns the number of searched patterns.
func (f Found) Len() int {
	return len(f)
}

// Group returns the match group for the i-th searched pattern.
func (f Found) Group(i int) *Matches {
	return f[i]
}

// Find searches every line for literal occurrences of each pattern. Every
// line containing a pattern contributes one match to that pattern's group;
// patterns with no occurrences still get an empty group.
func (e *Editor) Find(patterns ...string) Found {
	found := make(Found, 0, len(patterns))
	for _, pattern := range patterns {
		group := NewMatches(pattern)
		for i, line := range e.lines {
			if strings.Contains(line, pattern) {
				group.Add(Match{Num: i, Text: line})
			}
		}
		found = append(found, group)
	}
	return found
}
