package admonition

import (
	"iter"
	"regexp"
)

// blockPattern implements the block grammar. The ???+ alternative comes
// before ??? so the plus variant is never cut short. Types are Unicode
// words, not just ASCII.
var blockPattern = regexp.MustCompile(
	`(\?{3}\+|\?{3}|!{3})[ \t]([\p{L}\p{M}\p{N}_]+)(?: +"(.*)")?\n((?:(?:    |\t).*\n|\n)+)`,
)

// Match is one admonition span found in a document.
// Start and End are byte offsets into the scanned text.
type Match struct {
	Start  int
	End    int
	Source string

	Marker   string
	Type     string
	Title    string
	HasTitle bool
	// Content is the raw indented body, newline-terminated.
	Content string
}

// Scan returns the admonition spans of text in document order.
// Spans never overlap, and the sequence can be ranged over any number of times.
func Scan(text string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		pos := 0
		for pos < len(text) {
			loc := blockPattern.FindStringSubmatchIndex(text[pos:])
			if loc == nil {
				return
			}
			m := newMatch(text, pos, loc)
			if !yield(m) {
				return
			}
			pos = m.End
		}
	}
}

// Matches collects every span Scan finds.
func Matches(text string) []Match {
	var out []Match
	for m := range Scan(text) {
		out = append(out, m)
	}
	return out
}

// newMatch builds a Match from submatch indexes relative to text[base:].
func newMatch(text string, base int, loc []int) Match {
	group := func(i int) (string, bool) {
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 {
			return "", false
		}
		return text[base+start : base+end], true
	}

	m := Match{
		Start: base + loc[0],
		End:   base + loc[1],
	}
	m.Source = text[m.Start:m.End]
	m.Marker, _ = group(1)
	m.Type, _ = group(2)
	m.Title, m.HasTitle = group(3)
	m.Content, _ = group(4)
	return m
}
