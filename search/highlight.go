package search

import (
	"strings"
	"unicode/utf8"
)

// Segment is a run of a name that either matched the search term or did not.
type Segment struct {
	Text  string
	Match bool
}

// Normalize maps a search term to its cache key. Only case is folded;
// surrounding whitespace is significant.
func Normalize(term string) string {
	return strings.ToLower(term)
}

// Matches reports whether name contains term, ignoring case.
func Matches(name, term string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(term))
}

// Highlight splits name into segments, marking every leftmost,
// non-overlapping case-insensitive occurrence of term. A blank term yields a
// single unmatched segment.
func Highlight(name, term string) []Segment {
	if strings.TrimSpace(term) == "" {
		return []Segment{{Text: name}}
	}

	runes := utf8.RuneCountInString(term)
	var segs []Segment
	start := 0
	for i := 0; i < len(name); {
		if end, ok := matchAt(name, i, term, runes); ok {
			if i > start {
				segs = append(segs, Segment{Text: name[start:i]})
			}
			segs = append(segs, Segment{Text: name[i:end], Match: true})
			i, start = end, end
			continue
		}
		_, size := utf8.DecodeRuneInString(name[i:])
		i += size
	}
	if start < len(name) {
		segs = append(segs, Segment{Text: name[start:]})
	}
	return segs
}

// matchAt compares the next n runes of s at byte offset i with term.
func matchAt(s string, i int, term string, n int) (int, bool) {
	end := i
	for range n {
		if end >= len(s) {
			return 0, false
		}
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}
	return end, strings.EqualFold(s[i:end], term)
}
