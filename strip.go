package wordslide

import "strings"

// StripTags removes bracketed markup from s.
//
// The scan keeps the position of the most recent unmatched '<'. A '>' seen
// while an opener is pending deletes everything from that opener through
// the '>' and scanning continues right after the deletion point. A second
// '<' replaces the pending opener, so malformed nesting collapses to the
// innermost tag. A '>' with no pending opener is kept as text.
func StripTags(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return s
	}

	out := make([]byte, 0, len(s))
	pending := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '<':
			pending = len(out)
			out = append(out, c)
		case c == '>' && pending != -1:
			out = out[:pending]
			pending = -1
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
