package wordslide

import "strings"

// Unbounded tells ExtractBlocks to take every marker occurrence.
const Unbounded = -1

// Scanner walks the occurrences of a literal marker in a haystack.
// Its cursor only moves forward.
type Scanner struct {
	haystack string
	marker   string
	pos      int
}

// NewScanner returns a Scanner positioned at the start of haystack.
func NewScanner(haystack, marker string) *Scanner {
	return &Scanner{haystack: haystack, marker: marker}
}

// Next returns the offset of the next marker occurrence and moves the
// cursor past it. It returns false once the haystack is exhausted.
func (s *Scanner) Next() (int, bool) {
	if s.marker == "" || s.pos > len(s.haystack) {
		return -1, false
	}
	i := strings.Index(s.haystack[s.pos:], s.marker)
	if i == -1 {
		s.pos = len(s.haystack) + 1
		return -1, false
	}
	at := s.pos + i
	s.pos = at + len(s.marker)
	return at, true
}

// Pos returns the cursor offset.
func (s *Scanner) Pos() int {
	return s.pos
}

// CountMarkers returns the number of non-overlapping occurrences of marker
// in haystack, counted with the same cursor rule ExtractBlocks uses.
func CountMarkers(haystack, marker string) int {
	n := 0
	sc := NewScanner(haystack, marker)
	for {
		if _, ok := sc.Next(); !ok {
			return n
		}
		n++
	}
}

// Between returns the text that follows the first start marker at or after
// from, up to the next end marker. It also returns the offset of the start
// marker. A missing marker is an EINTERNAL error.
func Between(haystack, start, end string, from int) (string, int, error) {
	if from < 0 || from > len(haystack) {
		return "", -1, Errorf(EINTERNAL, "offset %d out of range", from)
	}
	i := strings.Index(haystack[from:], start)
	if i == -1 {
		return "", -1, Errorf(EINTERNAL, "marker %q not found", start)
	}
	at := from + i
	body := at + len(start)
	j := strings.Index(haystack[body:], end)
	if j == -1 {
		return "", -1, Errorf(EINTERNAL, "closing marker %q not found after %q", end, start)
	}
	return haystack[body : body+j], at, nil
}

// FindContainer returns the slice of haystack that begins at the first start
// marker and stops right before the next end marker. The start marker itself
// is included so that callers can keep scanning relative to it.
func FindContainer(haystack, start, end string) (string, error) {
	i := strings.Index(haystack, start)
	if i == -1 {
		return "", Errorf(EINTERNAL, "container marker %q not found", start)
	}
	j := strings.Index(haystack[i:], end)
	if j == -1 {
		return "", Errorf(EINTERNAL, "container end %q not found", end)
	}
	return haystack[i : i+j], nil
}

// ExtractBlocks returns the text between each start marker and the next end
// marker, in order. At most max blocks are taken; a negative max such as
// Unbounded takes them all. A bounded call that finds fewer than max start
// markers, or a start marker without a following end marker, fails with
// EINTERNAL and returns no blocks.
func ExtractBlocks(haystack, start, end string, max int) ([]string, error) {
	if start == "" || end == "" {
		return nil, Errorf(EINVALID, "empty block delimiter")
	}

	var blocks []string
	if max > 0 {
		blocks = make([]string, 0, max)
	}
	sc := NewScanner(haystack, start)
	for max < 0 || len(blocks) < max {
		at, ok := sc.Next()
		if !ok {
			if max >= 0 {
				return nil, Errorf(EINTERNAL, "found %d of %d %q markers", len(blocks), max, start)
			}
			break
		}
		body := at + len(start)
		j := strings.Index(haystack[body:], end)
		if j == -1 {
			return nil, Errorf(EINTERNAL, "block %d: closing marker %q not found", len(blocks), end)
		}
		blocks = append(blocks, haystack[body:body+j])
	}
	return blocks, nil
}

// NthBlock returns the text between the n-th (1-based) start marker and the
// next end marker.
func NthBlock(haystack, start, end string, n int) (string, error) {
	if n < 1 {
		return "", Errorf(EINVALID, "block ordinal %d must be positive", n)
	}
	sc := NewScanner(haystack, start)
	at := -1
	for i := 0; i < n; i++ {
		var ok bool
		if at, ok = sc.Next(); !ok {
			return "", Errorf(EINTERNAL, "occurrence %d of %q not found", n, start)
		}
	}
	body, _, err := Between(haystack, start, end, at)
	return body, err
}

// ResolveAnchor finds query in a case-folded index page and returns the href
// value of the first anchor opener placed after the match.
//
// Returns ENOTFOUND if the query does not occur in the page and EDELIMITER
// if no anchor opener follows the match or its attribute is unterminated.
func ResolveAnchor(page, query, anchorPrefix string) (string, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return "", Errorf(EINVALID, "search query required")
	}
	if anchorPrefix == "" {
		return "", Errorf(EINVALID, "anchor prefix required")
	}
	page = strings.ToLower(page)

	match := strings.Index(page, query)
	if match == -1 {
		return "", Errorf(ENOTFOUND, "%q not found in index", query)
	}

	sc := NewScanner(page, anchorPrefix)
	anchor := -1
	for {
		at, ok := sc.Next()
		if !ok {
			break
		}
		if at > match {
			anchor = at
			break
		}
	}
	if anchor == -1 {
		return "", Errorf(EDELIMITER, "no %q anchor after %q in index", anchorPrefix, query)
	}

	href := anchor + len(anchorPrefix)
	end := strings.IndexByte(page[href:], '"')
	if end == -1 {
		return "", Errorf(EDELIMITER, "unterminated anchor at offset %d", anchor)
	}
	return page[href : href+end], nil
}
