// Package ppt recovers plain text from legacy binary presentation files.
//
// The recovery does not parse the container format. It watches the byte
// stream for the short sentinel sequence that opens an embedded text record
// and copies the bytes that follow. Output quality is not guaranteed: the
// result is raw text that usually needs manual correction. The scan always
// terminates and never reports an error for malformed input.
package ppt

import (
	"io"
	"strings"

	"github.com/fwojciec/wordslide"
	"golang.org/x/text/encoding/charmap"
)

// Sentinel and control byte values recognised by the scan.
const (
	SentinelChars  = 0xA0 // first byte of a UTF-16 text record type
	SentinelBytes  = 0xA8 // first byte of an 8-bit text record type
	SentinelRecord = 0x0F // second byte of either text record type
	HeaderTerm     = 0x02 // first header byte that cancels the run
	HeaderLen      = 4
)

type state int

const (
	stateIdle state = iota
	stateSentinel
	stateHeader
	stateText
)

// Recovered is the text pulled out of one byte stream.
type Recovered struct {
	// Fragments holds each non-empty text run that ended at a double zero
	// byte.
	// A title split across records shows up as several fragments.
	Fragments []string

	// Text is every recovered run, including an unterminated final run,
	// joined with newlines.
	Text string
}

// Title returns the first completed fragment, or "" if there is none.
func (r Recovered) Title() string {
	if len(r.Fragments) == 0 {
		return ""
	}
	return strings.TrimSpace(r.Fragments[0])
}

// Extractor is the byte-at-a-time state machine. The zero value is ready to
// use. It implements io.Writer so a file can be fed with io.Copy.
type Extractor struct {
	state    state
	header   int
	boundary bool
	run      []byte
	frags    []string
}

// Ensure Extractor can be used as a byte sink.
var (
	_ io.Writer     = (*Extractor)(nil)
	_ io.ByteWriter = (*Extractor)(nil)
)

// Write feeds p through the state machine. It never fails.
func (e *Extractor) Write(p []byte) (int, error) {
	for _, c := range p {
		e.step(c)
	}
	return len(p), nil
}

// WriteByte feeds one byte through the state machine. It never fails.
func (e *Extractor) WriteByte(c byte) error {
	e.step(c)
	return nil
}

func (e *Extractor) step(c byte) {
	switch e.state {
	case stateIdle, stateSentinel:
		if e.state == stateSentinel && c == SentinelRecord {
			e.state = stateHeader
			e.header = 0
			e.boundary = false
			e.run = e.run[:0]
			return
		}
		if c == SentinelChars || c == SentinelBytes {
			e.state = stateSentinel
		} else {
			e.state = stateIdle
		}

	case stateHeader:
		if e.header == 0 && c == HeaderTerm {
			e.state = stateIdle
			return
		}
		e.header++
		if e.header == HeaderLen {
			e.state = stateText
		}

	case stateText:
		if c != 0 {
			e.boundary = false
			e.run = append(e.run, c)
			return
		}
		if !e.boundary {
			e.boundary = true
			return
		}
		if len(e.run) > 0 {
			e.frags = append(e.frags, decode(e.run))
		}
		e.run = e.run[:0]
		e.state = stateIdle
	}
}

// Result returns what has been recovered so far. A run still open when the
// stream ended is included in Text but not in Fragments.
func (e *Extractor) Result() Recovered {
	frags := append([]string(nil), e.frags...)
	runs := frags
	if e.state == stateText && len(e.run) > 0 {
		runs = append(frags[:len(frags):len(frags)], decode(e.run))
	}
	return Recovered{
		Fragments: frags,
		Text:      strings.Join(runs, wordslide.Newline),
	}
}

// Scan reads r to the end and returns the recovered text. A read error
// ends the scan early; whatever was recovered up to that point is returned.
func Scan(r io.Reader) Recovered {
	var e Extractor
	_, _ = io.Copy(&e, r)
	return e.Result()
}

// decode maps 8-bit text to UTF-8 using the Windows-1252 code page the
// legacy files were written with.
func decode(b []byte) string {
	s, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}
