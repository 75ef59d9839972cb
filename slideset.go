package wordslide

import (
	"context"
	"strings"
	"time"
)

// Source identifies where a slide set was imported from.
type Source string

// Supported import sources.
const (
	SourceSiteA  Source = "site-a"
	SourceSiteB  Source = "site-b"
	SourceLegacy Source = "legacy"
)

// TextBlock is one verse of a slide set.
type TextBlock struct {
	Text  string `json:"text"`
	Style int    `json:"style"`
}

// SlideSet is the result of an import: a title, the verses in order and
// optionally the index of the verse that is repeated as the chorus.
//
// Texts are allocated up front with Reserve and filled by index with
// SetText. Every slot must be written exactly once before the set is used.
type SlideSet struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Chorus      *int        `json:"chorus,omitempty"`
	Texts       []TextBlock `json:"texts"`
	Styles      int         `json:"styles"`
	Source      Source      `json:"source"`
	SourceURL   string      `json:"sourceUrl"`
	ContentHash string      `json:"contentHash"`
	ImportedAt  time.Time   `json:"importedAt"`

	written []bool
}

// Reserve allocates count text slots and extraStyles style slots in
// addition to the default style 0. Any previously written texts are
// discarded.
func (s *SlideSet) Reserve(count, extraStyles int) error {
	if count < 0 {
		return Errorf(EINVALID, "negative text count %d", count)
	}
	if extraStyles < 0 {
		return Errorf(EINVALID, "negative style count %d", extraStyles)
	}
	s.Texts = make([]TextBlock, count)
	s.Styles = 1 + extraStyles
	s.Chorus = nil
	s.written = make([]bool, count)
	return nil
}

// SetText writes the text of slot index using the given style slot.
// Each slot may be written once.
func (s *SlideSet) SetText(index int, text string, style int) error {
	if index < 0 || index >= len(s.Texts) {
		return Errorf(EINVALID, "text index %d out of range [0,%d)", index, len(s.Texts))
	}
	if style < 0 || style >= s.Styles {
		return Errorf(EINVALID, "style slot %d out of range [0,%d)", style, s.Styles)
	}
	if s.written[index] {
		return Errorf(EINVALID, "text index %d already written", index)
	}
	s.Texts[index] = TextBlock{Text: text, Style: style}
	s.written[index] = true
	return nil
}

// SetChorus marks the text at index as the chorus.
func (s *SlideSet) SetChorus(index int) error {
	if index < 0 || index >= len(s.Texts) {
		return Errorf(EINVALID, "chorus index %d out of range [0,%d)", index, len(s.Texts))
	}
	s.Chorus = &index
	return nil
}

// HasChorus reports whether a chorus was detected.
func (s *SlideSet) HasChorus() bool {
	return s.Chorus != nil
}

// Validate returns an error if the slide set is incomplete.
func (s *SlideSet) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return Errorf(EINVALID, "slide set name required")
	}
	if len(s.written) != len(s.Texts) {
		return Errorf(EINVALID, "slide set texts not reserved")
	}
	for i, ok := range s.written {
		if !ok {
			return Errorf(EINVALID, "text index %d never written", i)
		}
	}
	if s.Chorus != nil && (*s.Chorus < 0 || *s.Chorus >= len(s.Texts)) {
		return Errorf(EINVALID, "chorus index %d out of range", *s.Chorus)
	}
	return nil
}

// Content returns the name and texts joined for hashing and comparison.
func (s *SlideSet) Content() string {
	var b strings.Builder
	b.WriteString(s.Name)
	for _, t := range s.Texts {
		b.WriteString("\x00")
		b.WriteString(t.Text)
	}
	return b.String()
}

// Importer turns a search key into a slide set.
// Site importers accept a free-text title or a direct page address; the
// legacy importer accepts a file path.
type Importer interface {
	// Import returns a freshly built slide set.
	// Returns ENOTFOUND if the title is not in the site's index,
	// EDELIMITER if the site's markup no longer matches, and EINTERNAL
	// for any other failure.
	Import(ctx context.Context, query string) (*SlideSet, error)
}

// SlideSetService represents a service for managing imported slide sets.
type SlideSetService interface {
	// CreateSlideSet stores a new slide set and assigns its ID.
	CreateSlideSet(ctx context.Context, set *SlideSet) error

	// FindSlideSetByID retrieves a slide set by ID.
	// Returns ENOTFOUND if the slide set does not exist.
	FindSlideSetByID(ctx context.Context, id string) (*SlideSet, error)

	// FindSlideSets retrieves slide sets matching the filter.
	FindSlideSets(ctx context.Context, filter SlideSetFilter) ([]*SlideSet, error)

	// DeleteSlideSet permanently removes a slide set.
	// Returns ENOTFOUND if the slide set does not exist.
	DeleteSlideSet(ctx context.Context, id string) error
}

// SlideSetFilter represents a filter for FindSlideSets.
type SlideSetFilter struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	Source      *Source `json:"source"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SlideSetWriter exports a slide set.
type SlideSetWriter interface {
	WriteSlideSet(ctx context.Context, set *SlideSet) error
}
