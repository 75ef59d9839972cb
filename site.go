package wordslide

import (
	"strings"
	"unicode/utf8"
)

// CountRule selects how a site's verse-marker count maps to allocated slots.
// The two hymnal sites disagree on this, so the rule is part of the table.
type CountRule string

// Supported count rules.
const (
	// CountTrailing drops the last verse marker, which closes the
	// container without holding any lyrics.
	CountTrailing CountRule = "trailing"

	// CountChorusSlot keeps every verse marker and adds one slot for the
	// chorus when the chorus marker is present.
	CountChorusSlot CountRule = "chorus-slot"
)

// LetterPlaceholder is replaced in Site.IndexURL by the first letter of the
// query.
const LetterPlaceholder = "{letter}"

// Replacement is one literal substitution applied to extracted text.
type Replacement struct {
	Old string `yaml:"old" json:"old"`
	New string `yaml:"new" json:"new"`
}

// Site is the delimiter table for one hymnal web site. Everything the
// extractor knows about a site's markup lives here so that a markup change
// means editing data, not code.
type Site struct {
	Name   string `yaml:"name" json:"name"`
	Source Source `yaml:"source" json:"source"`

	// IndexURL is the page searched when the query is a title. It may
	// contain LetterPlaceholder.
	IndexURL string `yaml:"indexURL" json:"indexURL"`
	// BaseURL is prefixed to hrefs resolved from the index.
	BaseURL string `yaml:"baseURL" json:"baseURL"`
	// DirectMarker marks a query as a page address rather than a title.
	DirectMarker string `yaml:"directMarker" json:"directMarker"`
	// AnchorPrefix is the literal anchor opener preceding an href value.
	AnchorPrefix string `yaml:"anchorPrefix" json:"anchorPrefix"`
	// IndexReplacements are applied to the index page before searching.
	IndexReplacements []Replacement `yaml:"indexReplacements,omitempty" json:"indexReplacements,omitempty"`

	TitleStart string `yaml:"titleStart" json:"titleStart"`
	TitleEnd   string `yaml:"titleEnd" json:"titleEnd"`
	StripTitle bool   `yaml:"stripTitle" json:"stripTitle"`

	// ContainerStart opens the verse container. When empty the container
	// starts at the title marker.
	ContainerStart string `yaml:"containerStart" json:"containerStart"`
	ContainerEnd   string `yaml:"containerEnd" json:"containerEnd"`

	VerseStart  string    `yaml:"verseStart" json:"verseStart"`
	VerseEnd    string    `yaml:"verseEnd" json:"verseEnd"`
	ChorusStart string    `yaml:"chorusStart" json:"chorusStart"`
	CountRule   CountRule `yaml:"countRule" json:"countRule"`

	// Replacements are applied in order to every verse before tags are
	// stripped.
	Replacements []Replacement `yaml:"replacements,omitempty" json:"replacements,omitempty"`
}

// SiteA returns the table for the RHO hymnbook, searched through a single
// index page.
func SiteA() Site {
	return Site{
		Name:         "RHO Hymnbook",
		Source:       SourceSiteA,
		IndexURL:     "http://www.igracemusic.com/hymnbook/hymns.html",
		BaseURL:      "http://www.igracemusic.com/hymnbook/",
		DirectMarker: ".html",
		AnchorPrefix: `<a href="`,
		TitleStart:   ` class="header1">`,
		TitleEnd:     "</p>",
		StripTitle:   true,
		ContainerEnd: `<a href="#top">`,
		VerseStart:   ` class="body">`,
		VerseEnd:     "</p>",
		CountRule:    CountTrailing,
		Replacements: []Replacement{
			{Old: "&#146;", New: "'"},
			{Old: "&quot;", New: `"`},
			{Old: "<br>\n", New: Newline},
			{Old: strings.Repeat(" ", 14), New: ""},
		},
	}
}

// SiteB returns the table for the Cyber Hymnal, searched through one index
// page per initial letter.
func SiteB() Site {
	return Site{
		Name:         "Cyber Hymnal",
		Source:       SourceSiteB,
		IndexURL:     "http://www.cyberhymnal.org/ttl/ttl-" + LetterPlaceholder + ".htm",
		BaseURL:      "http://www.cyberhymnal.org",
		DirectMarker: ".htm",
		AnchorPrefix: `<a href="..`,
		IndexReplacements: []Replacement{
			{Old: "&#8217;", New: "'"},
		},
		TitleStart:     "<title>",
		TitleEnd:       "</title>",
		ContainerStart: `<div class="lyrics">`,
		ContainerEnd:   "</div>",
		VerseStart:     "<p>",
		VerseEnd:       "</p>",
		ChorusStart:    `<p class="chorus">`,
		CountRule:      CountChorusSlot,
		Replacements: []Replacement{
			{Old: "<br />", New: ""},
			{Old: "&#8217;", New: "'"},
			{Old: "&#8212;", New: "-"},
			{Old: "&#8220;", New: `"`},
			{Old: "&#8221;", New: `"`},
		},
	}
}

// DefaultSites returns the built-in tables keyed by source.
func DefaultSites() map[Source]Site {
	return map[Source]Site{
		SourceSiteA: SiteA(),
		SourceSiteB: SiteB(),
	}
}

// Validate returns an error if the table is missing a required marker.
func (s *Site) Validate() error {
	required := []struct {
		field, value string
	}{
		{"source", string(s.Source)},
		{"indexURL", s.IndexURL},
		{"anchorPrefix", s.AnchorPrefix},
		{"directMarker", s.DirectMarker},
		{"titleStart", s.TitleStart},
		{"titleEnd", s.TitleEnd},
		{"containerEnd", s.ContainerEnd},
		{"verseStart", s.VerseStart},
		{"verseEnd", s.VerseEnd},
	}
	for _, r := range required {
		if r.value == "" {
			return Errorf(EINVALID, "site %q: %s required", s.Name, r.field)
		}
	}
	switch s.CountRule {
	case CountTrailing:
	case CountChorusSlot:
		if s.ChorusStart == "" {
			return Errorf(EINVALID, "site %q: chorusStart required for count rule %q", s.Name, s.CountRule)
		}
	default:
		return Errorf(EINVALID, "site %q: unknown count rule %q", s.Name, s.CountRule)
	}
	for _, rs := range [][]Replacement{s.IndexReplacements, s.Replacements} {
		for _, r := range rs {
			if r.Old == "" {
				return Errorf(EINVALID, "site %q: empty replacement pattern", s.Name)
			}
		}
	}
	return nil
}

// IsDirect reports whether query is a page address rather than a title.
func (s *Site) IsDirect(query string) bool {
	return strings.Contains(query, s.DirectMarker)
}

// IndexPage returns the index page address to search for query.
func (s *Site) IndexPage(query string) string {
	if !strings.Contains(s.IndexURL, LetterPlaceholder) {
		return s.IndexURL
	}
	r, _ := utf8.DecodeRuneInString(strings.ToLower(strings.TrimSpace(query)))
	return strings.ReplaceAll(s.IndexURL, LetterPlaceholder, string(r))
}

// PageURL joins an href resolved from the index to the site's base address.
func (s *Site) PageURL(href string) string {
	return s.BaseURL + href
}

// PrepareIndex applies the index replacements to a downloaded index page.
func (s *Site) PrepareIndex(page string) string {
	return replaceAll(page, s.IndexReplacements)
}

// Clean applies the site's replacements in order and strips the remaining
// tags from one extracted block.
func (s *Site) Clean(text string) string {
	return StripTags(replaceAll(text, s.Replacements))
}

func replaceAll(s string, rs []Replacement) string {
	for _, r := range rs {
		s = strings.ReplaceAll(s, r.Old, r.New)
	}
	return s
}
