package site

import (
	"strings"

	"github.com/fwojciec/wordslide"
)

// Extract builds a slide set from a downloaded song page.
//
// The title and the verse container are carved out with the site's
// markers, verse markers in the container are counted to size the set, and
// each verse is cleaned and written in order. When the site counts a chorus
// slot and the container holds a chorus marker, the chorus is taken from
// the second marker occurrence (the first one is the page's jump link) and
// stored in the last slot.
//
// Any marker that cannot be found fails the whole extraction with
// EINTERNAL; no partial set is returned.
func Extract(site wordslide.Site, page string) (*wordslide.SlideSet, error) {
	title, at, err := wordslide.Between(page, site.TitleStart, site.TitleEnd, 0)
	if err != nil {
		return nil, err
	}
	if site.StripTitle {
		title = wordslide.StripTags(title)
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, wordslide.Errorf(wordslide.EINTERNAL, "empty title")
	}

	var container string
	if site.ContainerStart == "" {
		container, err = wordslide.FindContainer(page[at:], site.TitleStart, site.ContainerEnd)
	} else {
		container, err = wordslide.FindContainer(page, site.ContainerStart, site.ContainerEnd)
	}
	if err != nil {
		return nil, err
	}

	verses, chorus := count(site, container)
	slots := verses
	if chorus {
		slots++
	}
	if slots == 0 {
		return nil, wordslide.Errorf(wordslide.EINTERNAL, "no verses in %q container", site.Name)
	}

	blocks, err := wordslide.ExtractBlocks(container, site.VerseStart, site.VerseEnd, verses)
	if err != nil {
		return nil, err
	}

	set := &wordslide.SlideSet{Name: title, Source: site.Source}
	if err := set.Reserve(slots, 0); err != nil {
		return nil, err
	}
	for n, block := range blocks {
		if err := set.SetText(n, site.Clean(block), 0); err != nil {
			return nil, err
		}
	}

	if chorus {
		block, err := wordslide.NthBlock(container, site.ChorusStart, site.VerseEnd, 2)
		if err != nil {
			return nil, err
		}
		last := slots - 1
		if err := set.SetText(last, site.Clean(block), 0); err != nil {
			return nil, err
		}
		if err := set.SetChorus(last); err != nil {
			return nil, err
		}
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// count returns the number of verses to extract and whether a chorus slot
// is needed, following the site's count rule.
func count(site wordslide.Site, container string) (verses int, chorus bool) {
	n := wordslide.CountMarkers(container, site.VerseStart)
	switch site.CountRule {
	case wordslide.CountTrailing:
		return max(n-1, 0), false
	case wordslide.CountChorusSlot:
		return n, strings.Contains(container, site.ChorusStart)
	}
	return n, false
}
