// Package site imports slide sets from hymnal web sites by scanning their
// pages for the literal markers listed in a wordslide.Site table.
package site

import (
	"context"
	"strings"

	"github.com/fwojciec/wordslide"
)

// Ensure Importer implements wordslide.Importer at compile time.
var _ wordslide.Importer = (*Importer)(nil)

// Importer resolves a title or page address on one site and extracts the
// page's verses.
type Importer struct {
	fetcher wordslide.Fetcher
	site    wordslide.Site
}

// NewImporter creates an Importer for the given site table.
func NewImporter(fetcher wordslide.Fetcher, site wordslide.Site) *Importer {
	return &Importer{fetcher: fetcher, site: site}
}

// Site returns the delimiter table used by the importer.
func (i *Importer) Site() wordslide.Site {
	return i.site
}

// Import fetches the page for query and extracts a slide set from it.
// A query containing the site's direct marker is used as the page address;
// anything else is looked up in the site's index first.
func (i *Importer) Import(ctx context.Context, query string) (*wordslide.SlideSet, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, wordslide.Errorf(wordslide.EINVALID, "search query required")
	}
	if err := i.site.Validate(); err != nil {
		return nil, err
	}

	addr := query
	if !i.site.IsDirect(query) {
		var err error
		if addr, err = i.Resolve(ctx, query); err != nil {
			return nil, err
		}
	}

	page, err := i.fetch(ctx, addr)
	if err != nil {
		return nil, err
	}

	set, err := Extract(i.site, page)
	if err != nil {
		return nil, err
	}
	set.SourceURL = addr
	return set, nil
}

// Resolve looks query up in the site's index page and returns the address
// of the matching song page.
func (i *Importer) Resolve(ctx context.Context, query string) (string, error) {
	index, err := i.fetch(ctx, i.site.IndexPage(query))
	if err != nil {
		return "", err
	}

	href, err := wordslide.ResolveAnchor(i.site.PrepareIndex(index), query, i.site.AnchorPrefix)
	if err != nil {
		return "", err
	}
	return i.site.PageURL(href), nil
}

func (i *Importer) fetch(ctx context.Context, url string) (string, error) {
	page, err := i.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", wordslide.WrapError(wordslide.EINTERNAL, err, "fetch %s", url)
	}
	return page, nil
}
