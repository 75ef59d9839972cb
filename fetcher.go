package wordslide

import "context"

// Fetcher retrieves the full text of a remote page.
type Fetcher interface {
	// Fetch downloads the page at url and returns its body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
