package mock

import (
	"context"

	"github.com/fwojciec/wordslide"
)

var _ wordslide.Importer = (*Importer)(nil)

// Importer is a mock implementation of wordslide.Importer.
type Importer struct {
	ImportFn func(ctx context.Context, query string) (*wordslide.SlideSet, error)
}

func (i *Importer) Import(ctx context.Context, query string) (*wordslide.SlideSet, error) {
	return i.ImportFn(ctx, query)
}
