package mock

import (
	"context"

	"github.com/fwojciec/wordslide"
)

var _ wordslide.SlideSetWriter = (*SlideSetWriter)(nil)

// SlideSetWriter is a mock implementation of wordslide.SlideSetWriter.
type SlideSetWriter struct {
	WriteSlideSetFn func(ctx context.Context, set *wordslide.SlideSet) error
}

func (w *SlideSetWriter) WriteSlideSet(ctx context.Context, set *wordslide.SlideSet) error {
	return w.WriteSlideSetFn(ctx, set)
}
