package mock

import (
	"context"

	"github.com/fwojciec/wordslide"
)

var _ wordslide.SlideSetService = (*SlideSetService)(nil)

// SlideSetService is a mock implementation of wordslide.SlideSetService.
type SlideSetService struct {
	CreateSlideSetFn   func(ctx context.Context, set *wordslide.SlideSet) error
	FindSlideSetByIDFn func(ctx context.Context, id string) (*wordslide.SlideSet, error)
	FindSlideSetsFn    func(ctx context.Context, filter wordslide.SlideSetFilter) ([]*wordslide.SlideSet, error)
	DeleteSlideSetFn   func(ctx context.Context, id string) error
}

func (s *SlideSetService) CreateSlideSet(ctx context.Context, set *wordslide.SlideSet) error {
	return s.CreateSlideSetFn(ctx, set)
}

func (s *SlideSetService) FindSlideSetByID(ctx context.Context, id string) (*wordslide.SlideSet, error) {
	return s.FindSlideSetByIDFn(ctx, id)
}

func (s *SlideSetService) FindSlideSets(ctx context.Context, filter wordslide.SlideSetFilter) ([]*wordslide.SlideSet, error) {
	return s.FindSlideSetsFn(ctx, filter)
}

func (s *SlideSetService) DeleteSlideSet(ctx context.Context, id string) error {
	return s.DeleteSlideSetFn(ctx, id)
}
