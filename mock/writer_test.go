package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/wordslide"
	"github.com/fwojciec/wordslide/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlideSetWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where SlideSetWriter is expected
	var _ wordslide.SlideSetWriter = &mock.SlideSetWriter{}
}

func TestSlideSetWriter_WriteSlideSet(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteSlideSetFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *wordslide.SlideSet
		w := &mock.SlideSetWriter{
			WriteSlideSetFn: func(_ context.Context, set *wordslide.SlideSet) error {
				calledWith = set
				return nil
			},
		}

		set := &wordslide.SlideSet{
			Name:      "Abide with Me",
			Source:    wordslide.SourceSiteA,
			SourceURL: "http://www.igracemusic.com/hymnbook/hymns/a01.html",
		}

		err := w.WriteSlideSet(context.Background(), set)

		require.NoError(t, err)
		assert.Equal(t, set, calledWith)
	})
}
