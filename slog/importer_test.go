package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/wordslide"
	"github.com/fwojciec/wordslide/mock"
	wsslog "github.com/fwojciec/wordslide/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingImporter_Import(t *testing.T) {
	t.Parallel()

	t.Run("logs source, query and result size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Importer{
			ImportFn: func(_ context.Context, query string) (*wordslide.SlideSet, error) {
				set := &wordslide.SlideSet{Name: "Abide with Me"}
				require.NoError(t, set.Reserve(3, 0))
				require.NoError(t, set.SetChorus(2))
				return set, nil
			},
		}

		importer := wsslog.NewLoggingImporter(inner, wordslide.SourceSiteB, logger)
		set, err := importer.Import(context.Background(), "abide")

		require.NoError(t, err)
		assert.Equal(t, "Abide with Me", set.Name)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "msg=import")
		assert.Contains(t, output, "source=site-b")
		assert.Contains(t, output, "query=abide")
		assert.Contains(t, output, "texts=3")
		assert.Contains(t, output, "chorus=true")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error code as a warning", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Importer{
			ImportFn: func(_ context.Context, query string) (*wordslide.SlideSet, error) {
				return nil, wordslide.Errorf(wordslide.EDELIMITER, "no anchor")
			},
		}

		importer := wsslog.NewLoggingImporter(inner, wordslide.SourceSiteA, logger)
		_, err := importer.Import(context.Background(), "abide")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "code=delimiter_mismatch")
		assert.Contains(t, output, "err=\"no anchor\"")
	})
}
