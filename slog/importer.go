package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wordslide"
)

// Ensure LoggingImporter implements wordslide.Importer.
var _ wordslide.Importer = (*LoggingImporter)(nil)

// LoggingImporter wraps an Importer with logging.
type LoggingImporter struct {
	next   wordslide.Importer
	source wordslide.Source
	logger *slog.Logger
}

// NewLoggingImporter creates a new LoggingImporter.
func NewLoggingImporter(next wordslide.Importer, source wordslide.Source, logger *slog.Logger) *LoggingImporter {
	return &LoggingImporter{next: next, source: source, logger: logger}
}

// Import delegates to the wrapped importer and logs the outcome, including
// the error code so markup changes stand out from missing titles.
func (i *LoggingImporter) Import(ctx context.Context, query string) (set *wordslide.SlideSet, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"source", string(i.source),
			"query", query,
			"duration", time.Since(begin),
		}
		if set != nil {
			attrs = append(attrs, "name", set.Name, "texts", len(set.Texts), "chorus", set.HasChorus())
		}
		if err != nil {
			attrs = append(attrs, "code", wordslide.ErrorCode(err), "err", err)
			i.logger.Warn("import", attrs...)
			return
		}
		i.logger.Info("import", attrs...)
	}(time.Now())
	return i.next.Import(ctx, query)
}
