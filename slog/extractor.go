package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/javadts"
)

// Ensure LoggingExtractor implements javadts.Extractor.
var _ javadts.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   javadts.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next javadts.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the identity and
// row counts found.
func (e *LoggingExtractor) Extract(html string) (page *javadts.Page, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		}
		if page != nil {
			attrs = append(attrs,
				"name", page.Identity.Name,
				"kind", page.Identity.Kind,
				"constructors", len(page.Constructors),
				"enumConstants", len(page.EnumConstants),
				"fields", len(page.Fields),
				"methods", len(page.Methods),
			)
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}
