package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/route-grade-etl/internal/domain"
	"github.com/couchcryptid/route-grade-etl/internal/observability"
)

// RouteTransformer implements Transformer using the domain parse, enrich and
// validate steps.
type RouteTransformer struct {
	classifier domain.GradeClassifier
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewTransformer creates a RouteTransformer. classifier is usually a
// *grade.Engine, optionally wrapped in a CachedClassifier. metrics may be nil.
func NewTransformer(classifier domain.GradeClassifier, logger *slog.Logger, metrics *observability.Metrics) *RouteTransformer {
	return &RouteTransformer{
		classifier: classifier,
		logger:     logger,
		metrics:    metrics,
	}
}

// Transform parses, enriches and validates one raw routebook record.
// An unclassifiable grade is logged but does not fail the record.
func (t *RouteTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.Route, error) {
	route, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.Route{}, err
	}

	route = domain.EnrichRoute(route, t.classifier)
	t.recordGrade(route.Grade)
	for _, p := range route.Pitches {
		t.recordGrade(p.Grade)
	}

	if !route.Grade.Classified() {
		t.logger.Warn("route grade not classified",
			"route_id", route.ID,
			"grade", route.Grade.Raw,
			"scale", route.Grade.Scale,
			"outcome", route.Grade.Outcome,
		)
	}

	if err := domain.ValidateRoute(route); err != nil {
		return domain.Route{}, err
	}
	return route, nil
}

func (t *RouteTransformer) recordGrade(g domain.GradeValue) {
	if t.metrics == nil {
		return
	}
	t.metrics.GradesNormalized.WithLabelValues(string(g.Scale), string(g.Outcome)).Inc()
}
