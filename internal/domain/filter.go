package domain

import (
	"sort"

	"github.com/couchcryptid/route-grade-etl/internal/grade"
)

// RouteFilter selects routes from an enriched routebook. Zero-valued fields
// do not constrain the result.
type RouteFilter struct {
	Area       string
	Crag       string
	Discipline grade.Discipline
	Style      string

	// Grade is a raw grade token; it is normalized with the filter's
	// discipline and compared on the ordinal axis using Operation.
	Grade     string
	Operation grade.Operator

	// MinStars is ignored when nil.
	MinStars *int

	// Projects are hidden unless IncludeProjects is set or the filter is for
	// multipitches, where unfinished tours are still listed.
	IncludeProjects bool
}

// Match reports whether route passes every constraint of f.
func (f RouteFilter) Match(route Route, classifier GradeClassifier) bool {
	if route.IsProject && !f.IncludeProjects && f.Discipline != grade.DisciplineMultipitch {
		return false
	}
	if f.Area != "" && route.Location.Area != f.Area {
		return false
	}
	if f.Crag != "" && route.Location.Crag != f.Crag {
		return false
	}
	if f.Discipline != grade.DisciplineUnknown && route.Discipline != f.Discipline {
		return false
	}
	if f.Style != "" && route.Style != f.Style {
		return false
	}
	if f.MinStars != nil && !grade.MatchStars(route.Stars, *f.MinStars) {
		return false
	}
	if f.Grade != "" {
		op := f.Operation
		if op == "" {
			op = grade.OpEqual
		}
		// An unrecognized or guarded filter grade has no ordinal; 0 means
		// unranked, so the grade constraint is dropped.
		target := classifier.Classify(f.Grade, f.Discipline)
		if target.Outcome == grade.OutcomeClassified && !grade.Compare(route.Grade.Ordinal, target.Ordinal, op) {
			return false
		}
	}
	return true
}

// FilterRoutes returns the routes matching f, hardest first. Routes with equal
// ordinals keep their input order.
func FilterRoutes(routes []Route, f RouteFilter, classifier GradeClassifier) []Route {
	var out []Route
	for _, r := range routes {
		if f.Match(r, classifier) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Grade.Ordinal > out[j].Grade.Ordinal
	})
	return out
}

// RankedOrdinals returns the ordinals of classified route grades, ready for
// a grade pyramid.
func RankedOrdinals(routes []Route) []float64 {
	ordinals := make([]float64, 0, len(routes))
	for _, r := range routes {
		if r.Grade.Classified() {
			ordinals = append(ordinals, r.Grade.Ordinal)
		}
	}
	return ordinals
}
