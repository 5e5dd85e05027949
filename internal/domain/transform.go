package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/route-grade-etl/internal/grade"
)

const (
	maxStars   = 5
	dateLayout = "2006-01-02"
)

// ParseRawEvent deserializes a RawEvent's value into a Route.
// It expects the flat JSON produced by the routebook exporter. Grades are
// carried over verbatim; they are normalized by EnrichRoute.
func ParseRawEvent(raw RawEvent) (Route, error) {
	var rec RawRouteRecord
	if err := json.Unmarshal(raw.Value, &rec); err != nil {
		return Route{}, fmt.Errorf("parse raw route: %w", err)
	}

	name := strings.TrimSpace(rec.Name)
	gradeStr := strings.TrimSpace(rec.Grade)
	loc := Location{
		Country: strings.TrimSpace(rec.Country),
		Area:    strings.TrimSpace(rec.Area),
		Crag:    strings.TrimSpace(rec.Crag),
	}
	date := parseDateOrZero(rec.Date)

	return Route{
		ID:          generateID(rec.Discipline, name, loc.Crag, loc.Area, gradeStr, rec.Date),
		Name:        name,
		Discipline:  grade.Discipline(strings.TrimSpace(rec.Discipline)),
		Grade:       GradeValue{Raw: gradeStr},
		Location:    loc,
		Style:       strings.TrimSpace(rec.Style),
		Date:        date,
		Stars:       parseIntOrZero(rec.Stars),
		IsProject:   parseFlag(rec.Project),
		IsMilestone: parseFlag(rec.Milestone),
		ShortNote:   rec.ShortNote,
		Notes:       rec.Notes,
		Gear:        rec.Gear,
		Pitches:     parsePitches(rec.Pitches),
		Seriousness: strings.TrimSpace(rec.Ernsthaftigkeit),
		Length:      parseFloatOrZero(rec.Length),

		RawPayload: raw.Value,
	}, nil
}

// parseFloatOrZero parses a string as float64, returning 0 on failure.
func parseFloatOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseIntOrZero parses an integer cell. Spreadsheet exports sometimes write
// integers as "2.0", so a float is accepted and truncated.
func parseIntOrZero(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return int(parseFloatOrZero(s))
}

// parseFlag reads the routebook "X" marker.
func parseFlag(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "X")
}

// parseDateOrZero parses an ISO date, returning the zero time on failure.
func parseDateOrZero(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// parsePitches splits a comma-separated pitch list. Parentheses mark a
// followed pitch: "6a,(6b),7a".
func parsePitches(s string) []Pitch {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	var pitches []Pitch
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		led := true
		if strings.HasPrefix(part, "(") && strings.HasSuffix(part, ")") {
			led = false
			part = strings.TrimSpace(strings.Trim(part, "()"))
		}
		pitches = append(pitches, Pitch{
			Number: len(pitches) + 1,
			Grade:  GradeValue{Raw: part},
			Led:    led,
		})
	}
	return pitches
}

// generateID produces a deterministic ID from the route's identifying fields.
// Deterministic IDs let the store upsert re-imported routebooks without
// creating duplicates.
func generateID(discipline, name, crag, area, gradeStr, date string) string {
	input := fmt.Sprintf("%s|%s|%s|%s|%s|%s",
		strings.ToLower(strings.TrimSpace(discipline)), name, crag, area, gradeStr, strings.TrimSpace(date))
	hash := sha256.Sum256([]byte(input))
	short := hex.EncodeToString(hash[:8])

	prefix := idPrefix(grade.ParseDiscipline(discipline))
	if prefix == "" {
		return short
	}
	return prefix + "-" + short
}

func idPrefix(d grade.Discipline) string {
	switch d {
	case grade.DisciplineSport:
		return "sport"
	case grade.DisciplineBoulder:
		return "boulder"
	case grade.DisciplineMultipitch:
		return "mp"
	default:
		return ""
	}
}

// EnrichRoute normalizes the discipline, classifies the route grade and every
// pitch grade on the ordinal axis, fills in a single pitch for multipitches
// without a pitch list, derives the pitch count, clamps the star
// rating, and stamps ProcessedAt. Grades that cannot be classified keep
// ordinal 0; enrichment never fails.
func EnrichRoute(route Route, classifier GradeClassifier) Route {
	route.Discipline = grade.ParseDiscipline(string(route.Discipline))
	route.Grade = classifyGrade(classifier, route.Grade.Raw, route.Discipline)

	// A multipitch logged without a pitch list is one led pitch at the route grade.
	if route.Discipline == grade.DisciplineMultipitch && len(route.Pitches) == 0 {
		route.Pitches = []Pitch{{Number: 1, Grade: GradeValue{Raw: route.Grade.Raw}, Led: true}}
	}

	for i := range route.Pitches {
		route.Pitches[i].Grade = classifyGrade(classifier, route.Pitches[i].Grade.Raw, route.Discipline)
	}
	route.PitchCount = derivePitchCount(route)
	route.Stars = clampStars(route.Stars)
	route.ProcessedAt = clock.Now()
	return route
}

func classifyGrade(classifier GradeClassifier, raw string, discipline grade.Discipline) GradeValue {
	res := classifier.Classify(raw, discipline)
	return GradeValue{
		Raw:     raw,
		Token:   res.Token,
		Scale:   res.Scale,
		Ordinal: res.Ordinal,
		Outcome: res.Outcome,
	}
}

// derivePitchCount is the number of listed pitches for multipitch routes and
// 1 for everything else.
func derivePitchCount(route Route) int {
	if route.Discipline == grade.DisciplineMultipitch && len(route.Pitches) > 0 {
		return len(route.Pitches)
	}
	return 1
}

func clampStars(stars int) int {
	switch {
	case stars < 0:
		return 0
	case stars > maxStars:
		return maxStars
	default:
		return stars
	}
}

// SerializeRoute marshals a route into an OutputEvent keyed by route ID.
func SerializeRoute(route Route) (OutputEvent, error) {
	data, err := json.Marshal(route)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize route: %w", err)
	}
	return OutputEvent{
		Key:   []byte(route.ID),
		Value: data,
		Headers: map[string]string{
			"discipline":   string(route.Discipline),
			"scale":        string(route.Grade.Scale),
			"processed_at": route.ProcessedAt.Format(time.RFC3339),
		},
	}, nil
}
