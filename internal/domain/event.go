package domain

import (
	"context"
	"time"

	"github.com/couchcryptid/route-grade-etl/internal/grade"
)

// RawRouteRecord represents the flat JSON structure produced by the
// routebook exporter. All values arrive as strings.
type RawRouteRecord struct {
	Name            string `json:"name"`
	Grade           string `json:"grade"`
	Discipline      string `json:"discipline"`
	Country         string `json:"country"`
	Area            string `json:"area"`
	Crag            string `json:"crag"`
	Style           string `json:"style"`
	Date            string `json:"date"`  // YYYY-MM-DD
	Stars           string `json:"stars"` // integer rating
	Project         string `json:"project"`
	Milestone       string `json:"milestone"`
	ShortNote       string `json:"shortnote"`
	Notes           string `json:"notes"`
	Gear            string `json:"gear"`
	Pitches         string `json:"pitches"` // "6a,(6b),7a"
	Ernsthaftigkeit string `json:"ernsthaftigkeit"`
	Length          string `json:"length"` // metres
}

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// Location is the crag hierarchy of a route.
type Location struct {
	Country string `json:"country,omitempty"`
	Area    string `json:"area,omitempty"`
	Crag    string `json:"crag,omitempty"`
}

// GradeValue is a recorded grade and its position on the ordinal axis.
type GradeValue struct {
	Raw     string        `json:"raw"`
	Token   string        `json:"token,omitempty"`
	Scale   grade.Scale   `json:"scale" validate:"grade_scale"`
	Ordinal float64       `json:"ordinal"`
	Outcome grade.Outcome `json:"outcome"`
}

// Classified reports whether the grade was recognized.
func (g GradeValue) Classified() bool {
	return g.Outcome.Classified()
}

// Pitch is one pitch of a multipitch route.
type Pitch struct {
	Number int        `json:"number" validate:"gte=1"`
	Grade  GradeValue `json:"grade"`
	Led    bool       `json:"led"`
}

// Route is the domain-rich representation after parsing.
type Route struct {
	ID          string           `json:"id"`
	Name        string           `json:"name" validate:"required"`
	Discipline  grade.Discipline `json:"discipline"`
	Grade       GradeValue       `json:"grade"`
	Location    Location         `json:"location,omitempty"`
	Style       string           `json:"style,omitempty"`
	Date        time.Time        `json:"date,omitempty"`
	Stars       int              `json:"stars" validate:"gte=0,lte=5"`
	IsProject   bool             `json:"is_project"`
	IsMilestone bool             `json:"is_milestone"`
	ShortNote   string           `json:"shortnote,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	Gear        string           `json:"gear,omitempty"`
	Pitches     []Pitch          `json:"pitches,omitempty" validate:"dive"`
	PitchCount  int              `json:"pitch_count" validate:"gte=1"`
	Seriousness string           `json:"seriousness,omitempty"`
	Length      float64          `json:"length,omitempty" validate:"gte=0"`

	RawPayload  []byte    `json:"-"`
	ProcessedAt time.Time `json:"processed_at"`
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
