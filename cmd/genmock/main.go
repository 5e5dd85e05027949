// Command genmock reads routebook CSV exports and generates the mock data
// fixtures for the ETL test suites and downstream consumers. It runs the
// actual domain package so the transformed output matches real pipeline
// behavior.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -csv-dir data/mock \
//	  -raw-out data/mock/routebook_raw.json \
//	  -transformed-out data/mock/routebook_transformed.json
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/route-grade-etl/internal/domain"
	"github.com/couchcryptid/route-grade-etl/internal/grade"
)

type csvDef struct {
	file       string
	discipline grade.Discipline
}

var defs = []csvDef{
	{file: "routes.csv", discipline: grade.DisciplineSport},
	{file: "boulders.csv", discipline: grade.DisciplineBoulder},
	{file: "multipitches.csv", discipline: grade.DisciplineMultipitch},
}

// pyramidLabels are the French grades used for the sport pyramid printout.
var pyramidLabels = []string{"5a", "5b", "5c", "6a", "6a+", "6b", "6b+", "6c", "6c+", "7a", "7a+", "7b", "7b+", "7c", "7c+", "8a", "8a+", "8b"}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	csvDir := flag.String("csv-dir", "", "directory containing routebook CSV exports")
	rawOut := flag.String("raw-out", "", "output path for the raw JSON fixture")
	transformedOut := flag.String("transformed-out", "", "output path for the transformed JSON fixture")
	flag.Parse()

	if *csvDir == "" || *rawOut == "" || *transformedOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -csv-dir, -raw-out, -transformed-out")
	}

	// Fixed clock for reproducible ProcessedAt timestamps.
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC),
	))
	defer domain.SetClock(nil)

	engine := grade.NewEngine(nil)

	var rawRecords []domain.RawRouteRecord //nolint:prealloc // size depends on CSV file contents
	var transformed []domain.Route         //nolint:prealloc // size depends on CSV file contents

	for _, d := range defs {
		path := filepath.Join(*csvDir, d.file)
		recs, routes, err := processCSV(path, d.discipline, engine)
		if err != nil {
			return fmt.Errorf("processing %s: %w", d.file, err)
		}
		rawRecords = append(rawRecords, recs...)
		transformed = append(transformed, routes...)
		log.Printf("%s: %d records", d.discipline, len(recs))
	}

	log.Printf("total: %d records", len(rawRecords))

	if err := writeJSON(*rawOut, rawRecords); err != nil {
		return fmt.Errorf("writing raw fixture: %w", err)
	}
	log.Printf("wrote raw fixture: %s", *rawOut)

	if err := writeJSON(*transformedOut, transformed); err != nil {
		return fmt.Errorf("writing transformed fixture: %w", err)
	}
	log.Printf("wrote transformed fixture: %s", *transformedOut)

	printStats(engine, transformed)
	return nil
}

func processCSV(path string, discipline grade.Discipline, engine *grade.Engine) ([]domain.RawRouteRecord, []domain.Route, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("no data rows")
	}

	colIdx := map[string]int{}
	for i, h := range rows[0] {
		colIdx[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var recs []domain.RawRouteRecord
	var routes []domain.Route

	for _, row := range rows[1:] {
		rec := domain.RawRouteRecord{
			Name:            get(row, colIdx, "name"),
			Grade:           get(row, colIdx, "grade"),
			Discipline:      string(discipline),
			Country:         get(row, colIdx, "country"),
			Area:            get(row, colIdx, "area"),
			Crag:            get(row, colIdx, "crag"),
			Style:           get(row, colIdx, "style"),
			Date:            get(row, colIdx, "date"),
			Stars:           get(row, colIdx, "stars"),
			Project:         get(row, colIdx, "project"),
			Milestone:       get(row, colIdx, "milestone"),
			ShortNote:       get(row, colIdx, "shortnote"),
			Notes:           get(row, colIdx, "notes"),
			Gear:            get(row, colIdx, "gear"),
			Pitches:         get(row, colIdx, "pitches"),
			Ernsthaftigkeit: get(row, colIdx, "ernsthaftigkeit"),
			Length:          get(row, colIdx, "length"),
		}
		if rec.Name == "" {
			continue
		}
		recs = append(recs, rec)

		rawJSON, err := json.Marshal(rec)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal record: %w", err)
		}

		parsed, err := domain.ParseRawEvent(domain.RawEvent{Value: rawJSON})
		if err != nil {
			return nil, nil, fmt.Errorf("parse raw route: %w", err)
		}
		routes = append(routes, domain.EnrichRoute(parsed, engine))
	}

	return recs, routes, nil
}

func get(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

type keyCount struct {
	key   string
	count int
}

func sortedCounts(m map[string]int) []keyCount {
	out := make([]keyCount, 0, len(m))
	for k, c := range m {
		out = append(out, keyCount{k, c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].key < out[j].key
	})
	return out
}

func printStats(engine *grade.Engine, routes []domain.Route) {
	disciplines := map[string]int{}
	scales := map[string]int{}
	outcomes := map[string]int{}
	var projects, milestones, pitches int
	var unranked []string

	for i := range routes {
		r := &routes[i]
		disciplines[string(r.Discipline)]++
		scales[string(r.Grade.Scale)]++
		outcomes[string(r.Grade.Outcome)]++
		if r.IsProject {
			projects++
		}
		if r.IsMilestone {
			milestones++
		}
		pitches += len(r.Pitches)
		if !r.Grade.Classified() {
			unranked = append(unranked, fmt.Sprintf("%s (%q)", r.Name, r.Grade.Raw))
		}
	}

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d\n", len(routes))
	printCounts("By discipline", disciplines)
	printCounts("By scale", scales)
	printCounts("By outcome", outcomes)
	fmt.Printf("Projects: %d, milestones: %d, pitches: %d\n", projects, milestones, pitches)
	if len(unranked) > 0 {
		fmt.Printf("Unranked: %s\n", strings.Join(unranked, ", "))
	}

	printSportPyramid(engine, routes)
}

func printCounts(title string, m map[string]int) {
	fmt.Printf("%s:", title)
	for _, kc := range sortedCounts(m) {
		fmt.Printf(" %s=%d", kc.key, kc.count)
	}
	fmt.Println()
}

func printSportPyramid(engine *grade.Engine, routes []domain.Route) {
	filter := domain.RouteFilter{Discipline: grade.DisciplineSport}
	sport := domain.FilterRoutes(routes, filter, engine)
	ordinals := domain.RankedOrdinals(sport)

	results := make([]grade.Result, 0, len(sport))
	for i := range sport {
		results = append(results, engine.Classify(sport[i].Grade.Raw, sport[i].Discipline))
	}
	s := grade.Summarize(results)
	fmt.Printf("\nSport routes: %d ranked, %d unranked, hardest %s, mean %.2f\n",
		s.Count, s.Unranked, engine.Denormalize(s.Max, grade.French), s.Mean)

	fmt.Println("Sport pyramid (French, round down):")
	for _, bin := range engine.Pyramid(ordinals, pyramidLabels, grade.RoundDown) {
		fmt.Printf("  %-4s %s\n", bin.Label, strings.Repeat("#", bin.Count))
	}
}
