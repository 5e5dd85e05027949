// Command validate checks the integrity of the grade tables and the mock
// routebook fixture: table ordering, denormalize round trips, cross-scale
// equivalences, scale detection of every tabulated token, and that every
// fixture record survives parse, enrich and validation.
//
// Usage:
//
//	go run ./cmd/validate -raw-json data/mock/routebook_raw.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/route-grade-etl/internal/domain"
	"github.com/couchcryptid/route-grade-etl/internal/grade"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

// equivalences lists grades that must land on the same ordinal.
var equivalences = [][]string{
	{"6a", "6+", "5.10a", "VIIc"},
	{"7a", "8", "5.11d", "IXb"},
	{"7b+", "9-", "5.12c", "Xa"},
	{"7c", "9", "5.12d", "Xb"},
	{"8a", "5.13b"},
	{"7A", "V6"},
	{"8A", "V11"},
}

// detectionExceptions are tabulated tokens that are ambiguous on their own and
// only reachable with an explicit scale.
var detectionExceptions = map[grade.Scale]map[string]bool{
	grade.Font: {"5": true, "5+": true},
}

func main() {
	rawJSON := flag.String("raw-json", "", "path to the raw routebook JSON fixture")
	flag.Parse()

	if *rawJSON == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*rawJSON); code != 0 {
		os.Exit(code)
	}
}

func run(rawJSONPath string) int {
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC),
	))
	defer domain.SetClock(nil)

	fmt.Println("=== Route Grade Integrity Validation ===")
	fmt.Println()

	records, err := loadJSON[domain.RawRouteRecord](rawJSONPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load raw JSON: %v\n", err)
		return 1
	}

	engine := grade.NewEngine(nil)

	phases := []*phase{
		validateTables(engine),
		validateRoundTrip(engine),
		validateEquivalences(engine),
		validateDetection(engine),
		validateFixture(engine, records),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Scales: %d, fixture records: %d\n", len(grade.Scales), len(records))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func loadJSON[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ── Phase 1: Tables ──
// Tokens are declared easiest first; only Vermin's unrated aliases share an ordinal.

func validateTables(engine *grade.Engine) *phase {
	p := &phase{name: "Phase 1: Tables (ordering)"}

	for _, s := range grade.Scales {
		table, ok := engine.Registry().Table(s)
		if !ok {
			p.errorf("%s: no table registered", s)
			continue
		}
		entries := table.Entries()
		for i := 1; i < len(entries); i++ {
			prev, cur := entries[i-1], entries[i]
			if s == grade.Vermin && prev.Ordinal == 0 && cur.Ordinal == 0 {
				continue
			}
			if cur.Ordinal <= prev.Ordinal {
				p.errorf("%s: %s (%g) is not harder than %s (%g)", s, cur.Token, cur.Ordinal, prev.Token, prev.Ordinal)
			}
		}
		for _, e := range entries {
			if got, ok := table.Forward(e.Token); !ok || got != e.Ordinal {
				p.errorf("%s: forward lookup of %s: expected %g, got %g", s, e.Token, e.Ordinal, got)
			}
		}
	}
	return p
}

// ── Phase 2: Round trip ──
// Denormalizing a tabulated ordinal yields a token of the same ordinal.

func validateRoundTrip(engine *grade.Engine) *phase {
	p := &phase{name: "Phase 2: Round Trip (denormalize)"}

	for _, s := range grade.Scales {
		table, _ := engine.Registry().Table(s)
		for _, e := range table.Entries() {
			tok := engine.Denormalize(e.Ordinal, s)
			got, ok := table.Forward(tok)
			if !ok {
				p.errorf("%s: %g denormalized to unknown token %q", s, e.Ordinal, tok)
				continue
			}
			if e.Ordinal > 0 && got != e.Ordinal {
				p.errorf("%s: %s (%g) round-tripped to %s (%g)", s, e.Token, e.Ordinal, tok, got)
			}
		}
	}
	return p
}

// ── Phase 3: Equivalences ──

func validateEquivalences(engine *grade.Engine) *phase {
	p := &phase{name: "Phase 3: Cross-Scale Equivalences"}

	for _, group := range equivalences {
		want := engine.Normalize(group[0], grade.DisciplineUnknown)
		if want == 0 {
			p.errorf("%s: not classified", group[0])
			continue
		}
		for _, tok := range group[1:] {
			if got := engine.Normalize(tok, grade.DisciplineUnknown); math.Abs(got-want) > 1e-9 {
				p.errorf("%s (%g) should equal %s (%g)", tok, got, group[0], want)
			}
		}
	}
	return p
}

// ── Phase 4: Detection ──
// Every tabulated token is detected as its own scale.

func validateDetection(engine *grade.Engine) *phase {
	p := &phase{name: "Phase 4: Scale Detection"}

	for _, s := range grade.Scales {
		table, _ := engine.Registry().Table(s)
		for _, tok := range table.Tokens() {
			if detectionExceptions[s][tok] {
				continue
			}
			if got := engine.DetectScale(tok); got != s {
				p.errorf("%s token %q detected as %s", s, tok, got)
			}
		}
	}
	return p
}

// ── Phase 5: Fixture ──
// Every fixture record parses, enriches and validates; IDs are unique.

func validateFixture(engine *grade.Engine, records []domain.RawRouteRecord) *phase {
	p := &phase{name: "Phase 5: Fixture (parse, enrich, validate)"}

	if len(records) == 0 {
		p.errorf("fixture is empty")
		return p
	}

	seen := map[string]int{}
	var unranked int
	for i := range records {
		raw, err := json.Marshal(records[i])
		if err != nil {
			p.errorf("record %d: marshal: %v", i, err)
			continue
		}
		route, err := domain.ParseRawEvent(domain.RawEvent{Value: raw})
		if err != nil {
			p.errorf("record %d: %v", i, err)
			continue
		}
		route = domain.EnrichRoute(route, engine)
		if err := domain.ValidateRoute(route); err != nil {
			p.errorf("record %d (%s): %v", i, route.Name, err)
		}
		if prev, dup := seen[route.ID]; dup {
			p.errorf("record %d (%s): ID %s duplicates record %d", i, route.Name, route.ID, prev)
		}
		seen[route.ID] = i

		if !route.Grade.Classified() {
			unranked++
		}
		if route.Discipline == grade.DisciplineUnknown {
			p.errorf("record %d (%s): unknown discipline %q", i, route.Name, records[i].Discipline)
		}
	}
	fmt.Printf("  Note: %d of %d fixture grades are unranked\n", unranked, len(records))
	return p
}
