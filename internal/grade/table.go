package grade

import (
	"fmt"
	"math"
	"sort"
)

// Entry is one token of a scale and its position on the ordinal axis.
type Entry struct {
	Token   string  `json:"token"`
	Ordinal float64 `json:"ordinal"`
}

// Table is the bidirectional token/ordinal mapping of a single scale.
//
// The reverse direction is derived from the forward entries. When two tokens
// share an ordinal the later-declared entry owns the reverse slot.
type Table struct {
	scale   Scale
	unrated string
	entries []Entry
	forward map[string]float64
	reverse map[float64]string
	keys    []float64 // distinct ordinals, ascending
	sorted  []string  // tokens by ordinal, ties in declaration order
}

// newTable builds a table from entries declared easiest first. It panics on a
// duplicate token since tables are static data.
func newTable(scale Scale, unrated string, entries []Entry) *Table {
	t := &Table{
		scale:   scale,
		unrated: unrated,
		entries: append([]Entry(nil), entries...),
		forward: make(map[string]float64, len(entries)),
		reverse: make(map[float64]string, len(entries)),
	}

	for _, e := range entries {
		if _, dup := t.forward[e.Token]; dup {
			panic(fmt.Sprintf("grade: duplicate token %q in %s table", e.Token, scale))
		}
		t.forward[e.Token] = e.Ordinal
		t.reverse[e.Ordinal] = e.Token
	}
	if unrated != "" {
		if _, ok := t.forward[unrated]; !ok {
			panic(fmt.Sprintf("grade: unrated token %q missing from %s table", unrated, scale))
		}
	}

	t.keys = make([]float64, 0, len(t.reverse))
	for k := range t.reverse {
		t.keys = append(t.keys, k)
	}
	sort.Float64s(t.keys)

	byOrdinal := append([]Entry(nil), entries...)
	sort.SliceStable(byOrdinal, func(i, j int) bool {
		return byOrdinal[i].Ordinal < byOrdinal[j].Ordinal
	})
	t.sorted = make([]string, len(byOrdinal))
	for i, e := range byOrdinal {
		t.sorted[i] = e.Token
	}

	return t
}

// Scale returns the scale the table belongs to.
func (t *Table) Scale() Scale { return t.scale }

// Forward returns the ordinal of token.
func (t *Table) Forward(token string) (float64, bool) {
	v, ok := t.forward[token]
	return v, ok
}

// Reverse returns the token registered for exactly this ordinal.
func (t *Table) Reverse(ordinal float64) (string, bool) {
	tok, ok := t.reverse[ordinal]
	return tok, ok
}

// Floor returns the token of the largest ordinal key that is <= ordinal.
func (t *Table) Floor(ordinal float64) (string, bool) {
	if math.IsNaN(ordinal) || len(t.keys) == 0 {
		return "", false
	}
	// First index with key > ordinal; the floor sits just before it.
	i := sort.Search(len(t.keys), func(i int) bool { return t.keys[i] > ordinal })
	if i == 0 {
		return "", false
	}
	return t.reverse[t.keys[i-1]], true
}

// Tokens returns every token sorted by ordinal.
func (t *Table) Tokens() []string {
	return append([]string(nil), t.sorted...)
}

// Entries returns the entries in declaration order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Min returns the smallest ordinal in the table.
func (t *Table) Min() float64 {
	if len(t.keys) == 0 {
		return 0
	}
	return t.keys[0]
}

// Max returns the largest ordinal in the table.
func (t *Table) Max() float64 {
	if len(t.keys) == 0 {
		return 0
	}
	return t.keys[len(t.keys)-1]
}

// Lowest returns the easiest token.
func (t *Table) Lowest() string {
	if len(t.sorted) == 0 {
		return ""
	}
	return t.sorted[0]
}

// Unrated returns the scale's designated "unrated" token, or "" if it has none.
func (t *Table) Unrated() string { return t.unrated }

// Len returns the number of tokens.
func (t *Table) Len() int { return len(t.entries) }
