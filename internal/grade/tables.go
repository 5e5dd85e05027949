package grade

import "fmt"

// Scale data, easiest first. Slash tokens are tabulated, not derived: their
// offsets differ from band to band.

var uiaaEntries = []Entry{
	{"1", 6},
	{"2", 7},
	{"3", 8},
	{"3+", 9},
	{"4-", 10},
	{"4", 10.5},
	{"4+", 11},
	{"5-", 12},
	{"5", 13},
	{"5+", 14},
	{"6-", 15},
	{"6-/6", 16},
	{"6", 17},
	{"6/6+", 17.5},
	{"6+", 18},
	{"6+/7-", 18.5},
	{"7-", 19},
	{"7-/7", 19.5},
	{"7", 20},
	{"7/7+", 20.25},
	{"7+", 20.5},
	{"7+/8-", 21},
	{"8-", 22},
	{"8-/8", 23},
	{"8", 24},
	{"8/8+", 24.5},
	{"8+", 25},
	{"8+/9-", 26},
	{"9-", 27},
	{"9-/9", 27.5},
	{"9", 28},
	{"9/9+", 28.5},
	{"9+", 29},
	{"9+/10-", 29.5},
	{"10-", 30},
	{"10-/10", 30.5},
	{"10", 31},
	{"10/10+", 31.5},
	{"10+", 32},
	{"10+/11-", 32.5},
	{"11-", 33},
	{"11-/11", 34},
	{"11", 35},
}

var frenchEntries = []Entry{
	{"3a", 7},
	{"3b", 8},
	{"3c", 9},
	{"4a", 10},
	{"4b", 11},
	{"4b+", 12},
	{"4c", 13},
	{"5a", 14},
	{"5b", 15},
	{"5b+", 16},
	{"5c", 17},
	{"5c+", 17.5},
	{"6a", 18},
	{"6a+", 19},
	{"6a+/6b", 19.5},
	{"6b", 20},
	{"6b+", 20.5},
	{"6c", 22},
	{"6c/6c+", 22.5},
	{"6c+", 23},
	{"6c+/7a", 23.5},
	{"7a", 24},
	{"7a/7a+", 24.5},
	{"7a+", 25},
	{"7a+/7b", 25.5},
	{"7b", 26},
	{"7b/7b+", 26.5},
	{"7b+", 27},
	{"7b+/7c", 27.5},
	{"7c", 28},
	{"7c/7c+", 28.5},
	{"7c+", 29},
	{"7c+/8a", 29.25},
	{"8a", 29.5},
	{"8a/8a+", 29.75},
	{"8a+", 30},
	{"8a+/8b", 30.5},
	{"8b", 31},
	{"8b/8b+", 31.5},
	{"8b+", 32},
	{"8b+/8c", 32.5},
	{"8c", 33},
	{"8c/8c+", 33.5},
	{"8c+", 34},
	{"8c+/9a", 34.5},
	{"9a", 35},
}

var ydsEntries = []Entry{
	{"5.3", 9},
	{"5.4", 10},
	{"5.5", 11},
	{"5.6", 13},
	{"5.7", 14},
	{"5.7+", 14.5},
	{"5.8", 15},
	{"5.9", 17},
	{"5.10a", 18},
	{"5.10a/b", 18.5},
	{"5.10b", 19},
	{"5.10b/c", 19.5},
	{"5.10c", 20},
	{"5.10c/d", 20.25},
	{"5.10d", 20.5},
	{"5.11a", 21},
	{"5.11a/b", 21.5},
	{"5.11b", 22},
	{"5.11b/c", 22.5},
	{"5.11c", 23},
	{"5.11c/d", 23.5},
	{"5.11d", 24},
	{"5.12a", 25},
	{"5.12a/b", 25.5},
	{"5.12b", 26},
	{"5.12b/c", 26.5},
	{"5.12c", 27},
	{"5.12c/d", 27.5},
	{"5.12d", 28},
	{"5.12d/13a", 28.5},
	{"5.13a", 29},
	{"5.13a/b", 29.25},
	{"5.13b", 29.5},
	{"5.13b/c", 29.75},
	{"5.13c", 30},
	{"5.13c/d", 30.5},
	{"5.13d", 31},
	{"5.13d/14a", 31.5},
	{"5.14a", 32},
	{"5.14b", 33},
	{"5.14c", 34},
	{"5.14d", 35},
}

// Saxon grades have no slash tokens; double grades are collapsed by the
// normalizer before lookup.
var elbsandsteinEntries = []Entry{
	{"II", 7},
	{"III", 8},
	{"IV", 10},
	{"V", 11},
	{"VI", 13},
	{"VIIa", 15},
	{"VIIb", 17},
	{"VIIc", 18},
	{"VIIIa", 19},
	{"VIIIb", 20},
	{"VIIIc", 21},
	{"IXa", 23},
	{"IXb", 24},
	{"IXc", 25},
	{"Xa", 27},
	{"Xb", 28},
	{"Xc", 29},
	{"XIa", 30},
	{"XIb", 31},
	{"XIc", 32},
	{"XIIa", 33},
	{"XIIb", 35},
}

// Font sits on the V-number axis.
var fontEntries = []Entry{
	{"5", 1},
	{"5+", 2},
	{"6A", 3},
	{"6A/+", 3.25},
	{"6A+", 3.5},
	{"6A+/6B", 3.75},
	{"6B", 4},
	{"6B/+", 4.25},
	{"6B+", 4.5},
	{"6B+/6C", 4.75},
	{"6C", 5},
	{"6C/+", 5.25},
	{"6C+", 5.5},
	{"6C+/7A", 5.75},
	{"7A", 6},
	{"7A/+", 6.5},
	{"7A+", 7},
	{"7A+/7B", 7.5},
	{"7B", 8},
	{"7B/+", 8.25},
	{"7B+", 8.5},
	{"7B+/7C", 8.75},
	{"7C", 9},
	{"7C/+", 9.5},
	{"7C+", 10},
	{"7C+/8A", 10.5},
	{"8A", 11},
	{"8A/+", 11.5},
	{"8A+", 12},
	{"8A+/8B", 12.5},
	{"8B", 13},
	{"8B/+", 13.5},
	{"8B+", 14},
	{"8B+/8C", 14.5},
	{"8C", 15},
	{"8C/+", 15.5},
	{"8C+", 16},
	{"8C+/9A", 16.5},
	{"9A", 17},
}

const (
	verminMax     = 16
	verminUnrated = "VB"
)

// verminEntries generates V0…V16 with a Vn/Vn+1 token half way between each
// pair. "VB" and "L" are declared first so "V0" owns the reverse slot at 0.
func verminEntries() []Entry {
	entries := []Entry{
		{verminUnrated, 0},
		{"L", 0},
	}
	for n := 0; n <= verminMax; n++ {
		entries = append(entries, Entry{fmt.Sprintf("V%d", n), float64(n)})
		if n < verminMax {
			entries = append(entries, Entry{fmt.Sprintf("V%d/V%d", n, n+1), float64(n) + 0.5})
		}
	}
	return entries
}
