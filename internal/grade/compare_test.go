package grade

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name   string
		stored float64
		filter float64
		op     Operator
		want   bool
	}{
		{"equal exact", 24, 24, OpEqual, true},
		{"equal slash grade above", 24.5, 24, OpEqual, true},
		{"equal one full grade above", 25, 24, OpEqual, false},
		{"equal slash grade below", 23.5, 24, OpEqual, false},
		{"equal quarter step above", 24.25, 24, OpEqual, false},
		{"at least equal", 24, 24, OpAtLeast, true},
		{"at least above", 30, 24, OpAtLeast, true},
		{"at least below", 23.5, 24, OpAtLeast, false},
		{"unknown operator", 24, 24, Operator("<"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.stored, tt.filter, tt.op))
		})
	}
}

func TestCompare_SlashGradeMatchesLowerFilter(t *testing.T) {
	e := newTestEngine()

	stored := e.Normalize("9/9+", DisciplineSport)
	filter := e.Normalize("9", DisciplineSport)

	assert.True(t, Compare(stored, filter, OpEqual))
	assert.False(t, Compare(filter, stored, OpEqual), "the tolerance only reaches upwards")
}

func TestParseOperator(t *testing.T) {
	for in, want := range map[string]Operator{"": OpEqual, "==": OpEqual, "=": OpEqual, " >= ": OpAtLeast} {
		got, err := ParseOperator(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseOperator("<=")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown grade operator")
}

func TestMatchStars(t *testing.T) {
	assert.True(t, MatchStars(3, 2))
	assert.True(t, MatchStars(2, 2))
	assert.False(t, MatchStars(1, 2))
	assert.True(t, MatchStars(0, 0))
}

func TestParseRounding(t *testing.T) {
	for in, want := range map[string]Rounding{"": RoundDown, "down": RoundDown, "Round down": RoundDown, "UP": RoundUp, "Round up": RoundUp} {
		got, err := ParseRounding(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseRounding("sideways")
	assert.Error(t, err)
}

func TestBucket(t *testing.T) {
	boundaries := []float64{18, 20, 22, 24}

	tests := []struct {
		name     string
		ordinal  float64
		rounding Rounding
		want     int
	}{
		{"down on boundary", 20, RoundDown, 1},
		{"down between", 21.5, RoundDown, 1},
		{"down below first", 17, RoundDown, -1},
		{"down above last is open", 35, RoundDown, 3},
		{"up on boundary", 20, RoundUp, 1},
		{"up between", 21.5, RoundUp, 2},
		{"up below first is open", 2, RoundUp, 0},
		{"up above last", 24.5, RoundUp, -1},
		{"NaN", math.NaN(), RoundDown, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bucket(tt.ordinal, boundaries, tt.rounding))
		})
	}

	assert.Equal(t, -1, Bucket(20, nil, RoundDown))
}
