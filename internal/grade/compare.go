package grade

import (
	"fmt"
	"math"
	"strings"
)

// SlashTolerance is how far above the filter grade a stored ordinal may sit
// and still count as equal: a route stored at "9/9+" matches a filter of "9".
const SlashTolerance = 0.5

// Operator is a grade filter operator.
type Operator string

const (
	OpEqual   Operator = "=="
	OpAtLeast Operator = ">="
)

// ParseOperator validates a filter operator. An empty string means OpEqual.
func ParseOperator(s string) (Operator, error) {
	switch strings.TrimSpace(s) {
	case "", "==", "=":
		return OpEqual, nil
	case ">=":
		return OpAtLeast, nil
	default:
		return "", fmt.Errorf("unknown grade operator %q", s)
	}
}

// Compare reports whether a stored ordinal passes a grade filter.
func Compare(stored, filter float64, op Operator) bool {
	switch op {
	case OpAtLeast:
		return stored >= filter
	case OpEqual:
		return stored == filter || stored == filter+SlashTolerance
	default:
		return false
	}
}

// MatchStars reports whether a route rating reaches the threshold.
func MatchStars(stored, threshold int) bool {
	return stored >= threshold
}

// Rounding selects which side of a boundary a route between two labels is
// counted on.
type Rounding string

const (
	// RoundDown counts b[i] <= x < b[i+1] in bucket i.
	RoundDown Rounding = "down"
	// RoundUp counts b[i-1] < x <= b[i] in bucket i.
	RoundUp Rounding = "up"
)

// ParseRounding accepts "down", "up" and the "Round down" / "Round up" labels
// of the routebook UI. An empty string means RoundDown.
func ParseRounding(s string) (Rounding, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "round ")
	switch v {
	case "", "down":
		return RoundDown, nil
	case "up":
		return RoundUp, nil
	default:
		return "", fmt.Errorf("unknown rounding %q", s)
	}
}

// Bucket returns the index of the bucket holding ordinal, or -1. Boundaries
// must be ascending. With RoundDown the last bucket is open above; with
// RoundUp the first bucket is open below.
func Bucket(ordinal float64, boundaries []float64, rounding Rounding) int {
	if math.IsNaN(ordinal) {
		return -1
	}
	for i, b := range boundaries {
		switch rounding {
		case RoundUp:
			lower := math.Inf(-1)
			if i > 0 {
				lower = boundaries[i-1]
			}
			if ordinal > lower && ordinal <= b {
				return i
			}
		default:
			upper := math.Inf(1)
			if i+1 < len(boundaries) {
				upper = boundaries[i+1]
			}
			if ordinal >= b && ordinal < upper {
				return i
			}
		}
	}
	return -1
}
