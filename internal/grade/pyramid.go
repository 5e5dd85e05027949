package grade

import "math"

// PyramidBin is one bar of a grade pyramid.
type PyramidBin struct {
	Label   string  `json:"label"`
	Ordinal float64 `json:"ordinal"`
	Count   int     `json:"count"`
}

// Pyramid counts ordinals per label. Labels are normalized through the engine
// and only those inside the [min, max] range of ordinals are kept, so the
// pyramid starts and ends at the grades actually climbed. Unclassified labels
// are skipped. Callers that treat 0 as unranked filter it out beforehand.
func (e *Engine) Pyramid(ordinals []float64, labels []string, rounding Rounding) []PyramidBin {
	if len(ordinals) == 0 {
		return nil
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, o := range ordinals {
		lo = math.Min(lo, o)
		hi = math.Max(hi, o)
	}

	bins := make([]PyramidBin, 0, len(labels))
	for _, label := range labels {
		res := e.Classify(label, DisciplineUnknown)
		if !res.Classified() || res.Ordinal < lo || res.Ordinal > hi {
			continue
		}
		bins = append(bins, PyramidBin{Label: label, Ordinal: res.Ordinal})
	}

	boundaries := make([]float64, len(bins))
	for i, b := range bins {
		boundaries[i] = b.Ordinal
	}
	for _, o := range ordinals {
		if i := Bucket(o, boundaries, rounding); i >= 0 {
			bins[i].Count++
		}
	}
	return bins
}

// Summary holds statistics over a set of normalized grades.
type Summary struct {
	Count    int     `json:"count"`
	Unranked int     `json:"unranked"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Mean     float64 `json:"mean"`
}

// Summarize computes statistics over classified results only; unclassified
// results are counted as unranked and never become the easiest grade.
func Summarize(results []Result) Summary {
	var s Summary
	var sum float64
	for _, r := range results {
		if !r.Classified() {
			s.Unranked++
			continue
		}
		if s.Count == 0 || r.Ordinal < s.Min {
			s.Min = r.Ordinal
		}
		if s.Count == 0 || r.Ordinal > s.Max {
			s.Max = r.Ordinal
		}
		sum += r.Ordinal
		s.Count++
	}
	if s.Count > 0 {
		s.Mean = sum / float64(s.Count)
	}
	return s
}
