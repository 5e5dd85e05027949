package grade

import (
	"regexp"
	"strings"
)

// TraverseOffset is subtracted from the ordinal of a traverse problem. The
// result may fall below the scale minimum; Denormalize renders such ordinals
// as the unrated or easiest token.
const TraverseOffset = 1.0

// Outcome describes how a token was resolved.
type Outcome string

const (
	OutcomeClassified   Outcome = "classified"
	OutcomeUndetermined Outcome = "undetermined"
	OutcomeTableMiss    Outcome = "table_miss"
	OutcomeBoulderGuard Outcome = "boulder_guard"
)

// Result is the full outcome of normalizing one token.
type Result struct {
	Raw     string  `json:"raw"`
	Token   string  `json:"token"` // token actually looked up
	Scale   Scale   `json:"scale"`
	Ordinal float64 `json:"ordinal"`
	Outcome Outcome `json:"outcome"`
}

// Classified reports whether the token was recognized. A sport grade entered
// on a boulder is recognized even though its ordinal is forced to 0.
func (r Result) Classified() bool {
	return r.Outcome.Classified()
}

// Classified reports whether the outcome marks a recognized token.
func (o Outcome) Classified() bool {
	return o == OutcomeClassified || o == OutcomeBoulderGuard
}

// aidMarkerRe matches a runout marker or an aid grade such as "C2" or "A0".
var aidMarkerRe = regexp.MustCompile(`^(?:R|[AC][0-9])`)

// Normalizer converts raw grade tokens to ordinals.
type Normalizer struct {
	registry *Registry
	detector *Detector
}

// NewNormalizer creates a Normalizer over the given registry and detector.
func NewNormalizer(registry *Registry, detector *Detector) *Normalizer {
	return &Normalizer{registry: registry, detector: detector}
}

// Normalize returns the ordinal of raw, or 0 when it cannot be classified.
func (n *Normalizer) Normalize(raw string, discipline Discipline) float64 {
	return n.Classify(raw, discipline).Ordinal
}

// Classify detects the scale of raw and normalizes it.
func (n *Normalizer) Classify(raw string, discipline Discipline) Result {
	return n.classify(raw, n.detector.Detect(raw), discipline)
}

// NormalizeAs normalizes raw in a scale chosen by the caller, skipping
// detection. Font "5" and "5+" are only reachable this way.
func (n *Normalizer) NormalizeAs(raw string, scale Scale, discipline Discipline) Result {
	return n.classify(raw, scale, discipline)
}

func (n *Normalizer) classify(raw string, scale Scale, discipline Discipline) Result {
	res := Result{Raw: raw, Scale: scale, Outcome: OutcomeUndetermined}

	table, ok := n.registry.Table(scale)
	if !ok {
		res.Scale = Undetermined
		return res
	}

	token := stripAid(strings.TrimSpace(raw))
	if scale == Elbsandstein {
		token, _, _ = strings.Cut(token, "/")
	}
	token, traverse := stripTraverse(token)
	res.Token = token

	ordinal, ok := table.Forward(token)
	if !ok {
		res.Outcome = OutcomeTableMiss
		return res
	}
	if traverse {
		ordinal -= TraverseOffset
	}

	if discipline == DisciplineBoulder && scale.IsSport() {
		res.Outcome = OutcomeBoulderGuard
		return res
	}

	res.Ordinal = ordinal
	res.Outcome = OutcomeClassified
	return res
}

// stripAid drops a space-separated aid or runout suffix and everything after
// it: "5.8 C2" -> "5.8".
func stripAid(token string) string {
	fields := strings.Fields(token)
	for i := 1; i < len(fields); i++ {
		if aidMarkerRe.MatchString(fields[i]) {
			return strings.Join(fields[:i], " ")
		}
	}
	return token
}

// stripTraverse removes "trav"/"traverse" words and reports whether any was
// present.
func stripTraverse(token string) (string, bool) {
	if !strings.Contains(token, "trav") {
		return token, false
	}
	fields := strings.Fields(token)
	kept := fields[:0]
	for _, f := range fields {
		if strings.HasPrefix(strings.ToLower(f), "trav") {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " "), true
}
