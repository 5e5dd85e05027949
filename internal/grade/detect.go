package grade

import (
	"regexp"
	"strings"
)

// Rule classifies tokens whose prefix matches Pattern as Scale.
type Rule struct {
	Scale   Scale
	Pattern *regexp.Regexp
}

// Patterns are anchored at the start only, so suffixes such as " trav" or
// " C2" do not prevent detection.
var (
	ydsPattern          = regexp.MustCompile(`^5\.[0-9]+[a-d]?`)
	verminPattern       = regexp.MustCompile(`^(?:V[0-9]+|VB\b|L\b)`)
	fontPattern         = regexp.MustCompile(`^[1-9][A-C]\+?`)
	elbsandsteinPattern = regexp.MustCompile(`^[IVX]+[abc]?`)
	frenchPattern       = regexp.MustCompile(`^[1-9][a-z]+`)
	uiaaPattern         = regexp.MustCompile(`^[1-9][0-9]*[+-]?`)
)

// DefaultRules returns the detection rules in evaluation order. Earlier rules
// must be the less ambiguous ones: "V10" also matches the Elbsandstein
// pattern and "7c" the UIAA pattern.
func DefaultRules() []Rule {
	return []Rule{
		{Scale: YDS, Pattern: ydsPattern},
		{Scale: Vermin, Pattern: verminPattern},
		{Scale: Font, Pattern: fontPattern},
		{Scale: Elbsandstein, Pattern: elbsandsteinPattern},
		{Scale: French, Pattern: frenchPattern},
		{Scale: UIAA, Pattern: uiaaPattern},
	}
}

// Detector guesses the scale of a raw grade token.
type Detector struct {
	rules []Rule
}

// NewDetector creates a Detector evaluating rules in the given order. With no
// rules it uses DefaultRules.
func NewDetector(rules ...Rule) *Detector {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Detector{rules: append([]Rule(nil), rules...)}
}

// Detect returns the scale of the first matching rule, or Undetermined.
func (d *Detector) Detect(token string) Scale {
	token = strings.TrimSpace(token)
	if token == "" {
		return Undetermined
	}
	for _, r := range d.rules {
		if r.Pattern.MatchString(token) {
			return r.Scale
		}
	}
	return Undetermined
}
