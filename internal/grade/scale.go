package grade

import "strings"

// Scale identifies a grading system.
type Scale string

const (
	Undetermined Scale = "undetermined"
	French       Scale = "French"
	UIAA         Scale = "UIAA"
	YDS          Scale = "YDS"
	Elbsandstein Scale = "Elbsandstein"
	Vermin       Scale = "Vermin"
	Font         Scale = "Font"
)

// Scales lists every supported scale, sport scales first.
var Scales = []Scale{French, UIAA, YDS, Elbsandstein, Vermin, Font}

// ParseScale resolves a scale name case-insensitively. "V" and "Hueco" are
// accepted for Vermin and "Fontainebleau" for Font.
func ParseScale(name string) (Scale, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "french":
		return French, true
	case "uiaa":
		return UIAA, true
	case "yds":
		return YDS, true
	case "elbsandstein", "saxon":
		return Elbsandstein, true
	case "vermin", "v", "hueco":
		return Vermin, true
	case "font", "fontainebleau":
		return Font, true
	default:
		return Undetermined, false
	}
}

// IsSport reports whether s is a sport (route) scale.
func (s Scale) IsSport() bool {
	switch s {
	case French, UIAA, YDS, Elbsandstein:
		return true
	default:
		return false
	}
}

// IsBoulder reports whether s is a boulder scale.
func (s Scale) IsBoulder() bool {
	return s == Vermin || s == Font
}

func (s Scale) String() string { return string(s) }

// Discipline is the kind of ascent a grade belongs to.
type Discipline string

const (
	DisciplineUnknown    Discipline = ""
	DisciplineSport      Discipline = "Sportclimb"
	DisciplineBoulder    Discipline = "Boulder"
	DisciplineMultipitch Discipline = "Multipitch"
)

// ParseDiscipline maps the spellings found in routebook exports onto a
// Discipline. Unrecognized values yield DisciplineUnknown.
func ParseDiscipline(value string) Discipline {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "sportclimb", "sport", "sportclimbing", "route":
		return DisciplineSport
	case "boulder", "bouldering":
		return DisciplineBoulder
	case "multipitch", "multi-pitch", "mp":
		return DisciplineMultipitch
	default:
		return DisciplineUnknown
	}
}

// DisplayScales returns the scales a discipline is usually displayed in.
func DisplayScales(d Discipline) []Scale {
	if d == DisciplineBoulder {
		return []Scale{Vermin, Font}
	}
	return []Scale{French, UIAA, YDS, Elbsandstein}
}
