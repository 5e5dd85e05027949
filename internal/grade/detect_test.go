package grade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetector_Detect(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		token string
		want  Scale
	}{
		{"7c", French},
		{"8a+", French},
		{"7a/7a+", French},
		{"VIIIa", Elbsandstein},
		{"V", Elbsandstein},
		{"Xa/7c+", Elbsandstein},
		{"V0", Vermin},
		{"V10", Vermin},
		{"V4/V5", Vermin},
		{"VB", Vermin},
		{"L", Vermin},
		{"7B trav", Font},
		{"7C+", Font},
		{"6C/+", Font},
		{"5.13b", YDS},
		{"5.10a/b", YDS},
		{"5.8 C2", YDS},
		{"9+/10-", UIAA},
		{"10-", UIAA},
		{"6", UIAA},
		{"5+", UIAA},
		{" 7c ", French},
		{"", Undetermined},
		{"   ", Undetermined},
		{"garbage123!!", Undetermined},
		{"?", Undetermined},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Detect(tt.token))
		})
	}
}

// swap returns DefaultRules with the rules of scales a and b exchanged.
func swap(a, b Scale) []Rule {
	rules := DefaultRules()
	var ia, ib int
	for i, r := range rules {
		switch r.Scale {
		case a:
			ia = i
		case b:
			ib = i
		}
	}
	rules[ia], rules[ib] = rules[ib], rules[ia]
	return rules
}

func TestDetector_OrderMatters(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Scale
		token   string
		want    Scale
		swapped Scale
	}{
		{"YDS before UIAA", YDS, UIAA, "5.10a", YDS, UIAA},
		{"Vermin before Elbsandstein", Vermin, Elbsandstein, "V10", Vermin, Elbsandstein},
		{"Font before UIAA", Font, UIAA, "7A+", Font, UIAA},
		{"French before UIAA", French, UIAA, "7c", French, UIAA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewDetector().Detect(tt.token))
			assert.Equal(t, tt.swapped, NewDetector(swap(tt.a, tt.b)...).Detect(tt.token))
		})
	}
}

func TestDefaultRules_Order(t *testing.T) {
	var got []Scale
	for _, r := range DefaultRules() {
		got = append(got, r.Scale)
	}
	assert.Equal(t, []Scale{YDS, Vermin, Font, Elbsandstein, French, UIAA}, got)
}
