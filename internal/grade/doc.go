// Package grade normalizes climbing difficulty grades onto a single ordinal
// axis and projects ordinals back into any supported display scale.
//
// # Scales
//
// Six regional scales are supported. Sport scales:
//
//	French        "3a" … "9a", with tabulated slash grades ("7a/7a+")
//	UIAA          "1" … "11", signed ("6-", "8+"), with slash grades ("9/9+")
//	YDS           "5.3" … "5.14d", with slash grades ("5.10a/b") and "5.7+"
//	Elbsandstein  "II" … "XIIb" (Saxon Roman numerals), no slash grades
//
// Boulder scales:
//
//	Vermin        "V0" … "V16", "Vn/Vn+1", plus "VB" and "L" (unrated, 0)
//	Font          "5" … "9A", with "/+" half steps ("6C/+")
//
// # The ordinal axis
//
// The axis is loosely based on the Australian (Ewbank) scale for sport
// grades, with decimals introduced where a scale is denser than Ewbank.
// Boulder scales live on the V-number axis: Vermin "V7" and Font "7A+" are
// both 7. Values are multiples of 0.25, so float64 comparison is exact.
//
// Ordinal 0 is the "unranked" sentinel. It is produced for unclassifiable
// tokens and for tokens missing from their table, and it is also the value of
// the easiest boulder grades ("VB", "L", "V0"). Use [Normalizer.Classify] when
// unknown grades must be told apart from genuinely easy ones.
//
// # Detection
//
// Detection is a first-match walk over prefix-anchored patterns in a fixed
// order: YDS, Vermin, Font, Elbsandstein, French, UIAA. The patterns overlap
// ("7c" also matches the UIAA prefix, "V10" the Elbsandstein prefix), so the
// order is part of the contract.
//
// # Normalization quirks
//
//   - Aid and runout suffixes are dropped: "5.8 C2" → "5.8", "7a R" → "7a".
//   - Elbsandstein double grades keep the Saxon part: "Xa/7c+" → "Xa".
//   - Traverses are one ordinal step easier: "7B trav" → ordinal("7B") - 1.
//   - A sport grade on a boulder is forced to 0 so mis-entered easy problems
//     sort at the bottom of the boulder range.
//
// # Re-projection
//
// [Denormalizer.Denormalize] rounds down: an ordinal with no exact token in the
// target scale is shown as the hardest token not above it. This systematically
// understates borderline grades when converting between scales.
//
// All types in this package are immutable after construction and safe for
// concurrent use.
package grade
