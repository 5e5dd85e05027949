// Package domain models routebook entries: routes, boulders, and multipitch
// climbs recorded by a climber, and the enrichment that puts every grade on
// the shared ordinal axis of package grade.
//
// # Data Source
//
// Records originate from routebook CSV exports (one row per ascent). The
// upstream exporter converts each row to flat JSON and publishes it on the
// Kafka source topic. Column names are kept as exported, including the
// German "ernsthaftigkeit" (seriousness rating of alpine multipitches).
//
// # Routebook Conventions
//
// Discipline:
//
//	"Sportclimb", "Boulder" or "Multipitch". Other spellings are mapped by
//	[grade.ParseDiscipline]; unknown values stay empty and disable the boulder
//	guard during normalization.
//
// Grade:
//
//	Free text in any of the six supported scales, optionally annotated:
//	"5.8 C2" (aid), "7a R" (runout), "7B trav" (traverse), "Xa/7c+" (Saxon
//	double grade). Unclassifiable grades are kept verbatim with ordinal 0.
//
// Pitches (multipitch only):
//
//	Comma-separated pitch grades in climbing order. A grade in parentheses
//	was followed (seconded), all others were led:
//	  "6a,(6b),6a+"  →  pitch 1 led 6a, pitch 2 followed 6b, pitch 3 led 6a+
//
// Flags:
//
//	"X" in the project or milestone column marks the flag as set; anything
//	else, including an empty cell, leaves it unset.
//
// Stars:
//
//	Integer quality rating 0–3 in most books, clamped to 0–5. Empty or
//	non-numeric cells are 0.
//
// Date:
//
//	ISO "YYYY-MM-DD". Unparseable dates become the zero time.
//
// # ID Generation
//
// Route IDs are deterministic SHA-256 hashes of discipline|name|crag|area|
// grade|date so that re-importing the same book yields the same IDs and the
// downstream store can upsert idempotently. See [generateID].
package domain
