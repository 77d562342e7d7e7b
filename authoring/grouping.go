package authoring

import "github.com/neelammkw/elearning-client/models"

// GroupByAdjacentSection reports, per lecture, whether the authoring list
// renders a section header above it: only the first lecture carrying a
// section name not used at any earlier index gets one. This is a
// first-occurrence-of-value rule, not a strict boundary rule: for the
// section order A,A,B,A headers render at indices 0 and 2 only, and for
// A,B,A,B at 0 and 1 only, so a name repeated after an intervening section
// renders headerless under the wrong header. Section identity is a property
// of array order and name, not an id.
//
// Known fragility, preserved deliberately. The consumption side groups
// differently — see consumption.GroupByFirstSeenSection. The two rules must
// not be unified.
func GroupByAdjacentSection(items []models.CourseContent) []bool {
	headers := make([]bool, len(items))
	seen := make(map[string]bool, len(items))
	for i := range items {
		if !seen[items[i].VideoSection] {
			seen[items[i].VideoSection] = true
			headers[i] = true
		}
	}
	return headers
}
