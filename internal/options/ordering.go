package options

import "sort"

// SortedByParenthood orders selections so that for every option whose
// parent is also selected, the parent comes first. Unrelated options keep
// their input order (stable sort on parent-chain depth).
//
// Depth alone is a valid key because an option is always exactly one level
// deeper than its parent, and parents outside the selection impose no
// ordering constraint.
func SortedByParenthood(selections []Selection) []Selection {
	out := make([]Selection, len(selections))
	copy(out, selections)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Option.depth < out[j].Option.depth
	})
	return out
}
