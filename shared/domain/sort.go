package domain

import "sort"

// Display ordering: pinned items first, then unpinned; within each group
// strictly by timestamp descending. Sorts are stable so ties keep the
// original insertion order.

func SortDiscussionsForDisplay(discussions []Discussion) {
	sort.SliceStable(discussions, func(i, j int) bool {
		a, b := discussions[i], discussions[j]
		if a.IsPinned != b.IsPinned {
			return a.IsPinned
		}
		return a.Timestamp.After(b.Timestamp)
	})
}

func SortNotesForDisplay(notes []Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		a, b := notes[i], notes[j]
		if a.IsPinned != b.IsPinned {
			return a.IsPinned
		}
		return a.Timestamp.After(b.Timestamp)
	})
}
