package catalog

import "sort"

// SortByPriority orders deals by ascending priority. Deals without a
// priority go after every deal that has one. The sort is stable, so equal
// priorities and unprioritized deals keep their input order.
func SortByPriority(deals []*Deal) {
	sort.SliceStable(deals, func(i, j int) bool {
		a, b := deals[i], deals[j]
		switch {
		case a.HasPriority && b.HasPriority:
			return a.Priority < b.Priority
		case a.HasPriority:
			return true
		default:
			return false
		}
	})
}
