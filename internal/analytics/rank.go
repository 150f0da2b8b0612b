package analytics

import "sort"

// TopN returns the n items with the highest key, descending. Ties keep input order.
func TopN[T any](items []T, n int, key func(T) float64) []T {
	return TopNWhere(items, n, key, nil)
}

// TopNWhere sorts all items by key first, then drops those keep rejects, then
// truncates to n. Filtering after the sort means the result is the highest
// overall entries that pass keep, in overall rank order.
func TopNWhere[T any](items []T, n int, key func(T) float64, keep func(T) bool) []T {
	if n <= 0 || len(items) == 0 {
		return []T{}
	}

	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return key(sorted[i]) > key(sorted[j])
	})

	out := make([]T, 0, min(n, len(sorted)))
	for _, item := range sorted {
		if keep != nil && !keep(item) {
			continue
		}
		out = append(out, item)
		if len(out) == n {
			break
		}
	}
	return out
}
