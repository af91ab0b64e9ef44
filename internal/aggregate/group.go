package aggregate

// GroupBy returns a mapping from each distinct key to the sub-sequence of
// items with that key. The grouping is total: every item appears in exactly
// one group, and original relative order is preserved within each group.
func GroupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// CountBy returns the number of items per distinct key.
func CountBy[T any, K comparable](items []T, key func(T) K) map[K]int {
	counts := make(map[K]int)
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}

// Partition splits items into the sub-sequence satisfying pred and the
// sub-sequence that does not. Unlike GroupBy, both buckets always exist:
// an empty bucket is a non-nil empty slice, never a missing key.
func Partition[T any](items []T, pred func(T) bool) (yes, no []T) {
	yes = make([]T, 0)
	no = make([]T, 0)
	for _, item := range items {
		if pred(item) {
			yes = append(yes, item)
		} else {
			no = append(no, item)
		}
	}
	return yes, no
}

// PartitionCount returns the sizes of both Partition buckets keyed by the
// predicate outcome. Both keys are always present.
func PartitionCount[T any](items []T, pred func(T) bool) map[bool]int {
	counts := map[bool]int{true: 0, false: 0}
	for _, item := range items {
		counts[pred(item)]++
	}
	return counts
}

// Distinct returns the distinct items in first-occurrence order.
func Distinct[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	result := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}
