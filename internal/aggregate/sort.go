package aggregate

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Comparator reports the order of a relative to b: negative when a sorts
// before b, positive when after, zero when the key considers them equal.
type Comparator[T any] func(a, b T) int

// By builds an ascending Comparator from an ordered projection.
func By[T any, K constraints.Ordered](proj func(T) K) Comparator[T] {
	return func(a, b T) int {
		ka, kb := proj(a), proj(b)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		default:
			return 0
		}
	}
}

// ByDesc builds a descending Comparator from an ordered projection.
func ByDesc[T any, K constraints.Ordered](proj func(T) K) Comparator[T] {
	asc := By(proj)
	return func(a, b T) int {
		return -asc(a, b)
	}
}

// Compose chains comparators left to right, falling through to the next key
// on equality. An empty chain considers everything equal.
func Compose[T any](cmps ...Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		for _, cmp := range cmps {
			if c := cmp(a, b); c != 0 {
				return c
			}
		}
		return 0
	}
}

// SortBy returns a copy of items sorted by the composed comparator chain.
// The sort is stable: items the chain considers equal keep their input
// (insertion) order, which acts as the final tie-break. The input slice is
// never reordered.
func SortBy[T any](items []T, cmps ...Comparator[T]) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	cmp := Compose(cmps...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return cmp(sorted[i], sorted[j]) < 0
	})
	return sorted
}

// MaxBy returns the first item maximizing the comparator chain, scanning in
// input order so ties resolve to the earliest occurrence. ok is false for an
// empty input.
func MaxBy[T any](items []T, cmps ...Comparator[T]) (T, bool) {
	var best T
	if len(items) == 0 {
		return best, false
	}
	cmp := Compose(cmps...)
	best = items[0]
	for _, item := range items[1:] {
		if cmp(item, best) > 0 {
			best = item
		}
	}
	return best, true
}

// MinBy returns the first item minimizing the comparator chain, with the
// same first-match tie-break as MaxBy.
func MinBy[T any](items []T, cmps ...Comparator[T]) (T, bool) {
	var best T
	if len(items) == 0 {
		return best, false
	}
	cmp := Compose(cmps...)
	best = items[0]
	for _, item := range items[1:] {
		if cmp(item, best) < 0 {
			best = item
		}
	}
	return best, true
}
