// Package aggregate provides the shared building blocks for the query layer:
// null-safe numeric summaries, grouping, partitioning, stable multi-key
// sorting, and case-insensitive text predicates. All functions are pure and
// never mutate their input.
package aggregate

import (
	"golang.org/x/exp/constraints"
)

// Number constrains summary projections to integer and float types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Summary holds null-safe aggregate statistics over a numeric projection.
// Absent values are excluded from every statistic, not treated as zero.
// Min, Max and Mean are undefined when Count is zero; callers must branch
// on the ok result rather than read a sentinel.
type Summary[N Number] struct {
	Count int
	Sum   N

	min N
	max N
}

// Min returns the smallest present value. ok is false when Count is zero.
func (s Summary[N]) Min() (N, bool) {
	if s.Count == 0 {
		var zero N
		return zero, false
	}
	return s.min, true
}

// Max returns the largest present value. ok is false when Count is zero.
func (s Summary[N]) Max() (N, bool) {
	if s.Count == 0 {
		var zero N
		return zero, false
	}
	return s.max, true
}

// Mean returns the arithmetic mean of present values. ok is false when
// Count is zero.
func (s Summary[N]) Mean() (float64, bool) {
	if s.Count == 0 {
		return 0, false
	}
	return float64(s.Sum) / float64(s.Count), true
}

// Summarize computes a null-safe Summary over proj. The projection reports
// absence by returning ok=false; such items contribute to no statistic.
func Summarize[T any, N Number](items []T, proj func(T) (N, bool)) Summary[N] {
	var s Summary[N]
	for _, item := range items {
		v, ok := proj(item)
		if !ok {
			continue
		}
		if s.Count == 0 {
			s.min = v
			s.max = v
		} else {
			if v < s.min {
				s.min = v
			}
			if v > s.max {
				s.max = v
			}
		}
		s.Count++
		s.Sum += v
	}
	return s
}
