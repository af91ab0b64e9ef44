package atlas

import (
	"fmt"
	"unicode/utf8"

	"github.com/paveg/atlas/internal/aggregate"
)

// Top-N and sorting queries. Requesting more elements than the collection
// holds returns everything; requesting zero returns an empty result; a
// negative count is an argument error. Sorts are stable, so records equal
// under every sort key keep their input order.

// FirstNames returns the names of the first n countries in input order.
func FirstNames(countries []Country, n int) ([]string, error) {
	if err := requireCollection("FirstNames", countries); err != nil {
		return nil, err
	}
	if err := requireCount("FirstNames", n); err != nil {
		return nil, err
	}
	if n > len(countries) {
		n = len(countries)
	}
	return names(countries[:n]), nil
}

// LeastPopulousPopulations returns the populations of the n least populous
// countries, in ascending order.
func LeastPopulousPopulations(countries []Country, n int) ([]int64, error) {
	if err := requireCollection("LeastPopulousPopulations", countries); err != nil {
		return nil, err
	}
	if err := requireCount("LeastPopulousPopulations", n); err != nil {
		return nil, err
	}
	sorted := aggregate.SortBy(countries,
		aggregate.By(func(c Country) int64 { return c.Population }),
	)
	if n > len(sorted) {
		n = len(sorted)
	}
	populations := make([]int64, 0, n)
	for _, c := range sorted[:n] {
		populations = append(populations, c.Population)
	}
	return populations, nil
}

// LeastPopulousNames returns the names of the n least populous countries,
// in ascending population order.
func LeastPopulousNames(countries []Country, n int) ([]string, error) {
	if err := requireCollection("LeastPopulousNames", countries); err != nil {
		return nil, err
	}
	if err := requireCount("LeastPopulousNames", n); err != nil {
		return nil, err
	}
	sorted := aggregate.SortBy(countries,
		aggregate.By(func(c Country) int64 { return c.Population }),
	)
	if n > len(sorted) {
		n = len(sorted)
	}
	return names(sorted[:n]), nil
}

// SortByPopulationDesc returns the countries in descending population order.
func SortByPopulationDesc(countries []Country) ([]Country, error) {
	if err := requireCollection("SortByPopulationDesc", countries); err != nil {
		return nil, err
	}
	return aggregate.SortBy(countries,
		aggregate.ByDesc(func(c Country) int64 { return c.Population }),
	), nil
}

// PopulationsInRegionAsc returns the populations of the countries in the
// given region, in ascending order.
func PopulationsInRegionAsc(countries []Country, region Region) ([]int64, error) {
	if err := requireCollection("PopulationsInRegionAsc", countries); err != nil {
		return nil, err
	}
	return regionPopulations(countries, region, false), nil
}

// PopulationsInRegionDesc returns the populations of the countries in the
// given region, in descending order.
func PopulationsInRegionDesc(countries []Country, region Region) ([]int64, error) {
	if err := requireCollection("PopulationsInRegionDesc", countries); err != nil {
		return nil, err
	}
	return regionPopulations(countries, region, true), nil
}

func regionPopulations(countries []Country, region Region, desc bool) []int64 {
	populations := make([]int64, 0)
	for _, c := range countries {
		if c.Region == region {
			populations = append(populations, c.Population)
		}
	}
	cmp := aggregate.By(func(p int64) int64 { return p })
	if desc {
		cmp = aggregate.ByDesc(func(p int64) int64 { return p })
	}
	return aggregate.SortBy(populations, cmp)
}

// CapitalsAlphabetical returns the present capitals in alphabetical order.
func CapitalsAlphabetical(countries []Country) ([]string, error) {
	if err := requireCollection("CapitalsAlphabetical", countries); err != nil {
		return nil, err
	}
	return aggregate.SortBy(capitals(countries),
		aggregate.By(func(s string) string { return s }),
	), nil
}

// CapitalsReverse returns the present capitals in reverse alphabetical order.
func CapitalsReverse(countries []Country) ([]string, error) {
	if err := requireCollection("CapitalsReverse", countries); err != nil {
		return nil, err
	}
	return aggregate.SortBy(capitals(countries),
		aggregate.ByDesc(func(s string) string { return s }),
	), nil
}

// CapitalsByLength returns the present capitals in ascending length order.
func CapitalsByLength(countries []Country) ([]string, error) {
	if err := requireCollection("CapitalsByLength", countries); err != nil {
		return nil, err
	}
	return aggregate.SortBy(capitals(countries),
		aggregate.By(utf8.RuneCountInString),
	), nil
}

// CapitalsByLengthThenAlpha returns the present capitals in ascending length
// order, alphabetically among capitals of equal length.
func CapitalsByLengthThenAlpha(countries []Country) ([]string, error) {
	if err := requireCollection("CapitalsByLengthThenAlpha", countries); err != nil {
		return nil, err
	}
	return aggregate.SortBy(capitals(countries),
		aggregate.By(utf8.RuneCountInString),
		aggregate.By(func(s string) string { return s }),
	), nil
}

// NamesByTimezoneCount returns the country names in ascending order of the
// number of timezones.
func NamesByTimezoneCount(countries []Country) ([]string, error) {
	if err := requireCollection("NamesByTimezoneCount", countries); err != nil {
		return nil, err
	}
	sorted := aggregate.SortBy(countries,
		aggregate.By(func(c Country) int { return len(c.Timezones) }),
	)
	return names(sorted), nil
}

// TimezoneCountsFormatted returns one "name:count" entry per country, in
// ascending order of the number of timezones.
func TimezoneCountsFormatted(countries []Country) ([]string, error) {
	if err := requireCollection("TimezoneCountsFormatted", countries); err != nil {
		return nil, err
	}
	sorted := aggregate.SortBy(countries,
		aggregate.By(func(c Country) int { return len(c.Timezones) }),
	)
	result := make([]string, 0, len(sorted))
	for _, c := range sorted {
		result = append(result, fmt.Sprintf("%s:%d", c.Name, len(c.Timezones)))
	}
	return result, nil
}

func capitals(countries []Country) []string {
	result := make([]string, 0, len(countries))
	for _, c := range countries {
		if c.HasCapital() {
			result = append(result, c.Capital)
		}
	}
	return result
}
