package atlas

import (
	"github.com/paveg/atlas/internal/aggregate"
)

// Grouping and partitioning queries. Groupings are total: every record lands
// in exactly one group, and a key present in any record (including
// RegionUnspecified) forms a valid group. Partitions always yield both
// buckets, even when one is empty.

// ByRegion groups the countries by region, preserving input order within
// each group.
func ByRegion(countries []Country) (map[Region][]Country, error) {
	if err := requireCollection("ByRegion", countries); err != nil {
		return nil, err
	}
	return aggregate.GroupBy(countries, func(c Country) Region { return c.Region }), nil
}

// CountByRegion returns the number of countries per region.
func CountByRegion(countries []Country) (map[Region]int, error) {
	if err := requireCollection("CountByRegion", countries); err != nil {
		return nil, err
	}
	return aggregate.CountBy(countries, func(c Country) Region { return c.Region }), nil
}

// AveragePopulationByRegion returns the mean population per region.
func AveragePopulationByRegion(countries []Country) (map[Region]float64, error) {
	if err := requireCollection("AveragePopulationByRegion", countries); err != nil {
		return nil, err
	}
	groups := aggregate.GroupBy(countries, func(c Country) Region { return c.Region })
	averages := make(map[Region]float64, len(groups))
	for region, group := range groups {
		s := aggregate.Summarize(group, func(c Country) (int64, bool) {
			return c.Population, true
		})
		// groups are never empty, so the mean is always defined
		mean, _ := s.Mean()
		averages[region] = mean
	}
	return averages, nil
}

// MostPopulousByRegion returns the most populous country per region, with
// ties resolved to the first record in input order.
func MostPopulousByRegion(countries []Country) (map[Region]Country, error) {
	if err := requireCollection("MostPopulousByRegion", countries); err != nil {
		return nil, err
	}
	groups := aggregate.GroupBy(countries, func(c Country) Region { return c.Region })
	result := make(map[Region]Country, len(groups))
	for region, group := range groups {
		best, _ := aggregate.MaxBy(group,
			aggregate.By(func(c Country) int64 { return c.Population }),
		)
		result[region] = best
	}
	return result, nil
}

// LargestPopulationByRegion returns the highest population per region.
func LargestPopulationByRegion(countries []Country) (map[Region]int64, error) {
	if err := requireCollection("LargestPopulationByRegion", countries); err != nil {
		return nil, err
	}
	most, _ := MostPopulousByRegion(countries)
	result := make(map[Region]int64, len(most))
	for region, c := range most {
		result[region] = c.Population
	}
	return result, nil
}

// LongestNameByRegion returns the longest country name per region, with ties
// resolved to the first record in input order.
func LongestNameByRegion(countries []Country) (map[Region]string, error) {
	if err := requireCollection("LongestNameByRegion", countries); err != nil {
		return nil, err
	}
	groups := aggregate.GroupBy(countries, func(c Country) Region { return c.Region })
	result := make(map[Region]string, len(groups))
	for region, group := range groups {
		best, _ := aggregate.MaxBy(group,
			aggregate.By(func(c Country) int { return len([]rune(c.Name)) }),
		)
		result[region] = best.Name
	}
	return result, nil
}

// CountByFirstLetter returns the number of countries per first letter of
// their name.
func CountByFirstLetter(countries []Country) (map[rune]int, error) {
	if err := requireCollection("CountByFirstLetter", countries); err != nil {
		return nil, err
	}
	return aggregate.CountBy(countries, func(c Country) rune {
		first, _ := aggregate.FirstRune(c.Name)
		return first
	}), nil
}

// CountByTimezone returns the number of countries per timezone. A country
// observing several timezones counts towards each of them; duplicate zone
// entries within one record count once.
func CountByTimezone(countries []Country) (map[string]int, error) {
	if err := requireCollection("CountByTimezone", countries); err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, c := range countries {
		for _, zone := range aggregate.Distinct(c.Timezones) {
			counts[zone]++
		}
	}
	return counts, nil
}

// CountNamesStartingWithCodeByRegion returns, per region present in the
// input, the number of countries whose name starts with their own
// two-letter code ignoring case. Regions with no such country map to zero.
func CountNamesStartingWithCodeByRegion(countries []Country) (map[Region]int, error) {
	if err := requireCollection("CountNamesStartingWithCodeByRegion", countries); err != nil {
		return nil, err
	}
	counts := make(map[Region]int)
	for _, c := range countries {
		if _, ok := counts[c.Region]; !ok {
			counts[c.Region] = 0
		}
		if aggregate.HasPrefixFold(c.Name, c.Code) {
			counts[c.Region]++
		}
	}
	return counts, nil
}

// PartitionByRegionCount returns the number of countries inside (true) and
// outside (false) the given region. Both keys are always present.
func PartitionByRegionCount(countries []Country, region Region) (map[bool]int, error) {
	if err := requireCollection("PartitionByRegionCount", countries); err != nil {
		return nil, err
	}
	return aggregate.PartitionCount(countries, func(c Country) bool {
		return c.Region == region
	}), nil
}

// PartitionByMeanPopulation returns the number of countries with population
// greater than or equal to the collection's mean (true) versus below it
// (false). An empty collection yields zero on both sides.
func PartitionByMeanPopulation(countries []Country) (map[bool]int, error) {
	if err := requireCollection("PartitionByMeanPopulation", countries); err != nil {
		return nil, err
	}
	s := aggregate.Summarize(countries, func(c Country) (int64, bool) {
		return c.Population, true
	})
	mean, ok := s.Mean()
	if !ok {
		return map[bool]int{true: 0, false: 0}, nil
	}
	return aggregate.PartitionCount(countries, func(c Country) bool {
		return float64(c.Population) >= mean
	}), nil
}

// ByCode returns the countries keyed by their unique two-letter code.
func ByCode(countries []Country) (map[string]Country, error) {
	if err := requireCollection("ByCode", countries); err != nil {
		return nil, err
	}
	result := make(map[string]Country, len(countries))
	for _, c := range countries {
		result[c.Code] = c
	}
	return result, nil
}

// NamesByCode returns the country names keyed by their two-letter code.
func NamesByCode(countries []Country) (map[string]string, error) {
	if err := requireCollection("NamesByCode", countries); err != nil {
		return nil, err
	}
	result := make(map[string]string, len(countries))
	for _, c := range countries {
		result[c.Code] = c.Name
	}
	return result, nil
}

// CapitalsMatchingCountryName returns, in input order, the capitals whose
// name equals the name of their country.
func CapitalsMatchingCountryName(countries []Country) ([]string, error) {
	if err := requireCollection("CapitalsMatchingCountryName", countries); err != nil {
		return nil, err
	}
	result := make([]string, 0)
	for _, c := range countries {
		if c.HasCapital() && c.Capital == c.Name {
			result = append(result, c.Capital)
		}
	}
	return result, nil
}
