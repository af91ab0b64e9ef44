package atlas

import (
	"sort"

	"github.com/paveg/atlas/internal/aggregate"
)

// Numeric summary and derived-metric queries. Summaries are null-safe:
// absent values are excluded from every statistic, and a summary over zero
// present values reports its min/max/mean as undefined rather than zero.

// Int64Summary is the null-safe summary shape for int64 projections.
type Int64Summary = aggregate.Summary[int64]

// IntSummary is the null-safe summary shape for int projections.
type IntSummary = aggregate.Summary[int]

// FloatSummary is the null-safe summary shape for float64 projections.
type FloatSummary = aggregate.Summary[float64]

// MaxPopulation returns the highest population, or zero for an empty
// collection.
func MaxPopulation(countries []Country) (int64, error) {
	if err := requireCollection("MaxPopulation", countries); err != nil {
		return 0, err
	}
	s := aggregate.Summarize(countries, populationOf)
	maxVal, ok := s.Max()
	if !ok {
		return 0, nil
	}
	return maxVal, nil
}

// AveragePopulation returns the mean population, or zero for an empty
// collection.
func AveragePopulation(countries []Country) (float64, error) {
	if err := requireCollection("AveragePopulation", countries); err != nil {
		return 0, err
	}
	s := aggregate.Summarize(countries, populationOf)
	mean, ok := s.Mean()
	if !ok {
		return 0, nil
	}
	return mean, nil
}

// PopulationSummary returns count, sum, min, max and mean over the
// population field.
func PopulationSummary(countries []Country) (Int64Summary, error) {
	if err := requireCollection("PopulationSummary", countries); err != nil {
		return Int64Summary{}, err
	}
	return aggregate.Summarize(countries, populationOf), nil
}

// SumPopulationInRegion returns the total population of the given region.
func SumPopulationInRegion(countries []Country, region Region) (int64, error) {
	if err := requireCollection("SumPopulationInRegion", countries); err != nil {
		return 0, err
	}
	var sum int64
	for _, c := range countries {
		if c.Region == region {
			sum += c.Population
		}
	}
	return sum, nil
}

// AreaSummary returns count, sum, min, max and mean over the present areas.
// Records with an absent area contribute to no statistic.
func AreaSummary(countries []Country) (FloatSummary, error) {
	if err := requireCollection("AreaSummary", countries); err != nil {
		return FloatSummary{}, err
	}
	return aggregate.Summarize(countries, Country.AreaValue), nil
}

// TotalArea returns the sum of all present areas. ok is false when no record
// carries an area.
func TotalArea(countries []Country) (total float64, ok bool, err error) {
	if err := requireCollection("TotalArea", countries); err != nil {
		return 0, false, err
	}
	s := aggregate.Summarize(countries, Country.AreaValue)
	if s.Count == 0 {
		return 0, false, nil
	}
	return s.Sum, true, nil
}

// HasDuplicateArea reports whether two or more countries share the same
// present area. Absent areas never collide.
func HasDuplicateArea(countries []Country) (bool, error) {
	if err := requireCollection("HasDuplicateArea", countries); err != nil {
		return false, err
	}
	seen := make(map[float64]struct{})
	for _, c := range countries {
		area, ok := c.AreaValue()
		if !ok {
			continue
		}
		if _, dup := seen[area]; dup {
			return true, nil
		}
		seen[area] = struct{}{}
	}
	return false, nil
}

// DistinctTimezoneCount returns the number of distinct timezones across the
// whole collection.
func DistinctTimezoneCount(countries []Country) (int, error) {
	if err := requireCollection("DistinctTimezoneCount", countries); err != nil {
		return 0, err
	}
	return len(distinctTimezones(countries)), nil
}

// DistinctTimezonesInRegions returns the distinct timezones observed by the
// countries of the given regions, sorted alphabetically.
func DistinctTimezonesInRegions(countries []Country, regions ...Region) ([]string, error) {
	if err := requireCollection("DistinctTimezonesInRegions", countries); err != nil {
		return nil, err
	}
	wanted := make(map[Region]struct{}, len(regions))
	for _, r := range regions {
		wanted[r] = struct{}{}
	}
	filtered := make([]Country, 0)
	for _, c := range countries {
		if _, ok := wanted[c.Region]; ok {
			filtered = append(filtered, c)
		}
	}
	zones := distinctTimezones(filtered)
	sort.Strings(zones)
	return zones, nil
}

// RegionsWithoutArea returns the distinct regions containing at least one
// country with an absent area, in first-occurrence order.
func RegionsWithoutArea(countries []Country) ([]Region, error) {
	if err := requireCollection("RegionsWithoutArea", countries); err != nil {
		return nil, err
	}
	regions := make([]Region, 0)
	for _, c := range countries {
		if !c.HasArea() {
			regions = append(regions, c.Region)
		}
	}
	return aggregate.Distinct(regions), nil
}

// PopulationDensity returns population divided by area keyed by country
// name. Records with an absent or zero area are excluded rather than
// producing a division error.
func PopulationDensity(countries []Country) (map[string]float64, error) {
	if err := requireCollection("PopulationDensity", countries); err != nil {
		return nil, err
	}
	result := make(map[string]float64)
	for _, c := range countries {
		area, ok := c.AreaValue()
		if !ok || area == 0 {
			continue
		}
		result[c.Name] = float64(c.Population) / area
	}
	return result, nil
}

// CurrencyCodes returns the distinct currency codes in use across the
// collection, sorted alphabetically.
func CurrencyCodes(countries []Country) ([]string, error) {
	if err := requireCollection("CurrencyCodes", countries); err != nil {
		return nil, err
	}
	codes := make([]string, 0)
	for _, c := range countries {
		for _, cur := range c.Currencies {
			codes = append(codes, cur.Code)
		}
	}
	distinct := aggregate.Distinct(codes)
	sort.Strings(distinct)
	return distinct, nil
}

func populationOf(c Country) (int64, bool) {
	return c.Population, true
}

func distinctTimezones(countries []Country) []string {
	zones := make([]string, 0)
	for _, c := range countries {
		zones = append(zones, c.Timezones...)
	}
	return aggregate.Distinct(zones)
}
