package atlas

import (
	"unicode"

	"github.com/paveg/atlas/internal/aggregate"
	"github.com/paveg/atlas/internal/errors"
)

// Threshold and filter queries. Filtering never reorders: results keep the
// input's original relative order. "Below" is always strict (<); "at most"
// is inclusive (<=).

func names(countries []Country) []string {
	result := make([]string, 0, len(countries))
	for _, c := range countries {
		result = append(result, c.Name)
	}
	return result
}

// CountryNames returns the name of every country in input order.
func CountryNames(countries []Country) ([]string, error) {
	if err := requireCollection("CountryNames", countries); err != nil {
		return nil, err
	}
	return names(countries), nil
}

// NamesInRegion returns the names of the countries in the given region.
func NamesInRegion(countries []Country, region Region) ([]string, error) {
	if err := requireCollection("NamesInRegion", countries); err != nil {
		return nil, err
	}
	result := make([]string, 0)
	for _, c := range countries {
		if c.Region == region {
			result = append(result, c.Name)
		}
	}
	return result, nil
}

// CountInRegion returns the number of countries in the given region.
func CountInRegion(countries []Country, region Region) (int, error) {
	if err := requireCollection("CountInRegion", countries); err != nil {
		return 0, err
	}
	count := 0
	for _, c := range countries {
		if c.Region == region {
			count++
		}
	}
	return count, nil
}

// CountIndependent returns the number of independent countries.
func CountIndependent(countries []Country) (int, error) {
	if err := requireCollection("CountIndependent", countries); err != nil {
		return 0, err
	}
	count := 0
	for _, c := range countries {
		if c.Independent {
			count++
		}
	}
	return count, nil
}

// PopulationBelow returns the countries whose population is strictly below
// the threshold.
func PopulationBelow(countries []Country, threshold int64) ([]Country, error) {
	if err := requireCollection("PopulationBelow", countries); err != nil {
		return nil, err
	}
	result := make([]Country, 0)
	for _, c := range countries {
		if c.Population < threshold {
			result = append(result, c)
		}
	}
	return result, nil
}

// NamesWithPopulationBelow returns the names of the countries whose
// population is strictly below the threshold.
func NamesWithPopulationBelow(countries []Country, threshold int64) ([]string, error) {
	if err := requireCollection("NamesWithPopulationBelow", countries); err != nil {
		return nil, err
	}
	filtered, _ := PopulationBelow(countries, threshold)
	return names(filtered), nil
}

// PopulationAtMostOf returns the countries whose population is less than or
// equal to that of the comparing country, in descending population order.
func PopulationAtMostOf(countries []Country, comparing Country) ([]Country, error) {
	if err := requireCollection("PopulationAtMostOf", countries); err != nil {
		return nil, err
	}
	result := make([]Country, 0)
	for _, c := range countries {
		if c.Population <= comparing.Population {
			result = append(result, c)
		}
	}
	return aggregate.SortBy(result,
		aggregate.ByDesc(func(c Country) int64 { return c.Population }),
	), nil
}

// NamesWithoutArea returns the names of the countries with an absent area.
func NamesWithoutArea(countries []Country) ([]string, error) {
	if err := requireCollection("NamesWithoutArea", countries); err != nil {
		return nil, err
	}
	result := make([]string, 0)
	for _, c := range countries {
		if !c.HasArea() {
			result = append(result, c.Name)
		}
	}
	return result, nil
}

// NamesWithAreaBelow returns the names of the countries whose area is
// present and strictly below the threshold. Absent areas never match.
func NamesWithAreaBelow(countries []Country, threshold float64) ([]string, error) {
	if err := requireCollection("NamesWithAreaBelow", countries); err != nil {
		return nil, err
	}
	result := make([]string, 0)
	for _, c := range countries {
		if area, ok := c.AreaValue(); ok && area < threshold {
			result = append(result, c.Name)
		}
	}
	return result, nil
}

// AnyPopulationEquals reports whether at least one country has exactly the
// given population.
func AnyPopulationEquals(countries []Country, population int64) (bool, error) {
	if err := requireCollection("AnyPopulationEquals", countries); err != nil {
		return false, err
	}
	for _, c := range countries {
		if c.Population == population {
			return true, nil
		}
	}
	return false, nil
}

// AllHaveTimezone reports whether every country has at least one timezone.
// An empty collection vacuously satisfies the condition.
func AllHaveTimezone(countries []Country) (bool, error) {
	if err := requireCollection("AllHaveTimezone", countries); err != nil {
		return false, err
	}
	for _, c := range countries {
		if len(c.Timezones) == 0 {
			return false, nil
		}
	}
	return true, nil
}

// FirstStartingWith returns the first country, in input order, whose name
// starts with the given letter ignoring case. The result is nil when no
// country matches.
func FirstStartingWith(countries []Country, letter rune) (*Country, error) {
	if err := requireCollection("FirstStartingWith", countries); err != nil {
		return nil, err
	}
	if !unicode.IsLetter(letter) {
		return nil, errors.NewInvalidInputError("FirstStartingWith", string(letter), "must be a letter")
	}
	for i, c := range countries {
		if first, ok := aggregate.FirstRune(c.Name); ok &&
			unicode.ToLower(first) == unicode.ToLower(letter) {
			return &countries[i], nil
		}
	}
	return nil, nil
}
