package atlas

import (
	"unicode/utf8"

	"github.com/paveg/atlas/internal/aggregate"
)

// Extremum queries. Ties resolve to the first record encountered in the
// input's original order. A nil result means no record qualifies; that is
// never an error.

// MostPopulous returns the country with the highest population.
func MostPopulous(countries []Country) (*Country, error) {
	if err := requireCollection("MostPopulous", countries); err != nil {
		return nil, err
	}
	return maxPopulation(countries), nil
}

// MostPopulousInRegion returns the country with the highest population in
// the given region.
func MostPopulousInRegion(countries []Country, region Region) (*Country, error) {
	if err := requireCollection("MostPopulousInRegion", countries); err != nil {
		return nil, err
	}
	inRegion := make([]Country, 0)
	for _, c := range countries {
		if c.Region == region {
			inRegion = append(inRegion, c)
		}
	}
	return maxPopulation(inRegion), nil
}

// MostPopulousNameInRegion returns the name of the most populous country in
// the given region, or the empty string when the region holds no country.
func MostPopulousNameInRegion(countries []Country, region Region) (string, error) {
	c, err := MostPopulousInRegion(countries, region)
	if err != nil {
		return "", err
	}
	if c == nil {
		return "", nil
	}
	return c.Name, nil
}

// Largest returns the country with the largest present area. Records with an
// absent area are excluded from consideration entirely; the result is nil
// when no record carries an area.
func Largest(countries []Country) (*Country, error) {
	if err := requireCollection("Largest", countries); err != nil {
		return nil, err
	}
	var best *Country
	var bestArea float64
	for i := range countries {
		area, ok := countries[i].AreaValue()
		if !ok {
			continue
		}
		if best == nil || area > bestArea {
			best = &countries[i]
			bestArea = area
		}
	}
	return best, nil
}

// LongestNameLength returns the length in runes of the longest country name,
// or zero for an empty collection.
func LongestNameLength(countries []Country) (int, error) {
	if err := requireCollection("LongestNameLength", countries); err != nil {
		return 0, err
	}
	longest := 0
	for _, c := range countries {
		if n := utf8.RuneCountInString(c.Name); n > longest {
			longest = n
		}
	}
	return longest, nil
}

func maxPopulation(countries []Country) *Country {
	best, ok := aggregate.MaxBy(countries,
		aggregate.By(func(c Country) int64 { return c.Population }),
	)
	if !ok {
		return nil
	}
	return &best
}
