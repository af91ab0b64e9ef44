package atlas

import (
	"fmt"
	"strings"
)

// Region is the closed set of geographic regions a country may belong to.
// A record whose source omits the region carries RegionUnspecified; that is
// a valid group key, not an error state.
type Region int

const (
	RegionUnspecified Region = iota
	RegionAfrica
	RegionAmericas
	RegionAntarctic
	RegionAsia
	RegionEurope
	RegionOceania
)

var regionNames = map[Region]string{
	RegionUnspecified: "Unspecified",
	RegionAfrica:      "Africa",
	RegionAmericas:    "Americas",
	RegionAntarctic:   "Antarctic",
	RegionAsia:        "Asia",
	RegionEurope:      "Europe",
	RegionOceania:     "Oceania",
}

// String returns the canonical region name.
func (r Region) String() string {
	if name, ok := regionNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Region(%d)", int(r))
}

// ParseRegion parses a region name case-insensitively. The empty string maps
// to RegionUnspecified; any other unknown name is an error.
func ParseRegion(s string) (Region, error) {
	if s == "" {
		return RegionUnspecified, nil
	}
	for region, name := range regionNames {
		if strings.EqualFold(s, name) {
			return region, nil
		}
	}
	return RegionUnspecified, fmt.Errorf("unknown region %q", s)
}

// UnmarshalJSON decodes a region from its source text form.
func (r *Region) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		*r = RegionUnspecified
		return nil
	}
	region, err := ParseRegion(s)
	if err != nil {
		return err
	}
	*r = region
	return nil
}

// MarshalJSON encodes the canonical region name.
func (r Region) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}
