package atlas

import "strings"

// Country is one immutable record in the analyzed collection. Records are
// constructed once at load time and never mutated afterwards; fields are
// present or absent exactly as found upstream.
type Country struct {
	// Name is the common country name. Never empty.
	Name string `json:"name"`
	// Code is the two-letter country code, unique across the collection and
	// case-preserving. Code comparisons are case-sensitive.
	Code string `json:"code"`
	// Capital is the capital city name; the empty string means the country
	// has no capital in the source data.
	Capital string `json:"capital,omitempty"`
	// Population is the head count. Never negative.
	Population int64 `json:"population"`
	// Area is the surface area in square kilometers. Absence (nil) is a
	// first-class, queryable state distinct from zero.
	Area *float64 `json:"area"`
	// Region is the geographic region, RegionUnspecified when the source
	// carries none.
	Region Region `json:"region"`
	// Independent reports sovereign status.
	Independent bool `json:"independent"`
	// Timezones lists the zone identifiers in source order. May be empty,
	// never nil after decoding. The order is not semantically meaningful.
	Timezones []string `json:"timezones"`
	// Currencies lists the currencies in use. May be empty, never nil after
	// decoding.
	Currencies []Currency `json:"currencies"`
	// Translations maps two-letter language codes to the translated country
	// name. May be empty, never nil after decoding; a present key never maps
	// to an empty value.
	Translations map[string]string `json:"translations"`
}

// Currency describes one currency accepted in a country.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

// HasArea reports whether the record carries a surface area.
func (c Country) HasArea() bool {
	return c.Area != nil
}

// AreaValue returns the surface area. ok is false when the area is absent.
func (c Country) AreaValue() (float64, bool) {
	if c.Area == nil {
		return 0, false
	}
	return *c.Area, true
}

// HasCapital reports whether the record carries a capital city.
func (c Country) HasCapital() bool {
	return c.Capital != ""
}

// Translation returns the country name translated into the given language.
// The language code is matched case-insensitively; ok is false when the
// record has no translation for it.
func (c Country) Translation(languageCode string) (string, bool) {
	if v, ok := c.Translations[languageCode]; ok {
		return v, true
	}
	for code, v := range c.Translations {
		if strings.EqualFold(code, languageCode) {
			return v, true
		}
	}
	return "", false
}
