package atlas

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/goccy/go-json"

	"github.com/paveg/atlas/internal/errors"
)

// DecodeCountries decodes a JSON array of country records and validates the
// schema invariants: non-empty name, unique two-letter code, non-negative
// population, non-negative area when present, two-letter translation keys
// with no case-fold collisions. Multi-valued fields decode to
// empty (never nil) containers. Any violation is a load error; the engine
// never works with a partially valid collection.
func DecodeCountries(data []byte) ([]Country, error) {
	var countries []Country
	if err := json.Unmarshal(data, &countries); err != nil {
		return nil, errors.NewLoadError("", "malformed country document", err)
	}
	if countries == nil {
		// A bare "null" unmarshals without error but carries no array.
		return nil, errors.NewLoadError("", "malformed country document",
			fmt.Errorf("document is not a JSON array"))
	}

	codes := make(map[string]struct{}, len(countries))
	for i := range countries {
		c := &countries[i]
		if err := validateCountry(c); err != nil {
			return nil, errors.NewLoadError("", fmt.Sprintf("record %d invalid", i), err)
		}
		if _, dup := codes[c.Code]; dup {
			return nil, errors.NewLoadError("", fmt.Sprintf("record %d invalid", i),
				fmt.Errorf("duplicate country code %q", c.Code))
		}
		codes[c.Code] = struct{}{}

		if c.Timezones == nil {
			c.Timezones = []string{}
		}
		if c.Currencies == nil {
			c.Currencies = []Currency{}
		}
		if c.Translations == nil {
			c.Translations = map[string]string{}
		}
	}
	return countries, nil
}

func validateCountry(c *Country) error {
	if c.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if !isTwoLetterCode(c.Code) {
		return fmt.Errorf("code %q must be two letters", c.Code)
	}
	if c.Population < 0 {
		return fmt.Errorf("population %d must not be negative", c.Population)
	}
	if c.Area != nil && *c.Area < 0 {
		return fmt.Errorf("area %v must not be negative", *c.Area)
	}
	seen := make(map[string]string, len(c.Translations))
	for code, translation := range c.Translations {
		if !isTwoLetterCode(code) {
			return fmt.Errorf("translation key %q must be a two-letter language code", code)
		}
		if translation == "" {
			return fmt.Errorf("translation for %q must not be empty", code)
		}
		folded := strings.ToLower(code)
		if prev, dup := seen[folded]; dup {
			return fmt.Errorf("translation keys %q and %q collide under case folding", prev, code)
		}
		seen[folded] = code
	}
	return nil
}

func isTwoLetterCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
