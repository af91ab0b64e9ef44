package atlas

import (
	"sort"
	"unicode/utf8"

	"github.com/paveg/atlas/internal/aggregate"
	"github.com/paveg/atlas/internal/errors"
)

// Translation queries. Language codes are matched case-insensitively;
// translation values are returned unmodified. A country lacking a
// translation never causes an error: it is either skipped or counted as
// missing, depending on the query.

// LongestTranslation returns the longest translated country name across all
// languages. Translations are visited per country in language-code order, so
// ties resolve deterministically to the first qualifying value.
func LongestTranslation(countries []Country) (string, error) {
	if err := requireCollection("LongestTranslation", countries); err != nil {
		return "", err
	}
	longest, _ := longestTranslation(countries)
	return longest, nil
}

// LongestTranslationWithLanguage returns the longest translated country name
// together with its language code, in the form "language=translation".
func LongestTranslationWithLanguage(countries []Country) (string, error) {
	if err := requireCollection("LongestTranslationWithLanguage", countries); err != nil {
		return "", err
	}
	longest, language := longestTranslation(countries)
	if longest == "" {
		return "", nil
	}
	return language + "=" + longest, nil
}

// LongestTranslationIn returns the longest translated country name in the
// given language, or the empty string when no country carries one.
func LongestTranslationIn(countries []Country, languageCode string) (string, error) {
	if err := requireCollection("LongestTranslationIn", countries); err != nil {
		return "", err
	}
	if err := requireLanguageCode("LongestTranslationIn", languageCode); err != nil {
		return "", err
	}
	longest := ""
	for _, c := range countries {
		if t, ok := c.Translation(languageCode); ok &&
			utf8.RuneCountInString(t) > utf8.RuneCountInString(longest) {
			longest = t
		}
	}
	return longest, nil
}

// CountMissingTranslation returns the number of countries lacking a
// translation in the given language.
func CountMissingTranslation(countries []Country, languageCode string) (int, error) {
	if err := requireCollection("CountMissingTranslation", countries); err != nil {
		return 0, err
	}
	if err := requireLanguageCode("CountMissingTranslation", languageCode); err != nil {
		return 0, err
	}
	missing := 0
	for _, c := range countries {
		if _, ok := c.Translation(languageCode); !ok {
			missing++
		}
	}
	return missing, nil
}

// TranslationsByCode returns the translated country name in the given
// language keyed by country code. Countries lacking the translation are
// omitted from the mapping.
func TranslationsByCode(countries []Country, languageCode string) (map[string]string, error) {
	if err := requireCollection("TranslationsByCode", countries); err != nil {
		return nil, err
	}
	if err := requireLanguageCode("TranslationsByCode", languageCode); err != nil {
		return nil, err
	}
	result := make(map[string]string)
	for _, c := range countries {
		if t, ok := c.Translation(languageCode); ok {
			result[c.Code] = t
		}
	}
	return result, nil
}

// LanguageTags returns the distinct language codes appearing in any
// country's translations, sorted alphabetically.
func LanguageTags(countries []Country) ([]string, error) {
	if err := requireCollection("LanguageTags", countries); err != nil {
		return nil, err
	}
	tags := make([]string, 0)
	for _, c := range countries {
		for code := range c.Translations {
			tags = append(tags, code)
		}
	}
	distinct := aggregate.Distinct(tags)
	sort.Strings(distinct)
	return distinct, nil
}

// TranslationCountSummary returns summary statistics over the number of
// translations carried by each country.
func TranslationCountSummary(countries []Country) (IntSummary, error) {
	if err := requireCollection("TranslationCountSummary", countries); err != nil {
		return IntSummary{}, err
	}
	return aggregate.Summarize(countries, func(c Country) (int, bool) {
		return len(c.Translations), true
	}), nil
}

func longestTranslation(countries []Country) (translation, language string) {
	for _, c := range countries {
		codes := make([]string, 0, len(c.Translations))
		for code := range c.Translations {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			t := c.Translations[code]
			if utf8.RuneCountInString(t) > utf8.RuneCountInString(translation) {
				translation = t
				language = code
			}
		}
	}
	return translation, language
}

func requireLanguageCode(op, languageCode string) error {
	if !isTwoLetterCode(languageCode) {
		return errors.NewInvalidInputError(op, languageCode, "must be a two-letter language code")
	}
	return nil
}
