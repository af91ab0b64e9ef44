package atlas

import (
	"strings"
	"unicode"

	"github.com/paveg/atlas/internal/aggregate"
	"github.com/paveg/atlas/internal/errors"
)

// Text-analysis queries. All matching is case-insensitive; the two-letter
// country code is the one field that compares case-sensitively. Optional
// string results report absence as the empty string, which is unambiguous
// because country names and present capitals are never empty.

// AnyNameContains reports whether at least one country name contains the
// given word, ignoring case.
func AnyNameContains(countries []Country, word string) (bool, error) {
	if err := requireCollection("AnyNameContains", countries); err != nil {
		return false, err
	}
	for _, c := range countries {
		if aggregate.ContainsFold(c.Name, word) {
			return true, nil
		}
	}
	return false, nil
}

// FirstNameContaining returns the first country name, in input order, that
// contains the given word ignoring case, or the empty string when none does.
func FirstNameContaining(countries []Country, word string) (string, error) {
	if err := requireCollection("FirstNameContaining", countries); err != nil {
		return "", err
	}
	for _, c := range countries {
		if aggregate.ContainsFold(c.Name, word) {
			return c.Name, nil
		}
	}
	return "", nil
}

// NamesWithMatchingFirstAndLastLetter returns the country names whose first
// and last letters are the same, ignoring case.
func NamesWithMatchingFirstAndLastLetter(countries []Country) ([]string, error) {
	if err := requireCollection("NamesWithMatchingFirstAndLastLetter", countries); err != nil {
		return nil, err
	}
	result := make([]string, 0)
	for _, c := range countries {
		first, ok := aggregate.FirstRune(c.Name)
		if !ok {
			continue
		}
		last, _ := aggregate.LastRune(c.Name)
		if unicode.ToLower(first) == unicode.ToLower(last) {
			result = append(result, c.Name)
		}
	}
	return result, nil
}

// SingleWordNames returns the country names that contain no space character.
func SingleWordNames(countries []Country) ([]string, error) {
	if err := requireCollection("SingleWordNames", countries); err != nil {
		return nil, err
	}
	result := make([]string, 0)
	for _, c := range countries {
		if !strings.Contains(c.Name, " ") {
			result = append(result, c.Name)
		}
	}
	return result, nil
}

// NameWithMostWords returns the country name with the most words, words
// being separated by whitespace runs. Ties resolve to the first record in
// input order; the result is empty for an empty collection.
func NameWithMostWords(countries []Country) (string, error) {
	if err := requireCollection("NameWithMostWords", countries); err != nil {
		return "", err
	}
	best, ok := aggregate.MaxBy(countries,
		aggregate.By(func(c Country) int { return aggregate.WordCount(c.Name) }),
	)
	if !ok {
		return "", nil
	}
	return best.Name, nil
}

// AnyPalindromeCapital reports whether at least one present capital reads
// the same forwards and backwards, ignoring case.
func AnyPalindromeCapital(countries []Country) (bool, error) {
	if err := requireCollection("AnyPalindromeCapital", countries); err != nil {
		return false, err
	}
	for _, c := range countries {
		if c.HasCapital() && aggregate.IsPalindrome(c.Capital) {
			return true, nil
		}
	}
	return false, nil
}

// NameWithMostOccurrencesOf returns the country name with the most
// occurrences of the given letter, ignoring case. Ties resolve to the first
// record in input order.
func NameWithMostOccurrencesOf(countries []Country, letter rune) (string, error) {
	if err := requireCollection("NameWithMostOccurrencesOf", countries); err != nil {
		return "", err
	}
	if !unicode.IsLetter(letter) {
		return "", errors.NewInvalidInputError("NameWithMostOccurrencesOf", string(letter), "must be a letter")
	}
	best, ok := aggregate.MaxBy(countries,
		aggregate.By(func(c Country) int { return aggregate.CountRuneFold(c.Name, letter) }),
	)
	if !ok {
		return "", nil
	}
	return best.Name, nil
}

// CapitalWithMostVowels returns the present capital with the most English
// vowels, ties resolving to the first record in input order.
func CapitalWithMostVowels(countries []Country) (string, error) {
	if err := requireCollection("CapitalWithMostVowels", countries); err != nil {
		return "", err
	}
	best, ok := aggregate.MaxBy(capitals(countries),
		aggregate.By(aggregate.CountVowels),
	)
	if !ok {
		return "", nil
	}
	return best, nil
}

// LetterOccurrencesInNames returns, for each character occurring in any
// country name, its total number of occurrences across all names, folded to
// lower case.
func LetterOccurrencesInNames(countries []Country) (map[rune]int, error) {
	if err := requireCollection("LetterOccurrencesInNames", countries); err != nil {
		return nil, err
	}
	counts := make(map[rune]int)
	for _, c := range countries {
		for _, r := range c.Name {
			counts[unicode.ToLower(r)]++
		}
	}
	return counts, nil
}

// AverageNameLength returns the mean country name length in runes, or zero
// for an empty collection.
func AverageNameLength(countries []Country) (float64, error) {
	if err := requireCollection("AverageNameLength", countries); err != nil {
		return 0, err
	}
	s := aggregate.Summarize(countries, func(c Country) (int, bool) {
		return len([]rune(c.Name)), true
	})
	mean, ok := s.Mean()
	if !ok {
		return 0, nil
	}
	return mean, nil
}

// SortedNamesJoined returns all country names sorted alphabetically and
// joined with commas.
func SortedNamesJoined(countries []Country) (string, error) {
	if err := requireCollection("SortedNamesJoined", countries); err != nil {
		return "", err
	}
	sorted := aggregate.SortBy(names(countries),
		aggregate.By(func(s string) string { return s }),
	)
	return strings.Join(sorted, ","), nil
}
