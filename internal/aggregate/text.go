package aggregate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ContainsFold reports whether s contains substr under case folding.
// Both operands are folded transiently; no folded copy of the source
// record is ever retained.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// HasPrefixFold reports whether s starts with prefix under case folding.
// Comparison walks runes, not bytes, so multibyte letters in either
// operand never split.
func HasPrefixFold(s, prefix string) bool {
	for _, pr := range prefix {
		sr, size := utf8.DecodeRuneInString(s)
		if size == 0 || unicode.ToLower(sr) != unicode.ToLower(pr) {
			return false
		}
		s = s[size:]
	}
	return true
}

// EqualFold reports case-insensitive equality.
func EqualFold(a, b string) bool {
	return strings.EqualFold(a, b)
}

// IsPalindrome reports whether s reads the same forwards and backwards after
// case folding. Strings of length 0 or 1 are trivially palindromic.
func IsPalindrome(s string) bool {
	runes := []rune(strings.ToLower(s))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

// CountRuneFold returns the number of occurrences of r in s, ignoring case.
func CountRuneFold(s string, r rune) int {
	target := unicode.ToLower(r)
	count := 0
	for _, c := range s {
		if unicode.ToLower(c) == target {
			count++
		}
	}
	return count
}

// CountVowels returns the number of English vowels in s, ignoring case.
func CountVowels(s string) int {
	count := 0
	for _, c := range s {
		switch unicode.ToLower(c) {
		case 'a', 'e', 'i', 'o', 'u':
			count++
		}
	}
	return count
}

// WordCount returns the number of words in s, where words are separated by
// runs of whitespace.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// FirstRune returns the first rune of s. ok is false for an empty string.
func FirstRune(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}

// LastRune returns the last rune of s. ok is false for an empty string.
func LastRune(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return r, true
}
