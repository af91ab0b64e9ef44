package atlas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/paveg/atlas/internal/errors"
)

func TestAnyNameContains(t *testing.T) {
	exists, err := AnyNameContains(fixture(), "ISLAND")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = AnyNameContains(fixture(), "peninsula")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFirstNameContaining(t *testing.T) {
	name, err := FirstNameContaining(fixture(), "island")
	require.NoError(t, err)
	assert.Equal(t, "Bouvet Island", name)

	name, err = FirstNameContaining(fixture(), "arab")
	require.NoError(t, err)
	assert.Equal(t, "United Arab Emirates", name)

	name, err = FirstNameContaining(fixture(), "xyz")
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestNamesWithMatchingFirstAndLastLetter(t *testing.T) {
	names, err := NamesWithMatchingFirstAndLastLetter(fixture())
	require.NoError(t, err)
	// Albania: A...a under case folding
	assert.Equal(t, []string{"Albania"}, names)
}

func TestSingleWordNames(t *testing.T) {
	names, err := SingleWordNames(fixture())
	require.NoError(t, err)
	assert.Equal(t, []string{"Hungary", "Ecuador", "Norway", "Singapore", "Albania"}, names)
}

func TestNameWithMostWords(t *testing.T) {
	name, err := NameWithMostWords(fixture())
	require.NoError(t, err)
	assert.Equal(t, "United Arab Emirates", name)

	name, err = NameWithMostWords([]Country{})
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestAnyPalindromeCapital(t *testing.T) {
	exists, err := AnyPalindromeCapital(fixture())
	require.NoError(t, err)
	assert.False(t, exists)

	withAda := append(fixture(), Country{Name: "X", Code: "XX", Capital: "Ada"})
	exists, err = AnyPalindromeCapital(withAda)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAnyPalindromeCapitalSkipsAbsentCapitals(t *testing.T) {
	// an absent capital must not count as a trivial palindrome
	exists, err := AnyPalindromeCapital([]Country{{Name: "Bouvet Island", Code: "BV"}})
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNameWithMostOccurrencesOf(t *testing.T) {
	name, err := NameWithMostOccurrencesOf(fixture(), 'a')
	require.NoError(t, err)
	// "United Arab Emirates": A, a, a, e folded occurrences of 'a' = 3
	assert.Equal(t, "United Arab Emirates", name)

	_, err = NameWithMostOccurrencesOf(fixture(), '!')
	var qe *apperrors.QueryError
	assert.ErrorAs(t, err, &qe)
}

func TestCapitalWithMostVowels(t *testing.T) {
	capital, err := CapitalWithMostVowels([]Country{
		{Name: "Norway", Code: "NO", Capital: "Oslo"},
		{Name: "United Arab Emirates", Code: "AE", Capital: "Abu Dhabi"},
		{Name: "Ecuador", Code: "EC", Capital: "Quito"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Abu Dhabi", capital)
}

func TestLetterOccurrencesInNames(t *testing.T) {
	counts, err := LetterOccurrencesInNames([]Country{
		{Name: "Ada", Code: "AD"},
		{Name: "Dana", Code: "DN"},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, counts['a'])
	assert.Equal(t, 2, counts['d'])
	assert.Equal(t, 1, counts['n'])
	_, upper := counts['A']
	assert.False(t, upper)
}

func TestAverageNameLength(t *testing.T) {
	avg, err := AverageNameLength([]Country{
		{Name: "Oslo", Code: "NO"},
		{Name: "Quito", Code: "EC"},
	})
	require.NoError(t, err)
	assert.InDelta(t, 4.5, avg, 0.001)

	avg, err = AverageNameLength([]Country{})
	require.NoError(t, err)
	assert.Zero(t, avg)
}

func TestSortedNamesJoined(t *testing.T) {
	joined, err := SortedNamesJoined([]Country{
		{Name: "Norway", Code: "NO"},
		{Name: "Albania", Code: "AL"},
		{Name: "Ecuador", Code: "EC"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Albania,Ecuador,Norway", joined)
}
