package atlas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/paveg/atlas/internal/errors"
)

func TestFirstNames(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected []string
	}{
		{"first two", 2, []string{"Hungary", "Ecuador"}},
		{"zero", 0, []string{}},
		{"n exceeds size", 50, []string{
			"Hungary", "Ecuador", "Norway", "United Arab Emirates",
			"Bouvet Island", "Singapore", "Albania",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names, err := FirstNames(fixture(), tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestNegativeCountRejected(t *testing.T) {
	var qe *apperrors.QueryError

	_, err := FirstNames(fixture(), -1)
	assert.ErrorAs(t, err, &qe)

	_, err = LeastPopulousNames(fixture(), -2)
	assert.ErrorAs(t, err, &qe)

	_, err = LeastPopulousPopulations(fixture(), -3)
	assert.ErrorAs(t, err, &qe)
}

func TestLeastPopulousPopulations(t *testing.T) {
	populations, err := LeastPopulousPopulations(fixture(), 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2_800_000, 5_300_000}, populations)

	// more than available returns everything
	populations, err = LeastPopulousPopulations(fixture(), 100)
	require.NoError(t, err)
	assert.Len(t, populations, 7)
}

func TestLeastPopulousNames(t *testing.T) {
	names, err := LeastPopulousNames(fixture(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bouvet Island", "Albania"}, names)
}

func TestSortByPopulationDescIsStable(t *testing.T) {
	countries := []Country{
		{Name: "A", Code: "AA", Population: 10},
		{Name: "B", Code: "BB", Population: 30},
		{Name: "C", Code: "CC", Population: 30},
	}

	sorted, err := SortByPopulationDesc(countries)
	require.NoError(t, err)

	names := make([]string, 0, len(sorted))
	for _, c := range sorted {
		names = append(names, c.Name)
	}
	// B before C: original order preserved among equal populations
	assert.Equal(t, []string{"B", "C", "A"}, names)

	// input untouched
	assert.Equal(t, "A", countries[0].Name)
}

func TestPopulationsInRegion(t *testing.T) {
	asc, err := PopulationsInRegionAsc(fixture(), RegionEurope)
	require.NoError(t, err)
	assert.Equal(t, []int64{2_800_000, 5_300_000, 9_700_000}, asc)

	desc, err := PopulationsInRegionDesc(fixture(), RegionEurope)
	require.NoError(t, err)
	assert.Equal(t, []int64{9_700_000, 5_300_000, 2_800_000}, desc)

	empty, err := PopulationsInRegionAsc(fixture(), RegionAfrica)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCapitalsAlphabetical(t *testing.T) {
	capitals, err := CapitalsAlphabetical([]Country{
		{Name: "Ecuador", Code: "EC", Capital: "Quito"},
		{Name: "Norway", Code: "NO", Capital: "Oslo"},
		{Name: "United Arab Emirates", Code: "AE", Capital: "Abu Dhabi"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Abu Dhabi", "Oslo", "Quito"}, capitals)
}

func TestCapitalsReverse(t *testing.T) {
	capitals, err := CapitalsReverse([]Country{
		{Name: "Ecuador", Code: "EC", Capital: "Quito"},
		{Name: "Norway", Code: "NO", Capital: "Oslo"},
		{Name: "United Arab Emirates", Code: "AE", Capital: "Abu Dhabi"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Quito", "Oslo", "Abu Dhabi"}, capitals)
}

func TestCapitalsExcludeAbsent(t *testing.T) {
	capitals, err := CapitalsAlphabetical(fixture())
	require.NoError(t, err)
	// Bouvet Island has no capital
	assert.Equal(t, []string{"Abu Dhabi", "Budapest", "Oslo", "Quito", "Singapore", "Tirana"}, capitals)
}

func TestCapitalsByLength(t *testing.T) {
	capitals, err := CapitalsByLength([]Country{
		{Name: "Ecuador", Code: "EC", Capital: "Quito"},
		{Name: "Norway", Code: "NO", Capital: "Oslo"},
		{Name: "United Arab Emirates", Code: "AE", Capital: "Abu Dhabi"},
	})
	require.NoError(t, err)
	// lengths 4, 5, 10
	assert.Equal(t, []string{"Oslo", "Quito", "Abu Dhabi"}, capitals)
}

func TestCapitalsByLengthThenAlpha(t *testing.T) {
	capitals, err := CapitalsByLengthThenAlpha([]Country{
		{Name: "A", Code: "AA", Capital: "Rome"},
		{Name: "B", Code: "BB", Capital: "Oslo"},
		{Name: "C", Code: "CC", Capital: "Quito"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Oslo", "Rome", "Quito"}, capitals)
}

func TestNamesByTimezoneCount(t *testing.T) {
	names, err := NamesByTimezoneCount([]Country{
		{Name: "Ecuador", Code: "EC", Timezones: []string{"America/Guayaquil", "Pacific/Galapagos"}},
		{Name: "Norway", Code: "NO", Timezones: []string{"Europe/Oslo"}},
		{Name: "X", Code: "XX", Timezones: []string{}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Norway", "Ecuador"}, names)
}

func TestTimezoneCountsFormatted(t *testing.T) {
	formatted, err := TimezoneCountsFormatted([]Country{
		{Name: "Ecuador", Code: "EC", Timezones: []string{"America/Guayaquil", "Pacific/Galapagos"}},
		{Name: "Norway", Code: "NO", Timezones: []string{"Europe/Oslo"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Norway:1", "Ecuador:2"}, formatted)
}
