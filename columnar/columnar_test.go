package columnar

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paveg/atlas"
	apperrors "github.com/paveg/atlas/internal/errors"
)

func ptr(f float64) *float64 { return &f }

func TestFromCountries(t *testing.T) {
	mem := memory.NewGoAllocator()
	countries := []atlas.Country{
		{
			Name: "Hungary", Code: "HU", Capital: "Budapest",
			Population: 9_700_000, Area: ptr(93_030), Region: atlas.RegionEurope,
			Independent: true, Timezones: []string{"Europe/Budapest"},
		},
		{
			Name: "Bouvet Island", Code: "BV",
			Population: 0, Area: nil, Region: atlas.RegionAntarctic,
			Timezones: []string{"Europe/Oslo"},
		},
	}

	record, err := FromCountries(countries, mem)
	require.NoError(t, err)
	defer record.Release()

	assert.Equal(t, int64(2), record.NumRows())
	assert.Equal(t, int64(8), record.NumCols())
	assert.True(t, record.Schema().Equal(Schema))

	names := record.Column(0).(*array.String)
	assert.Equal(t, "Hungary", names.Value(0))
	assert.Equal(t, "Bouvet Island", names.Value(1))

	regions := record.Column(3).(*array.String)
	assert.Equal(t, "Europe", regions.Value(0))
	assert.Equal(t, "Antarctic", regions.Value(1))

	populations := record.Column(4).(*array.Int64)
	assert.Equal(t, int64(9_700_000), populations.Value(0))
}

func TestFromCountriesAbsentFieldsBecomeNulls(t *testing.T) {
	countries := []atlas.Country{
		{Name: "Bouvet Island", Code: "BV", Region: atlas.RegionAntarctic},
	}

	record, err := FromCountries(countries, memory.NewGoAllocator())
	require.NoError(t, err)
	defer record.Release()

	capitals := record.Column(2).(*array.String)
	assert.True(t, capitals.IsNull(0))

	areas := record.Column(5).(*array.Float64)
	assert.True(t, areas.IsNull(0))
}

func TestFromCountriesEmptyCollection(t *testing.T) {
	record, err := FromCountries([]atlas.Country{}, memory.NewGoAllocator())
	require.NoError(t, err)
	defer record.Release()

	assert.Zero(t, record.NumRows())
}

func TestFromCountriesNilCollection(t *testing.T) {
	_, err := FromCountries(nil, memory.NewGoAllocator())

	var qe *apperrors.QueryError
	assert.ErrorAs(t, err, &qe)
}
