package atlas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegion(t *testing.T) {
	tests := []struct {
		input    string
		expected Region
		wantErr  bool
	}{
		{"Europe", RegionEurope, false},
		{"europe", RegionEurope, false},
		{"AMERICAS", RegionAmericas, false},
		{"Antarctic", RegionAntarctic, false},
		{"", RegionUnspecified, false},
		{"Atlantis", RegionUnspecified, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			region, err := ParseRegion(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, region)
		})
	}
}

func TestRegionString(t *testing.T) {
	assert.Equal(t, "Europe", RegionEurope.String())
	assert.Equal(t, "Unspecified", RegionUnspecified.String())
	assert.Equal(t, "Region(42)", Region(42).String())
}

func TestRegionJSONRoundTrip(t *testing.T) {
	data, err := RegionOceania.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"Oceania"`, string(data))

	var region Region
	require.NoError(t, region.UnmarshalJSON(data))
	assert.Equal(t, RegionOceania, region)
}

func TestRegionUnmarshalNull(t *testing.T) {
	var region Region
	require.NoError(t, region.UnmarshalJSON([]byte(`null`)))
	assert.Equal(t, RegionUnspecified, region)
}
