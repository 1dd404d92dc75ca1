package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProfiles(t *testing.T) {
	dir, err := LoadProfiles()
	require.NoError(t, err)

	assert.Equal(t, []string{"Brazil", "China", "France", "Germany", "India", "Japan"}, dir.Countries())

	japan, err := dir.Profile("japan")
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", japan.Capital)
	assert.Len(t, japan.Festivals, 4)
	assert.Contains(t, japan.Food.PopularDishes, "Sushi")
}

func TestProfile_NotFound(t *testing.T) {
	dir, err := LoadProfiles()
	require.NoError(t, err)

	_, err = dir.Profile("Atlantis")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestFestivalsBySeason(t *testing.T) {
	dir, err := LoadProfiles()
	require.NoError(t, err)

	autumn := dir.FestivalsBySeason("AUTUMN")
	require.NotEmpty(t, autumn)
	for _, f := range autumn {
		assert.Contains(t, f.Season, "Autumn")
		assert.NotEmpty(t, f.Country)
	}

	assert.Empty(t, dir.FestivalsBySeason("monsoon"))
}

func TestLocationsByType(t *testing.T) {
	dir, err := LoadProfiles()
	require.NoError(t, err)

	wonders := dir.LocationsByType("natural wonder")
	require.Len(t, wonders, 3)
	assert.Equal(t, "Mount Fuji", wonders[0].Name)
	assert.Equal(t, "Japan", wonders[0].Country)
}

func TestParseProfiles_Errors(t *testing.T) {
	_, err := ParseProfiles([]byte("profiles: [ {country: ''} ]"))
	assert.Error(t, err)

	_, err = ParseProfiles([]byte("profiles:\n  - country: A\n  - country: a\n"))
	assert.ErrorContains(t, err, "duplicate")

	_, err = ParseProfiles([]byte("profiles: {"))
	assert.Error(t, err)
}
