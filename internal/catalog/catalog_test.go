package catalog

import (
	"errors"
	"testing"

	"github.com/culturecoders/culturebot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedPicker int

func (p fixedPicker) IntN(n int) int { return int(p) % n }

func sampleFacts() []model.Fact {
	return []model.Fact{
		{Country: "Japan", Text: "Do not blow your nose in public.", Category: "etiquette", Source: "A"},
		{Country: "Japan", Text: "Exchange cards with both hands.", Category: "business", Source: "B"},
		{Country: "Brazil", Text: "Greet with a hug.", Category: "greeting", Source: "C"},
	}
}

func TestNew_RejectsEmpty(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = New([]model.Fact{})
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestNew_RejectsIncompleteRecord(t *testing.T) {
	facts := sampleFacts()
	facts[1].Source = "  "

	_, err := New(facts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompleteFact))
	assert.Contains(t, err.Error(), "record 1")
}

func TestNew_CopiesInput(t *testing.T) {
	facts := sampleFacts()
	c, err := New(facts)
	require.NoError(t, err)

	facts[0].Country = "Mutated"
	assert.Equal(t, "Japan", c.Records()[0].Country)

	records := c.Records()
	records[0].Country = "Mutated again"
	assert.Equal(t, "Japan", c.Records()[0].Country)
}

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 24, c.Len())
	for _, f := range c.Records() {
		assert.True(t, f.Complete(), "incomplete fact: %+v", f)
	}
	first := c.Records()[0]
	assert.Equal(t, "Japan", first.Country)
	assert.Equal(t, "etiquette", first.Category)
}

func TestByCountry_ExactCaseInsensitive(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	got := c.ByCountry("JAPAN")
	require.Len(t, got, 2)
	assert.Equal(t, "Japanese Cultural Studies", got[0].Source)

	// Exact match, not substring
	assert.Empty(t, c.ByCountry("Korea"))
	assert.Len(t, c.ByCountry("south korea"), 2)
	assert.NotNil(t, c.ByCountry("Atlantis"))
}

func TestByCategory(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	business := c.ByCategory("Business")
	require.Len(t, business, 4)
	countries := []string{}
	for _, f := range business {
		countries = append(countries, f.Country)
	}
	assert.Equal(t, []string{"Japan", "Germany", "China", "South Korea"}, countries)
}

func TestFilter(t *testing.T) {
	c, err := New(sampleFacts())
	require.NoError(t, err)

	tests := []struct {
		name     string
		country  string
		category string
		want     int
	}{
		{"no filter", "", "", 3},
		{"country", "japan", "", 2},
		{"category", "", "greeting", 1},
		{"country wins", "japan", "greeting", 2},
		{"unknown", "peru", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, c.Filter(tt.country, tt.category), tt.want)
		})
	}
}

func TestRandom_UsesPicker(t *testing.T) {
	c, err := New(sampleFacts())
	require.NoError(t, err)

	assert.Equal(t, "Brazil", c.Random(fixedPicker(2)).Country)
	assert.Equal(t, "Japan", c.Random(fixedPicker(0)).Country)

	// Default picker stays in range
	for i := 0; i < 50; i++ {
		assert.Contains(t, sampleFacts(), c.Random(nil))
	}
}

func TestCountriesCategoriesStats(t *testing.T) {
	c, err := New(sampleFacts())
	require.NoError(t, err)

	assert.Equal(t, []string{"Brazil", "Japan"}, c.Countries())
	assert.Equal(t, []string{"business", "etiquette", "greeting"}, c.Categories())
	assert.Equal(t, model.CatalogStats{Facts: 3, Countries: 2, Categories: 3}, c.Stats())
}
