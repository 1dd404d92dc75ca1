// Package catalog holds the immutable table of cultural facts and the
// country profile directory.
package catalog

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/culturecoders/culturebot/internal/model"
)

var (
	// ErrEmptyCatalog is returned when a catalog would hold no facts
	ErrEmptyCatalog = errors.New("catalog has no facts")

	// ErrIncompleteFact is returned when a fact is missing a field
	ErrIncompleteFact = errors.New("fact is missing a required field")
)

// Picker chooses an index in [0, n). Implementations must accept any n > 0.
type Picker interface {
	IntN(n int) int
}

// RandomPicker draws uniformly from the shared math/rand/v2 source.
// It is safe for concurrent use.
type RandomPicker struct{}

// IntN returns a uniform index in [0, n)
func (RandomPicker) IntN(n int) int {
	return rand.IntN(n)
}

// Catalog is an ordered, read-only collection of facts.
// It is built once and shared; nothing mutates it after New returns.
type Catalog struct {
	facts []model.Fact
}

// New validates the records and freezes them into a catalog
func New(records []model.Fact) (*Catalog, error) {
	if len(records) == 0 {
		return nil, ErrEmptyCatalog
	}

	facts := make([]model.Fact, len(records))
	for i, f := range records {
		if !f.Complete() {
			return nil, fmt.Errorf("record %d (%q): %w", i, f.Country, ErrIncompleteFact)
		}
		facts[i] = f
	}

	return &Catalog{facts: facts}, nil
}

// Default builds the catalog from the built-in fact table
func Default() (*Catalog, error) {
	return New(defaultFacts())
}

// Len returns the number of facts
func (c *Catalog) Len() int {
	return len(c.facts)
}

// Records returns a copy of all facts in insertion order
func (c *Catalog) Records() []model.Fact {
	out := make([]model.Fact, len(c.facts))
	copy(out, c.facts)
	return out
}

// ByCountry returns the facts whose country equals name, ignoring case
func (c *Catalog) ByCountry(name string) []model.Fact {
	return c.where(func(f model.Fact) bool {
		return strings.EqualFold(f.Country, name)
	})
}

// ByCategory returns the facts whose category equals name, ignoring case
func (c *Catalog) ByCategory(name string) []model.Fact {
	return c.where(func(f model.Fact) bool {
		return strings.EqualFold(f.Category, name)
	})
}

// Filter applies the explorer filters: a country wins over a category,
// and no filter at all returns every fact.
func (c *Catalog) Filter(country, category string) []model.Fact {
	switch {
	case country != "":
		return c.ByCountry(country)
	case category != "":
		return c.ByCategory(category)
	default:
		return c.Records()
	}
}

// Random picks one fact using p
func (c *Catalog) Random(p Picker) model.Fact {
	if p == nil {
		p = RandomPicker{}
	}
	return c.facts[p.IntN(len(c.facts))]
}

// Countries returns the distinct countries, sorted
func (c *Catalog) Countries() []string {
	return distinct(c.facts, func(f model.Fact) string { return f.Country })
}

// Categories returns the distinct categories, sorted
func (c *Catalog) Categories() []string {
	return distinct(c.facts, func(f model.Fact) string { return f.Category })
}

// Stats returns fact, country and category counts
func (c *Catalog) Stats() model.CatalogStats {
	return model.CatalogStats{
		Facts:      len(c.facts),
		Countries:  len(c.Countries()),
		Categories: len(c.Categories()),
	}
}

func (c *Catalog) where(keep func(model.Fact) bool) []model.Fact {
	out := make([]model.Fact, 0)
	for _, f := range c.facts {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}

func distinct(facts []model.Fact, key func(model.Fact) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, f := range facts {
		k := key(f)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
