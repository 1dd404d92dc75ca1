// Package compose renders the final answer around the matcher's candidates.
package compose

import (
	"fmt"
	"strings"

	"github.com/culturecoders/culturebot/internal/catalog"
	"github.com/culturecoders/culturebot/internal/model"
)

const (
	// MatchedConfidence is reported whenever at least one fact matched
	MatchedConfidence = 0.8

	// FallbackConfidence is reported for the random-fact fallback
	FallbackConfidence = 0.6

	// FallbackSource is the single source listed for a fallback answer
	FallbackSource = "Cultural Database"

	// FallbackCategory is the category of a fallback answer
	FallbackCategory = "general"

	// maxSources bounds the sources listed for a matched answer
	maxSources = 3
)

// Template identifies the sentence pattern wrapped around a fact
type Template string

const (
	TemplateGreeting Template = "greeting"
	TemplateBusiness Template = "business"
	TemplateFood     Template = "food"
	TemplateGeneric  Template = "generic"
	TemplateFallback Template = "fallback"
)

// Trigger substrings, checked in this order; the first hit wins
var triggers = []struct {
	words    []string
	template Template
}{
	{[]string{"greeting"}, TemplateGreeting},
	{[]string{"business"}, TemplateBusiness},
	{[]string{"food", "dining"}, TemplateFood},
}

// Composer turns matched facts into an answer.
// It is stateless apart from the read-only catalog and is safe for concurrent use
// as long as its picker is.
type Composer struct {
	catalog *catalog.Catalog
	picker  catalog.Picker
}

// New creates a composer drawing fallback facts from cat.
// A nil picker uses catalog.RandomPicker.
func New(cat *catalog.Catalog, picker catalog.Picker) *Composer {
	if picker == nil {
		picker = catalog.RandomPicker{}
	}
	return &Composer{
		catalog: cat,
		picker:  picker,
	}
}

// SelectTemplate picks the template for query by trigger priority
func SelectTemplate(query string) Template {
	q := strings.ToLower(query)
	for _, t := range triggers {
		for _, w := range t.words {
			if strings.Contains(q, w) {
				return t.template
			}
		}
	}
	return TemplateGeneric
}

// Compose builds the answer for query from matches, in match order
func (c *Composer) Compose(query string, matches []model.Fact) model.Answer {
	if len(matches) == 0 {
		return c.fallback()
	}

	primary := matches[0]
	text := render(SelectTemplate(query), primary)
	if len(matches) > 1 {
		text += fmt.Sprintf("\n\nAdditionally, it's worth noting that cultural practices can vary within %s, and these customs may differ between regions or generations.", primary.Country)
	}

	n := len(matches)
	if n > maxSources {
		n = maxSources
	}
	sources := make([]string, 0, n)
	for _, f := range matches[:n] {
		sources = append(sources, f.Source)
	}

	return model.Answer{
		Text:       text,
		Confidence: MatchedConfidence,
		Sources:    sources,
		Category:   primary.Category,
	}
}

func (c *Composer) fallback() model.Answer {
	fact := c.catalog.Random(c.picker)
	return model.Answer{
		Text:       render(TemplateFallback, fact),
		Confidence: FallbackConfidence,
		Sources:    []string{FallbackSource},
		Category:   FallbackCategory,
	}
}

// render interpolates the fact's country and text into the template
func render(t Template, f model.Fact) string {
	switch t {
	case TemplateGreeting:
		return fmt.Sprintf("Regarding greetings in %s: %s This reflects the cultural values of respect and social harmony that are important in %s.", f.Country, f.Text, f.Country)
	case TemplateBusiness:
		return fmt.Sprintf("For business practices in %s: %s Understanding these customs is crucial for successful professional relationships.", f.Country, f.Text)
	case TemplateFood:
		return fmt.Sprintf("About dining culture in %s: %s Food customs often reflect deeper cultural values and social structures.", f.Country, f.Text)
	case TemplateFallback:
		return fmt.Sprintf("While I don't have specific information about that topic, here's an interesting cultural fact about %s: %s Feel free to ask about specific countries or cultural practices!", f.Country, f.Text)
	default:
		return fmt.Sprintf("Here's an important cultural insight about %s: %s This practice is rooted in the cultural values and traditions of the region.", f.Country, f.Text)
	}
}
