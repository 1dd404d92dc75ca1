package compose

import (
	"strings"
	"testing"

	"github.com/culturecoders/culturebot/internal/catalog"
	"github.com/culturecoders/culturebot/internal/match"
	"github.com/culturecoders/culturebot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedPicker int

func (p fixedPicker) IntN(n int) int { return int(p) % n }

var (
	noseFact = model.Fact{
		Country:  "Japan",
		Text:     "In Japan, it's considered rude to blow your nose in public.",
		Category: "etiquette",
		Source:   "X",
	}
	cardFact = model.Fact{
		Country:  "Japan",
		Text:     "Business cards are exchanged with both hands.",
		Category: "business",
		Source:   "Y",
	}
	hugFact = model.Fact{
		Country:  "Brazil",
		Text:     "Brazilians hug when greeting.",
		Category: "greeting",
		Source:   "Z",
	}
	coffeeFact = model.Fact{
		Country:  "Italy",
		Text:     "Cappuccino is a morning drink.",
		Category: "food",
		Source:   "W",
	}
)

func newComposer(t *testing.T, p catalog.Picker) (*Composer, *catalog.Catalog) {
	t.Helper()
	cat, err := catalog.New([]model.Fact{noseFact, cardFact, hugFact, coffeeFact})
	require.NoError(t, err)
	return New(cat, p), cat
}

func TestSelectTemplate(t *testing.T) {
	tests := []struct {
		query string
		want  Template
	}{
		{"Tell me about Japan", TemplateGeneric},
		{"greeting customs in Japan", TemplateGreeting},
		{"GREETING and business in Japan", TemplateGreeting},
		{"business dinner food", TemplateBusiness},
		{"food in France", TemplateFood},
		{"Fine dining etiquette", TemplateFood},
		{"greetings!", TemplateGreeting},
		{"", TemplateGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectTemplate(tt.query))
		})
	}
}

func TestCompose_CountryMatch(t *testing.T) {
	c, cat := newComposer(t, fixedPicker(0))

	matches := match.Match("Tell me about Japan", cat.Records())
	require.NotEmpty(t, matches)
	assert.Equal(t, noseFact, matches[0])

	answer := c.Compose("Tell me about Japan", matches)
	assert.Equal(t, MatchedConfidence, answer.Confidence)
	assert.Equal(t, "etiquette", answer.Category)
	assert.Equal(t, []string{"X", "Y"}, answer.Sources)
	assert.True(t, strings.HasPrefix(answer.Text, "Here's an important cultural insight about Japan: In Japan, it's considered rude"))
	assert.Contains(t, answer.Text, "\n\nAdditionally, it's worth noting that cultural practices can vary within Japan")
}

func TestCompose_GreetingBeatsGeneric(t *testing.T) {
	c, cat := newComposer(t, nil)

	query := "What is the greeting etiquette in Japan?"
	answer := c.Compose(query, match.Match(query, cat.Records()))

	assert.Equal(t, "Regarding greetings in Japan: In Japan, it's considered rude to blow your nose in public. This reflects the cultural values of respect and social harmony that are important in Japan.\n\nAdditionally, it's worth noting that cultural practices can vary within Japan, and these customs may differ between regions or generations.", answer.Text)
}

func TestCompose_Templates(t *testing.T) {
	c, _ := newComposer(t, nil)

	tests := []struct {
		name  string
		query string
		fact  model.Fact
		want  string
	}{
		{
			name:  "business",
			query: "business tips",
			fact:  cardFact,
			want:  "For business practices in Japan: Business cards are exchanged with both hands. Understanding these customs is crucial for successful professional relationships.",
		},
		{
			name:  "food",
			query: "dining in Italy",
			fact:  coffeeFact,
			want:  "About dining culture in Italy: Cappuccino is a morning drink. Food customs often reflect deeper cultural values and social structures.",
		},
		{
			name:  "generic",
			query: "Brazil",
			fact:  hugFact,
			want:  "Here's an important cultural insight about Brazil: Brazilians hug when greeting. This practice is rooted in the cultural values and traditions of the region.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer := c.Compose(tt.query, []model.Fact{tt.fact})
			assert.Equal(t, tt.want, answer.Text)
			assert.Equal(t, []string{tt.fact.Source}, answer.Sources)
			assert.Equal(t, tt.fact.Category, answer.Category)
		})
	}
}

func TestCompose_SourcesCappedAtThree(t *testing.T) {
	c, _ := newComposer(t, nil)

	answer := c.Compose("anything", []model.Fact{noseFact, cardFact, hugFact, coffeeFact})
	assert.Equal(t, []string{"X", "Y", "Z"}, answer.Sources)
	assert.Equal(t, "etiquette", answer.Category)
}

func TestCompose_FallbackWithoutMatches(t *testing.T) {
	c, cat := newComposer(t, fixedPicker(2))

	matches := match.Match("xyzzy nonsense", cat.Records())
	require.Empty(t, matches)

	answer := c.Compose("xyzzy nonsense", matches)
	assert.Equal(t, FallbackConfidence, answer.Confidence)
	assert.Equal(t, []string{FallbackSource}, answer.Sources)
	assert.Equal(t, FallbackCategory, answer.Category)
	assert.Equal(t, "While I don't have specific information about that topic, here's an interesting cultural fact about Brazil: Brazilians hug when greeting. Feel free to ask about specific countries or cultural practices!", answer.Text)
}

func TestCompose_FallbackDefaultPicker(t *testing.T) {
	c, _ := newComposer(t, nil)

	for i := 0; i < 20; i++ {
		answer := c.Compose("", nil)
		assert.NotEmpty(t, answer.Text)
		assert.Equal(t, FallbackConfidence, answer.Confidence)
	}
}

func TestCompose_Deterministic(t *testing.T) {
	c, cat := newComposer(t, nil)

	query := "food culture in Italy"
	first := c.Compose(query, match.Match(query, cat.Records()))
	second := c.Compose(query, match.Match(query, cat.Records()))
	assert.Equal(t, first, second)
}

func TestDetectTopic(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"Hello from Peru", "greeting"},
		{"office culture", "business"},
		{"What should I eat in Peru?", "food"},
		{"Is it rude to tip?", "etiquette"},
		{"wedding traditions", "family"},
		{"prayer times", "religion"},
		{"Do they speak English?", "language"},
		{"New Year celebration", "festival"},
		{"xyzzy", "general"},
		// "hi" inside "which" is a greeting hit
		{"which gods", "greeting"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectTopic(tt.query))
		})
	}
}
