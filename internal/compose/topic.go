package compose

import "strings"

// topics maps a topic to the words that signal it. Order is significant.
var topics = []struct {
	name     string
	keywords []string
}{
	{"greeting", []string{"greeting", "hello", "hi", "meet", "introduction"}},
	{"business", []string{"business", "work", "office", "meeting", "professional"}},
	{"food", []string{"food", "eat", "dining", "meal", "restaurant", "cuisine"}},
	{"etiquette", []string{"etiquette", "manners", "polite", "rude", "behavior"}},
	{"family", []string{"family", "parent", "child", "marriage", "wedding"}},
	{"religion", []string{"religion", "religious", "spiritual", "worship", "prayer"}},
	{"language", []string{"language", "speak", "communication", "translate"}},
	{"festival", []string{"festival", "celebration", "holiday", "ceremony"}},
}

// DetectTopic classifies a question by keyword substring, falling back to
// FallbackCategory. It labels answers that did not come from a template.
func DetectTopic(query string) string {
	q := strings.ToLower(query)
	for _, t := range topics {
		for _, kw := range t.keywords {
			if strings.Contains(q, kw) {
				return t.name
			}
		}
	}
	return FallbackCategory
}
