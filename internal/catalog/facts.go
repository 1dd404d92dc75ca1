package catalog

import "github.com/culturecoders/culturebot/internal/model"

// defaultFacts is the built-in fact table, in presentation order.
// Order matters: matching returns facts in this order within a tier.
func defaultFacts() []model.Fact {
	return []model.Fact{
		{
			Country:  "Japan",
			Text:     "In Japan, it's considered rude to blow your nose in public. People excuse themselves to do it privately.",
			Category: "etiquette",
			Source:   "Japanese Cultural Studies",
		},
		{
			Country:  "Japan",
			Text:     "Japanese business cards (meishi) are exchanged with both hands and should be received with respect and careful examination.",
			Category: "business",
			Source:   "Japanese Business Etiquette Guide",
		},
		{
			Country:  "India",
			Text:     "India has 22 official languages and over 1,600 spoken languages, making it one of the most linguistically diverse countries.",
			Category: "language",
			Source:   "Indian Linguistic Survey",
		},
		{
			Country:  "India",
			Text:     "In Indian culture, touching someone's feet is a sign of respect, especially for elders and teachers.",
			Category: "greeting",
			Source:   "Indian Cultural Traditions",
		},
		{
			Country:  "Brazil",
			Text:     "Brazilians typically hug and kiss on the cheek when greeting, even in business settings.",
			Category: "greeting",
			Source:   "Brazilian Social Customs",
		},
		{
			Country:  "Brazil",
			Text:     "In Brazil, the 'OK' hand gesture is considered offensive, similar to giving someone the middle finger.",
			Category: "etiquette",
			Source:   "Brazilian Cultural Guide",
		},
		{
			Country:  "Germany",
			Text:     "Germans value punctuality so much that being late is considered very disrespectful, even by a few minutes.",
			Category: "business",
			Source:   "German Business Culture",
		},
		{
			Country:  "Germany",
			Text:     "In Germany, it's customary to maintain eye contact during toasts and say 'Prost' or 'Zum Wohl'.",
			Category: "food",
			Source:   "German Dining Etiquette",
		},
		{
			Country:  "China",
			Text:     "In Chinese culture, the number 8 is considered extremely lucky because it sounds like the word for 'prosperity'.",
			Category: "beliefs",
			Source:   "Chinese Numerology Studies",
		},
		{
			Country:  "China",
			Text:     "When receiving a business card in China, accept it with both hands and take a moment to read it carefully.",
			Category: "business",
			Source:   "Chinese Business Etiquette",
		},
		{
			Country:  "France",
			Text:     "French people typically don't eat meals while walking or standing - dining is seen as a social ritual to be savored.",
			Category: "food",
			Source:   "French Culinary Culture",
		},
		{
			Country:  "France",
			Text:     "In France, it's polite to greet shopkeepers with 'Bonjour' when entering and 'Au revoir' when leaving.",
			Category: "etiquette",
			Source:   "French Social Customs",
		},
		{
			Country:  "South Korea",
			Text:     "In Korea, you should use both hands when giving or receiving business cards as a sign of respect.",
			Category: "business",
			Source:   "Korean Business Protocol",
		},
		{
			Country:  "South Korea",
			Text:     "Korean age calculation includes the time spent in the womb, so Koreans are typically 1-2 years older in 'Korean age'.",
			Category: "general",
			Source:   "Korean Cultural Practices",
		},
		{
			Country:  "Mexico",
			Text:     "Mexican families often have multiple generations living together, and family loyalty is highly valued.",
			Category: "family",
			Source:   "Mexican Family Structures",
		},
		{
			Country:  "Mexico",
			Text:     "In Mexico, personal space is smaller than in many Western cultures, and people stand closer during conversations.",
			Category: "etiquette",
			Source:   "Mexican Social Norms",
		},
		{
			Country:  "Egypt",
			Text:     "In Egypt, showing the sole of your foot to someone is considered offensive, so keep feet flat on the ground when sitting.",
			Category: "etiquette",
			Source:   "Egyptian Cultural Guidelines",
		},
		{
			Country:  "Egypt",
			Text:     "Egyptian hospitality is legendary - guests are often offered tea or coffee multiple times as a sign of welcome.",
			Category: "food",
			Source:   "Egyptian Hospitality Traditions",
		},
		{
			Country:  "Russia",
			Text:     "Russians believe that smiling without reason is insincere, so don't be surprised by serious expressions in public.",
			Category: "expression",
			Source:   "Russian Social Behavior",
		},
		{
			Country:  "Russia",
			Text:     "In Russia, it's traditional to remove shoes when entering someone's home, and slippers are often provided for guests.",
			Category: "etiquette",
			Source:   "Russian Home Customs",
		},
		{
			Country:  "Thailand",
			Text:     "In Thailand, the head is considered sacred, so never touch someone's head, even children.",
			Category: "etiquette",
			Source:   "Thai Cultural Sensitivities",
		},
		{
			Country:  "Thailand",
			Text:     "Thai people use the 'wai' greeting - pressing palms together and bowing slightly - as a sign of respect.",
			Category: "greeting",
			Source:   "Thai Greeting Customs",
		},
		{
			Country:  "Italy",
			Text:     "In Italy, cappuccino is traditionally only drunk in the morning, never after meals.",
			Category: "food",
			Source:   "Italian Coffee Culture",
		},
		{
			Country:  "Italy",
			Text:     "Italians often speak with their hands, and gestures are an integral part of communication.",
			Category: "language",
			Source:   "Italian Communication Styles",
		},
	}
}
