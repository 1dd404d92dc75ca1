package model

// CountryProfile is the long-form reference data for one country
type CountryProfile struct {
	Country           string      `json:"country" yaml:"country"`
	Continent         string      `json:"continent" yaml:"continent"`
	Capital           string      `json:"capital" yaml:"capital"`
	Population        string      `json:"population" yaml:"population"`
	Currency          string      `json:"currency" yaml:"currency"`
	OfficialLanguages []string    `json:"official_languages" yaml:"official_languages"`
	SpokenLanguages   []string    `json:"spoken_languages" yaml:"spoken_languages"`
	LanguageFacts     []string    `json:"language_facts" yaml:"language_facts"`
	Festivals         []Festival  `json:"festivals" yaml:"festivals"`
	Locations         []Location  `json:"locations" yaml:"locations"`
	Food              FoodCulture `json:"food" yaml:"food"`
}

// Festival is a recurring celebration
type Festival struct {
	Country      string `json:"country,omitempty" yaml:"-"`
	Name         string `json:"name" yaml:"name"`
	Season       string `json:"season" yaml:"season"`
	Description  string `json:"description" yaml:"description"`
	Significance string `json:"significance" yaml:"significance"`
}

// Location is a place worth visiting
type Location struct {
	Country      string   `json:"country,omitempty" yaml:"-"`
	Name         string   `json:"name" yaml:"name"`
	Type         string   `json:"type" yaml:"type"`
	Description  string   `json:"description" yaml:"description"`
	BestTime     string   `json:"best_time,omitempty" yaml:"best_time,omitempty"`
	Significance string   `json:"significance,omitempty" yaml:"significance,omitempty"`
	Highlights   []string `json:"highlights,omitempty" yaml:"highlights,omitempty"`
}

// FoodCulture describes staples and table manners
type FoodCulture struct {
	Staples         []string `json:"staples" yaml:"staples"`
	PopularDishes   []string `json:"popular_dishes" yaml:"popular_dishes"`
	DiningEtiquette []string `json:"dining_etiquette" yaml:"dining_etiquette"`
}
