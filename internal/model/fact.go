package model

import "strings"

// Fact is one hand-authored cultural fact.
// Facts carry no identity; two facts are the same when every field matches.
type Fact struct {
	Country  string `json:"country" yaml:"country"`   // Grouping key, shared by many facts
	Text     string `json:"fact" yaml:"fact"`         // The fact itself
	Category string `json:"category" yaml:"category"` // Open label (etiquette, business, ...)
	Source   string `json:"source" yaml:"source"`     // Informal attribution
}

// Complete reports whether every field is populated
func (f Fact) Complete() bool {
	return strings.TrimSpace(f.Country) != "" &&
		strings.TrimSpace(f.Text) != "" &&
		strings.TrimSpace(f.Category) != "" &&
		strings.TrimSpace(f.Source) != ""
}

// CatalogStats summarizes the catalog contents
type CatalogStats struct {
	Facts      int `json:"facts"`
	Countries  int `json:"countries"`
	Categories int `json:"categories"`
}
