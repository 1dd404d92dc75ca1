package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/culturecoders/culturebot/internal/model"
	"gopkg.in/yaml.v3"
)

// ErrProfileNotFound is returned when no profile exists for a country
var ErrProfileNotFound = errors.New("country profile not found")

//go:embed profiles.yaml
var profilesYAML []byte

type profileFile struct {
	Profiles []model.CountryProfile `yaml:"profiles"`
}

// ProfileDirectory indexes country profiles by lowercased country name
type ProfileDirectory struct {
	order    []string
	profiles map[string]model.CountryProfile
}

// LoadProfiles decodes the built-in profile table
func LoadProfiles() (*ProfileDirectory, error) {
	return ParseProfiles(profilesYAML)
}

// ParseProfiles decodes a YAML profile document
func ParseProfiles(data []byte) (*ProfileDirectory, error) {
	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}

	dir := &ProfileDirectory{
		profiles: make(map[string]model.CountryProfile, len(file.Profiles)),
	}
	for i, p := range file.Profiles {
		if strings.TrimSpace(p.Country) == "" {
			return nil, fmt.Errorf("profile %d has no country", i)
		}
		key := strings.ToLower(p.Country)
		if _, dup := dir.profiles[key]; dup {
			return nil, fmt.Errorf("duplicate profile for %s", p.Country)
		}
		dir.profiles[key] = p
		dir.order = append(dir.order, key)
	}

	return dir, nil
}

// Profile returns the profile for country, ignoring case
func (d *ProfileDirectory) Profile(country string) (model.CountryProfile, error) {
	p, ok := d.profiles[strings.ToLower(strings.TrimSpace(country))]
	if !ok {
		return model.CountryProfile{}, fmt.Errorf("%s: %w", country, ErrProfileNotFound)
	}
	return p, nil
}

// Countries returns the profiled countries, sorted
func (d *ProfileDirectory) Countries() []string {
	out := make([]string, 0, len(d.order))
	for _, key := range d.order {
		out = append(out, d.profiles[key].Country)
	}
	sort.Strings(out)
	return out
}

// FestivalsBySeason returns festivals whose season mentions season
func (d *ProfileDirectory) FestivalsBySeason(season string) []model.Festival {
	needle := strings.ToLower(season)
	out := make([]model.Festival, 0)
	for _, key := range d.order {
		p := d.profiles[key]
		for _, f := range p.Festivals {
			if strings.Contains(strings.ToLower(f.Season), needle) {
				f.Country = p.Country
				out = append(out, f)
			}
		}
	}
	return out
}

// LocationsByType returns locations whose type mentions kind
func (d *ProfileDirectory) LocationsByType(kind string) []model.Location {
	needle := strings.ToLower(kind)
	out := make([]model.Location, 0)
	for _, key := range d.order {
		p := d.profiles[key]
		for _, l := range p.Locations {
			if strings.Contains(strings.ToLower(l.Type), needle) {
				l.Country = p.Country
				out = append(out, l)
			}
		}
	}
	return out
}
