// Package match turns a free-text query into an ordered list of candidate facts.
//
// Matching runs three tiers in order and returns the first one that produces
// anything:
//
//  1. country: the fact's country appears anywhere in the query
//  2. category: the fact's category appears anywhere in the query
//  3. keyword: any whitespace-separated query token appears in the fact text
//
// All comparisons are lowercase substring tests. There is no punctuation,
// accent or plural normalization, so a country embedded in an unrelated word
// still counts as a country hit.
package match

import (
	"strings"

	"github.com/culturecoders/culturebot/internal/model"
)

// MaxResults caps every result set, whichever tier produced it
const MaxResults = 5

// Tier identifies the strategy that produced a result
type Tier string

const (
	TierNone     Tier = "none"
	TierCountry  Tier = "country"
	TierCategory Tier = "category"
	TierKeyword  Tier = "keyword"
)

// Match returns at most MaxResults facts for query, in catalog order
func Match(query string, records []model.Fact) []model.Fact {
	facts, _ := MatchTier(query, records)
	return facts
}

// MatchTier is Match plus the tier that produced the result.
// An empty result always reports TierNone.
func MatchTier(query string, records []model.Fact) ([]model.Fact, Tier) {
	q := strings.ToLower(query)

	if hits := collect(records, func(f model.Fact) bool {
		return strings.Contains(q, strings.ToLower(f.Country))
	}); len(hits) > 0 {
		return hits, TierCountry
	}

	if hits := collect(records, func(f model.Fact) bool {
		return strings.Contains(q, strings.ToLower(f.Category))
	}); len(hits) > 0 {
		return hits, TierCategory
	}

	keywords := strings.Fields(q)
	if len(keywords) == 0 {
		return []model.Fact{}, TierNone
	}
	if hits := collect(records, func(f model.Fact) bool {
		text := strings.ToLower(f.Text)
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
		return false
	}); len(hits) > 0 {
		return hits, TierKeyword
	}

	return []model.Fact{}, TierNone
}

// collect keeps matching records in order and stops at MaxResults
func collect(records []model.Fact, keep func(model.Fact) bool) []model.Fact {
	var out []model.Fact
	for _, f := range records {
		if !keep(f) {
			continue
		}
		out = append(out, f)
		if len(out) == MaxResults {
			break
		}
	}
	return out
}
