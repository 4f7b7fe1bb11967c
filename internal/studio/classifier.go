package studio

import (
	"errors"
	"sort"
	"strings"

	"cinefuse/internal/movie"
)

// ErrEmptyAliasTable indicates the classifier was constructed without
// any alias entries. This is a startup configuration error.
var ErrEmptyAliasTable = errors.New("studio: alias table is empty")

type aliasRule struct {
	alias     string
	canonical string
	tier      movie.StudioTier
}

// Classifier maps distributor strings to studio tiers. It is read-only
// after construction and safe for concurrent use.
type Classifier struct {
	rules []aliasRule
}

// NewClassifier builds a classifier over the curated default table.
func NewClassifier() (*Classifier, error) {
	return newClassifier(defaultStudios)
}

func newClassifier(entries []studioEntry) (*Classifier, error) {
	var rules []aliasRule
	for _, entry := range entries {
		for _, alias := range entry.aliases {
			alias = strings.ToLower(strings.TrimSpace(alias))
			if alias == "" {
				continue
			}
			rules = append(rules, aliasRule{
				alias:     alias,
				canonical: entry.canonical,
				tier:      entry.tier,
			})
		}
	}
	if len(rules) == 0 {
		return nil, ErrEmptyAliasTable
	}
	// Longest alias wins; alphabetical among equals keeps ordering stable.
	sort.SliceStable(rules, func(i, j int) bool {
		if len(rules[i].alias) != len(rules[j].alias) {
			return len(rules[i].alias) > len(rules[j].alias)
		}
		return rules[i].alias < rules[j].alias
	})
	return &Classifier{rules: rules}, nil
}

// Classify returns the tier for a free-text distributor string. Empty
// or unrecognized input yields TierUnknown.
func (c *Classifier) Classify(distributor string) movie.StudioTier {
	tier, _ := c.ClassifyCanonical(distributor)
	return tier
}

// ClassifyCanonical returns the tier together with the canonical studio
// name of the alias that matched, or TierUnknown and "" when nothing
// matches.
func (c *Classifier) ClassifyCanonical(distributor string) (movie.StudioTier, string) {
	needle := strings.ToLower(strings.TrimSpace(distributor))
	if needle == "" {
		return movie.TierUnknown, ""
	}
	for _, rule := range c.rules {
		if strings.Contains(needle, rule.alias) {
			return rule.tier, rule.canonical
		}
	}
	return movie.TierUnknown, ""
}
