package scope

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"cinefuse/internal/movie"
)

// Scope restricts the classified output to a dataset subset. Empty
// allow-lists admit everything; MinYear 0 admits every year.
type Scope struct {
	Name      string
	Languages []string
	Tiers     []movie.StudioTier
	MinYear   int
}

// Named scope identifiers.
const (
	NameFull         = "full"
	NameEnglish      = "english"
	NameMajor        = "major"
	NameEnglishMajor = "english_major"
)

// Named resolves a scope name and starting year into a Scope. An
// unknown name is a configuration error, fatal at startup.
func Named(name string, yearStart int) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameFull, "":
		return Scope{Name: NameFull, MinYear: yearStart}, nil
	case NameEnglish:
		return Scope{Name: NameEnglish, Languages: []string{"en"}, MinYear: yearStart}, nil
	case NameMajor:
		return Scope{Name: NameMajor, Tiers: []movie.StudioTier{movie.TierMajor}, MinYear: yearStart}, nil
	case NameEnglishMajor:
		return Scope{
			Name:      NameEnglishMajor,
			Languages: []string{"en"},
			Tiers:     []movie.StudioTier{movie.TierMajor},
			MinYear:   yearStart,
		}, nil
	default:
		return Scope{}, fmt.Errorf("scope: unknown name %q (available: full, english, major, english_major)", name)
	}
}

// Apply filters records to the scope. Records with no catalog
// counterpart carry no language, so an active language filter excludes
// them: the filter cannot verify what it cannot see.
func (s Scope) Apply(records []movie.ClassifiedRecord) []movie.ClassifiedRecord {
	out := make([]movie.ClassifiedRecord, 0, len(records))
	for _, record := range records {
		if s.admits(record) {
			out = append(out, record)
		}
	}
	return out
}

func (s Scope) admits(record movie.ClassifiedRecord) bool {
	if s.MinYear > 0 && record.Ledger.ReleaseYear < s.MinYear {
		return false
	}
	if len(s.Languages) > 0 && !s.admitsLanguage(record.OriginalLanguage()) {
		return false
	}
	if len(s.Tiers) > 0 && !s.admitsTier(record.StudioTier) {
		return false
	}
	return true
}

func (s Scope) admitsLanguage(code string) bool {
	base, ok := baseLanguage(code)
	if !ok {
		return false
	}
	for _, allowed := range s.Languages {
		allowedBase, ok := baseLanguage(allowed)
		if ok && allowedBase == base {
			return true
		}
	}
	return false
}

func (s Scope) admitsTier(tier movie.StudioTier) bool {
	for _, allowed := range s.Tiers {
		if tier == allowed {
			return true
		}
	}
	return false
}

// baseLanguage canonicalizes a language value ("en", "en-US",
// "english") to its ISO 639-1 base so catalog codes and config values
// compare consistently.
func baseLanguage(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", false
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return "", false
	}
	return base.String(), true
}
