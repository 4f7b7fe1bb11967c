package ippattern

import (
	"regexp"
	"strings"

	"cinefuse/internal/movie"
	"cinefuse/internal/textutil"
)

// Input carries the fields pattern detection reads. Genres and
// OriginalLanguage gate remake detection; title patterns drive
// everything else.
type Input struct {
	Title            string
	Genres           []string
	OriginalLanguage string
}

// Detector evaluates the curated pattern sets. It is read-only after
// construction and safe for concurrent use.
type Detector struct {
	franchises       []franchiseEntry
	sequelIndicators []*regexp.Regexp
	remakeTitles     []*regexp.Regexp
	remakeIndicators []*regexp.Regexp
}

// NewDetector returns a detector over the curated pattern tables.
func NewDetector() *Detector {
	return &Detector{
		franchises:       franchises,
		sequelIndicators: sequelIndicators,
		remakeTitles:     remakeTitles,
		remakeIndicators: remakeIndicators,
	}
}

// Detect derives IP flags from a title and its catalog metadata.
// Franchise runs first and assigns FranchiseName from the
// first-declared entry whose pattern matches; sequel and remake are
// evaluated independently afterwards.
func (d *Detector) Detect(in Input) movie.IPFlags {
	key := textutil.Normalize(in.Title)
	if key == "" {
		return movie.IPFlags{}
	}

	var flags movie.IPFlags
	var matched *franchiseEntry
	for i := range d.franchises {
		entry := &d.franchises[i]
		if matchAny(entry.patterns, key) {
			flags.IsFranchise = true
			flags.FranchiseName = entry.name
			matched = entry
			break
		}
	}

	flags.IsSequel = d.isSequel(key, matched)

	if d.remakeEligible(in) {
		flags.IsRemake = matchAny(d.remakeTitles, key) || matchAny(d.remakeIndicators, key)
	}

	return flags
}

// isSequel fires on explicit numbering, or on the matched franchise's
// curated installment list: later entries in a series ("No Way Home",
// "Infinity War") carry no numeral, so membership in the installment
// list is what marks them.
func (d *Detector) isSequel(key string, matched *franchiseEntry) bool {
	if matchAny(d.sequelIndicators, key) {
		return true
	}
	if matched != nil && matchAny(matched.installments, key) {
		return true
	}
	return false
}

// remakeEligible excludes documentaries and non-English records, where
// the remake patterns are known to false-positive.
func (d *Detector) remakeEligible(in Input) bool {
	if in.OriginalLanguage != "" && !strings.EqualFold(in.OriginalLanguage, "en") {
		return false
	}
	for _, genre := range in.Genres {
		if strings.EqualFold(strings.TrimSpace(genre), "documentary") {
			return false
		}
	}
	return true
}

func matchAny(patterns []*regexp.Regexp, key string) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(key) {
			return true
		}
	}
	return false
}
