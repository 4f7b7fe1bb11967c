package textutil

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// suffixTagPattern matches trailing parenthesized edition and release
// tags that carry no identity: "(2019 Re-release)", "(IMAX)",
// "(Extended Edition)", "(Director's Cut)", and the like.
var suffixTagPattern = regexp.MustCompile(
	`\s*\((?:` +
		`(?:\d{4}\s+)?re-?release` +
		`|(?:\d{4}\s+)?remaster(?:ed)?` +
		`|imax(?:\s+3d)?` +
		`|3d` +
		`|extended(?:\s+(?:edition|cut))?` +
		`|director'?s\s+cut` +
		`|special\s+edition` +
		`|unrated(?:\s+(?:edition|cut))?` +
		`|\d+(?:th|st|nd|rd)\s+anniversary(?:\s+edition)?` +
		`)\)\s*$`)

// trailingYearPattern matches a trailing "(YYYY)" disambiguation tag.
var trailingYearPattern = regexp.MustCompile(`\s*\((\d{4})\)\s*$`)

// Normalize canonicalizes a raw title into a comparison key. Every
// input, including the empty string, produces a (possibly empty) key,
// and Normalize(Normalize(x)) == Normalize(x) for all x.
func Normalize(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	if s == "" {
		return ""
	}
	s = foldDiacritics(s)
	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "+", " and ")
	for {
		stripped := suffixTagPattern.ReplaceAllString(s, "")
		if stripped == s {
			break
		}
		s = stripped
	}

	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
			continue
		}
		pendingSpace = true
	}
	return b.String()
}

// StripYearSuffix removes a trailing "(YYYY)" from a title only when it
// duplicates the record's own release year, so ledger rows like
// "Fantastic Four (2015)" key the same as the catalog's plain title.
func StripYearSuffix(title string, releaseYear int) string {
	match := trailingYearPattern.FindStringSubmatch(title)
	if match == nil {
		return title
	}
	year, err := strconv.Atoi(match[1])
	if err != nil || year != releaseYear {
		return title
	}
	return strings.TrimSpace(trailingYearPattern.ReplaceAllString(title, ""))
}

// foldDiacritics transliterates accented characters to their base Latin
// form ("Amélie" -> "Amelie"). The transform chain is built per call
// because chained transformers carry internal buffers.
func foldDiacritics(s string) string {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, s)
	if err != nil {
		return s
	}
	return folded
}
