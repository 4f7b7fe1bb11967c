package textutil

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t ", ""},
		{"lowercases", "Inception", "inception"},
		{"strips punctuation", "Spider-Man: No Way Home", "spider man no way home"},
		{"collapses whitespace", "The   Quick    Fox", "the quick fox"},
		{"ampersand becomes and", "Fast & Furious", "fast and furious"},
		{"plus becomes and", "Tom + Jerry", "tom and jerry"},
		{"folds diacritics", "Amélie", "amelie"},
		{"re-release tag", "Avatar (2022 Re-release)", "avatar"},
		{"imax tag", "Dune (IMAX)", "dune"},
		{"extended edition tag", "The Return of the King (Extended Edition)", "the return of the king"},
		{"directors cut tag", "Blade Runner (Director's Cut)", "blade runner"},
		{"stacked tags", "Aliens (Special Edition) (1986 Re-release)", "aliens"},
		{"apostrophe", "Ocean's Eleven", "ocean s eleven"},
		{"leading punctuation", "...And Justice for All", "and justice for all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Inception",
		"Spider-Man: No Way Home",
		"Avatar (2022 Re-release)",
		"Fast & Furious 6",
		"Amélie (Director's Cut)",
		"Léon: The Professional",
		"WALL·E",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestStripYearSuffix(t *testing.T) {
	tests := []struct {
		name  string
		title string
		year  int
		want  string
	}{
		{"matching year stripped", "Fantastic Four (2015)", 2015, "Fantastic Four"},
		{"mismatched year kept", "Fantastic Four (2015)", 2005, "Fantastic Four (2015)"},
		{"no suffix", "Fantastic Four", 2015, "Fantastic Four"},
		{"year mid-title kept", "Blade Runner 2049", 2017, "Blade Runner 2049"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripYearSuffix(tt.title, tt.year)
			if got != tt.want {
				t.Errorf("StripYearSuffix(%q, %d) = %q, want %q", tt.title, tt.year, got, tt.want)
			}
		})
	}
}
