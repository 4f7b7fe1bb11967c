package linkage

import (
	"errors"
	"reflect"
	"testing"

	"cinefuse/internal/ippattern"
	"cinefuse/internal/movie"
	"cinefuse/internal/studio"
)

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	classifier, err := studio.NewClassifier()
	if err != nil {
		t.Fatalf("studio.NewClassifier() error = %v", err)
	}
	pipeline, err := NewPipeline(DefaultPolicy(), classifier, ippattern.NewDetector(), nil)
	if err != nil {
		t.Fatalf("NewPipeline() error = %v", err)
	}
	return pipeline
}

func testLedger() []movie.LedgerRecord {
	return []movie.LedgerRecord{
		{Title: "Spider-Man: No Way Home", ReleaseYear: 2021, DomesticGross: 814_866_759, Distributor: "Sony Pictures Releasing"},
		{Title: "Inception", ReleaseYear: 2010, DomesticGross: 292_587_330, Distributor: "Warner Bros."},
		{Title: "The Farewell", ReleaseYear: 2019, DomesticGross: 17_695_781, Distributor: "A24"},
		{Title: "Obscure Festival Film", ReleaseYear: 2019, DomesticGross: 120_000, Distributor: ""},
	}
}

func testCatalog() []movie.CatalogRecord {
	return []movie.CatalogRecord{
		{CatalogID: 634649, Title: "Spider-Man: No Way Home", ReleaseYear: 2021, OriginalLanguage: "en", Genres: []string{"Action", "Adventure"}, RuntimeMinutes: 148},
		{CatalogID: 27205, Title: "Inception", ReleaseYear: 2010, OriginalLanguage: "en", Genres: []string{"Action", "Science Fiction"}, RuntimeMinutes: 148},
		{CatalogID: 565310, Title: "The Farewell", ReleaseYear: 2019, OriginalLanguage: "en", Genres: []string{"Drama"}, RuntimeMinutes: 100},
	}
}

func TestPipelineRun(t *testing.T) {
	pipeline := newTestPipeline(t)

	result, err := pipeline.Run(testLedger(), testCatalog())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Cardinality: one output per valid ledger record.
	if len(result.Records) != 4 {
		t.Fatalf("Run() produced %d records, want 4", len(result.Records))
	}
	if result.Report.RunID == "" {
		t.Error("Run() report has empty run id")
	}
	if result.Report.MatchedExact != 3 || result.Report.Unmatched != 1 {
		t.Errorf("report = %+v, want 3 exact matches and 1 unmatched", result.Report)
	}

	// Output follows deterministic ledger order: year, then title key.
	gotTitles := make([]string, 0, len(result.Records))
	for _, record := range result.Records {
		gotTitles = append(gotTitles, record.Ledger.Title)
	}
	wantTitles := []string{"Inception", "Obscure Festival Film", "The Farewell", "Spider-Man: No Way Home"}
	if !reflect.DeepEqual(gotTitles, wantTitles) {
		t.Errorf("output order = %v, want %v", gotTitles, wantTitles)
	}
}

func TestPipelineClassification(t *testing.T) {
	pipeline := newTestPipeline(t)

	result, err := pipeline.Run(testLedger(), testCatalog())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	byTitle := make(map[string]movie.ClassifiedRecord, len(result.Records))
	for _, record := range result.Records {
		byTitle[record.Ledger.Title] = record
	}

	spiderMan := byTitle["Spider-Man: No Way Home"]
	if !spiderMan.IsFranchise || spiderMan.FranchiseName != "Spider-Man" {
		t.Errorf("Spider-Man franchise flags = %+v, want franchise Spider-Man", spiderMan.IPFlags)
	}
	if !spiderMan.IsSequel {
		t.Error("Spider-Man IsSequel = false, want true")
	}
	if spiderMan.IsRemake {
		t.Error("Spider-Man IsRemake = true, want false")
	}
	if spiderMan.StudioTier != movie.TierMajor {
		t.Errorf("Spider-Man tier = %v, want major", spiderMan.StudioTier)
	}

	inception := byTitle["Inception"]
	if inception.IsFranchise || inception.IsSequel || inception.IsRemake {
		t.Errorf("Inception IP flags = %+v, want all false", inception.IPFlags)
	}

	farewell := byTitle["The Farewell"]
	if farewell.StudioTier != movie.TierIndependent {
		t.Errorf("The Farewell tier = %v, want independent", farewell.StudioTier)
	}

	unmatched := byTitle["Obscure Festival Film"]
	if unmatched.Matched() {
		t.Error("unmatched record has catalog counterpart")
	}
	if unmatched.StudioTier != movie.TierUnknown {
		t.Errorf("unmatched tier = %v, want unknown", unmatched.StudioTier)
	}
	if unmatched.MatchConfidence != 0 || unmatched.MatchMethod != "" {
		t.Errorf("unmatched record carries match metadata: %+v", unmatched.FusedRecord)
	}
}

// No two output records may claim the same catalog record, even when
// several ledger rows normalize to the same key.
func TestPipelineInjectiveClaims(t *testing.T) {
	pipeline := newTestPipeline(t)

	ledger := []movie.LedgerRecord{
		{Title: "Dune", ReleaseYear: 2021, DomesticGross: 108_327_830, Distributor: "Warner Bros."},
		{Title: "Dune (2021)", ReleaseYear: 2021, DomesticGross: 1_000, Distributor: "Warner Bros."},
	}
	catalog := []movie.CatalogRecord{
		{CatalogID: 438631, Title: "Dune", ReleaseYear: 2021, OriginalLanguage: "en", RuntimeMinutes: 155},
	}

	result, err := pipeline.Run(ledger, catalog)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Records) != 2 {
		t.Fatalf("Run() produced %d records, want 2", len(result.Records))
	}

	claimed := make(map[int64]int)
	matches := 0
	for _, record := range result.Records {
		if record.Matched() {
			claimed[record.Catalog.CatalogID]++
			matches++
		}
	}
	if matches != 1 {
		t.Errorf("matched records = %d, want exactly 1", matches)
	}
	for id, count := range claimed {
		if count > 1 {
			t.Errorf("catalog id %d claimed %d times", id, count)
		}
	}
}

func TestPipelineRejectsStructurallyInvalid(t *testing.T) {
	pipeline := newTestPipeline(t)

	ledger := []movie.LedgerRecord{
		{Title: "", ReleaseYear: 2020, DomesticGross: 100},
		{Title: "Negative Gross", ReleaseYear: 2020, DomesticGross: -5},
		{Title: "Bad Year", ReleaseYear: 0, DomesticGross: 100},
		{Title: "Fine", ReleaseYear: 2020, DomesticGross: 100},
	}

	result, err := pipeline.Run(ledger, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Records) != 1 {
		t.Fatalf("Run() produced %d records, want 1", len(result.Records))
	}
	if len(result.Report.Rejected) != 3 {
		t.Fatalf("rejected = %d, want 3", len(result.Report.Rejected))
	}

	wantErrs := []error{movie.ErrMissingTitle, movie.ErrNegativeGross, movie.ErrInvalidYear}
	for i, reject := range result.Report.Rejected {
		if !errors.Is(reject, wantErrs[i]) {
			t.Errorf("rejected[%d] = %v, want %v", i, reject, wantErrs[i])
		}
	}
}

func TestPipelineDeterministic(t *testing.T) {
	pipeline := newTestPipeline(t)

	first, err := pipeline.Run(testLedger(), testCatalog())
	if err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	second, err := pipeline.Run(testLedger(), testCatalog())
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}

	if !reflect.DeepEqual(first.Records, second.Records) {
		t.Error("identical inputs produced different outputs")
	}
}

func TestNewPipelineRejectsInvalidPolicy(t *testing.T) {
	classifier, err := studio.NewClassifier()
	if err != nil {
		t.Fatalf("studio.NewClassifier() error = %v", err)
	}
	bad := Policy{YearTolerance: 1, FuzzyThreshold: 2, FuzzyMargin: 0}
	if _, err := NewPipeline(bad, classifier, ippattern.NewDetector(), nil); err == nil {
		t.Fatal("NewPipeline() error = nil, want policy validation error")
	}
}
