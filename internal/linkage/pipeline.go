package linkage

import (
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"cinefuse/internal/ippattern"
	"cinefuse/internal/logging"
	"cinefuse/internal/movie"
	"cinefuse/internal/studio"
	"cinefuse/internal/textutil"
)

// Pipeline orchestrates one fusion run: validation, deterministic
// ordering, matching against a live candidate pool, then studio and IP
// classification of each fused record.
type Pipeline struct {
	policy     Policy
	classifier *studio.Classifier
	detector   *ippattern.Detector
	logger     *slog.Logger
}

// NewPipeline validates the policy and wires the classifiers. The
// classifier and detector tables are read-only, so one pipeline may
// serve many runs.
func NewPipeline(policy Policy, classifier *studio.Classifier, detector *ippattern.Detector, logger *slog.Logger) (*Pipeline, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pipeline{
		policy:     policy,
		classifier: classifier,
		detector:   detector,
		logger:     logging.NewComponentLogger(logger, "linkage"),
	}, nil
}

// Run fuses the ledger with the catalog and classifies every fused
// record. Exactly one output record is emitted per valid ledger record,
// in the deterministic ledger order; structurally invalid rows are
// rejected into the report.
func (p *Pipeline) Run(ledger []movie.LedgerRecord, catalog []movie.CatalogRecord) (*Result, error) {
	report := RunReport{RunID: uuid.NewString()}
	logger := p.logger.With(logging.String("run_id", report.RunID))

	valid := make([]movie.LedgerRecord, 0, len(ledger))
	for _, record := range ledger {
		if err := record.Validate(); err != nil {
			report.Rejected = append(report.Rejected, RecordError{
				Title:       record.Title,
				ReleaseYear: record.ReleaseYear,
				Err:         err,
			})
			logger.Warn("ledger record rejected",
				logging.String("title", record.Title),
				logging.Int("year", record.ReleaseYear),
				logging.Error(err))
			continue
		}
		valid = append(valid, record)
	}
	report.LedgerTotal = len(valid)

	sortLedger(valid)

	pool := NewPool(catalog)
	matcher := NewMatcher(pool, p.policy, logger)

	records := make([]movie.ClassifiedRecord, 0, len(valid))
	for _, ledgerRecord := range valid {
		fused := movie.FusedRecord{Ledger: ledgerRecord}
		if match := matcher.Match(ledgerRecord); match != nil {
			fused.Catalog = match.Catalog
			fused.MatchMethod = match.Method
			fused.MatchConfidence = match.Confidence
			switch match.Method {
			case movie.MatchMethodExact:
				report.MatchedExact++
			case movie.MatchMethodFuzzy:
				report.MatchedFuzzy++
			}
		} else {
			report.Unmatched++
		}
		records = append(records, p.classify(fused))
	}

	logger.Info("fusion run complete",
		logging.Int("ledger_total", report.LedgerTotal),
		logging.Int("matched_exact", report.MatchedExact),
		logging.Int("matched_fuzzy", report.MatchedFuzzy),
		logging.Int("unmatched", report.Unmatched),
		logging.Int("rejected", len(report.Rejected)),
		logging.Int("catalog_remaining", pool.Remaining()))

	return &Result{Records: records, Report: report}, nil
}

// classify derives the studio tier and IP flags for one fused record.
// Both derivations are pure functions of the fused fields.
func (p *Pipeline) classify(fused movie.FusedRecord) movie.ClassifiedRecord {
	classified := movie.ClassifiedRecord{
		FusedRecord: fused,
		StudioTier:  p.classifier.Classify(fused.Ledger.Distributor),
	}
	classified.IPFlags = p.detector.Detect(ippattern.Input{
		Title:            fused.Ledger.Title,
		Genres:           fused.Genres(),
		OriginalLanguage: fused.OriginalLanguage(),
	})
	return classified
}

// sortLedger fixes the iteration order: year, then normalized title,
// then raw title as the final disambiguator. Greedy claim-then-remove
// matching is order-sensitive, so this order is part of the contract.
func sortLedger(records []movie.LedgerRecord) {
	type keyed struct {
		record movie.LedgerRecord
		key    string
	}
	keyedRecords := make([]keyed, len(records))
	for i, record := range records {
		keyedRecords[i] = keyed{record: record, key: textutil.Normalize(record.Title)}
	}
	sort.SliceStable(keyedRecords, func(i, j int) bool {
		a, b := keyedRecords[i], keyedRecords[j]
		if a.record.ReleaseYear != b.record.ReleaseYear {
			return a.record.ReleaseYear < b.record.ReleaseYear
		}
		if a.key != b.key {
			return a.key < b.key
		}
		return a.record.Title < b.record.Title
	})
	for i := range keyedRecords {
		records[i] = keyedRecords[i].record
	}
}
