package linkage

import (
	"fmt"

	"cinefuse/internal/movie"
)

// RecordError identifies a structurally invalid ledger row that was
// rejected from a run. Rejection is per-record: one bad row never
// aborts the run.
type RecordError struct {
	Title       string
	ReleaseYear int
	Err         error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("%q (%d): %v", e.Title, e.ReleaseYear, e.Err)
}

func (e RecordError) Unwrap() error {
	return e.Err
}

// RunReport summarizes one pipeline run.
type RunReport struct {
	RunID        string
	LedgerTotal  int
	MatchedExact int
	MatchedFuzzy int
	Unmatched    int
	Rejected     []RecordError
}

// Result is a pipeline run's output: classified records in ledger
// order, plus the run report.
type Result struct {
	Records []movie.ClassifiedRecord
	Report  RunReport
}
