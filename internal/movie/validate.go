package movie

import (
	"errors"
	"strings"
)

// Structural validation errors for ledger rows. A failing row is
// rejected individually and reported; it never aborts a run.
var (
	ErrMissingTitle  = errors.New("ledger record: missing title")
	ErrNegativeGross = errors.New("ledger record: negative domestic gross")
	ErrInvalidYear   = errors.New("ledger record: release year must be positive")
)

// Validate checks a ledger record for structural problems before it
// enters the pipeline.
func (r LedgerRecord) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrMissingTitle
	}
	if r.DomesticGross < 0 {
		return ErrNegativeGross
	}
	if r.ReleaseYear <= 0 {
		return ErrInvalidYear
	}
	return nil
}
