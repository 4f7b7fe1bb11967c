package movie

// LedgerRecord is one row from the box-office ledger. The ledger is the
// authoritative revenue source and the spine of the join: every valid
// ledger record produces exactly one output record.
type LedgerRecord struct {
	Title         string
	ReleaseYear   int
	DomesticGross int64
	Distributor   string
}

// CatalogRecord is one row from the metadata catalog, keyed by a stable
// identifier. Title and year exist only for linkage; a zero ReleaseYear
// or RuntimeMinutes means the catalog does not know the value.
type CatalogRecord struct {
	CatalogID           int64
	Title               string
	ReleaseYear         int
	OriginalLanguage    string
	Genres              []string
	RuntimeMinutes      int
	ProductionCompanies []string
}

// Match methods recorded on fused records.
const (
	MatchMethodExact = "exact"
	MatchMethodFuzzy = "fuzzy"
)

// FusedRecord links one ledger record to at most one catalog record.
// Catalog is nil for ledger records that found no counterpart; such
// records are retained because the ledger is authoritative and catalog
// enrichment is best-effort.
type FusedRecord struct {
	Ledger          LedgerRecord
	Catalog         *CatalogRecord
	MatchMethod     string
	MatchConfidence float64
}

// Matched reports whether a catalog counterpart was linked.
func (f FusedRecord) Matched() bool {
	return f.Catalog != nil
}

// IPFlags carries franchise, sequel, and remake attributes derived from
// title patterns. FranchiseName is set only when IsFranchise is true.
type IPFlags struct {
	IsFranchise   bool
	FranchiseName string
	IsSequel      bool
	IsRemake      bool
}

// ClassifiedRecord is a fused record plus its derived categorical
// features. This is the pipeline's output row.
type ClassifiedRecord struct {
	FusedRecord
	StudioTier StudioTier
	IPFlags
}

// OriginalLanguage returns the catalog language code, or the empty
// string for unmatched records.
func (f FusedRecord) OriginalLanguage() string {
	if f.Catalog == nil {
		return ""
	}
	return f.Catalog.OriginalLanguage
}

// Genres returns the catalog genre labels, or nil for unmatched records.
func (f FusedRecord) Genres() []string {
	if f.Catalog == nil {
		return nil
	}
	return f.Catalog.Genres
}
