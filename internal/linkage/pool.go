package linkage

import (
	"sort"

	"cinefuse/internal/movie"
	"cinefuse/internal/textutil"
)

// candidate is a catalog record prepared for matching: its normalized
// key is computed once at pool construction.
type candidate struct {
	record  *movie.CatalogRecord
	key     string
	claimed bool
}

// Pool holds the mutable remaining-candidates state for one pipeline
// run. It is explicit per-run state, never ambient: a fresh pool makes
// every run reproducible in isolation.
type Pool struct {
	byKey      map[string][]*candidate
	candidates []*candidate
}

// NewPool indexes catalog records for matching. Candidates are ordered
// by catalog id so iteration order, and therefore fuzzy tie behavior,
// is deterministic regardless of input order. Catalog titles carrying a
// redundant "(YYYY)" tag are keyed without it, matching the ledger side.
func NewPool(catalog []movie.CatalogRecord) *Pool {
	pool := &Pool{
		byKey:      make(map[string][]*candidate, len(catalog)),
		candidates: make([]*candidate, 0, len(catalog)),
	}
	for i := range catalog {
		record := &catalog[i]
		cand := &candidate{
			record: record,
			key:    textutil.Normalize(textutil.StripYearSuffix(record.Title, record.ReleaseYear)),
		}
		pool.candidates = append(pool.candidates, cand)
	}
	sort.SliceStable(pool.candidates, func(i, j int) bool {
		return pool.candidates[i].record.CatalogID < pool.candidates[j].record.CatalogID
	})
	for _, cand := range pool.candidates {
		if cand.key == "" {
			continue
		}
		pool.byKey[cand.key] = append(pool.byKey[cand.key], cand)
	}
	return pool
}

// exact returns unclaimed candidates whose key equals the query key and
// whose release year falls inside the tolerance window. Candidates with
// no known year cannot satisfy the window and are skipped.
func (p *Pool) exact(key string, year, tolerance int) []*candidate {
	var out []*candidate
	for _, cand := range p.byKey[key] {
		if cand.claimed || !withinWindow(cand.record.ReleaseYear, year, tolerance) {
			continue
		}
		out = append(out, cand)
	}
	return out
}

// window returns all unclaimed candidates inside the year window, in
// catalog id order.
func (p *Pool) window(year, tolerance int) []*candidate {
	var out []*candidate
	for _, cand := range p.candidates {
		if cand.claimed || cand.key == "" || !withinWindow(cand.record.ReleaseYear, year, tolerance) {
			continue
		}
		out = append(out, cand)
	}
	return out
}

// claim removes a candidate from the pool for the rest of the run.
func (p *Pool) claim(cand *candidate) {
	cand.claimed = true
}

// Remaining reports how many candidates are still unclaimed.
func (p *Pool) Remaining() int {
	n := 0
	for _, cand := range p.candidates {
		if !cand.claimed {
			n++
		}
	}
	return n
}

func withinWindow(candidateYear, year, tolerance int) bool {
	if candidateYear == 0 {
		return false
	}
	delta := candidateYear - year
	if delta < 0 {
		delta = -delta
	}
	return delta <= tolerance
}
