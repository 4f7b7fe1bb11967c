package linkage

import (
	"fmt"
	"log/slog"

	"cinefuse/internal/logging"
	"cinefuse/internal/movie"
	"cinefuse/internal/textutil"
)

// Policy holds the matching constants. The similarity threshold and
// acceptance margin are deliberately configuration, not literals: they
// are tuning knobs, and tests exercise them directly.
type Policy struct {
	// YearTolerance widens the release-year window to absorb
	// international release-date skew. 0 requires an exact year.
	YearTolerance int
	// FuzzyThreshold is the minimum Dice similarity the best fuzzy
	// candidate must reach.
	FuzzyThreshold float64
	// FuzzyMargin is the minimum lead the best candidate must hold
	// over the runner-up; two near-equal candidates are ambiguous.
	FuzzyMargin float64
}

// DefaultPolicy mirrors the repository's shipped config defaults.
func DefaultPolicy() Policy {
	return Policy{
		YearTolerance:  1,
		FuzzyThreshold: 0.85,
		FuzzyMargin:    0.05,
	}
}

// Validate rejects policies that cannot produce meaningful matches.
func (p Policy) Validate() error {
	if p.YearTolerance < 0 {
		return fmt.Errorf("matching: year_tolerance must be >= 0, got %d", p.YearTolerance)
	}
	if p.FuzzyThreshold <= 0 || p.FuzzyThreshold > 1 {
		return fmt.Errorf("matching: fuzzy_threshold must be in (0, 1], got %g", p.FuzzyThreshold)
	}
	if p.FuzzyMargin < 0 || p.FuzzyMargin >= 1 {
		return fmt.Errorf("matching: fuzzy_margin must be in [0, 1), got %g", p.FuzzyMargin)
	}
	return nil
}

// Match is a successful linkage of one ledger record to one catalog
// record.
type Match struct {
	Catalog    *movie.CatalogRecord
	Method     string
	Confidence float64
}

// Matcher resolves ledger records against a candidate pool. A matched
// candidate is claimed immediately and never offered again within the
// same run.
type Matcher struct {
	pool   *Pool
	policy Policy
	logger *slog.Logger
}

// NewMatcher wires a matcher to a pool. A nil logger is replaced with a
// no-op logger.
func NewMatcher(pool *Pool, policy Policy, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Matcher{pool: pool, policy: policy, logger: logger}
}

// Match returns the best catalog counterpart for a ledger record, or
// nil when no candidate survives the exact and fuzzy stages. Linkage
// ambiguity is not an error: it resolves to nil.
func (m *Matcher) Match(ledger movie.LedgerRecord) *Match {
	key := textutil.Normalize(textutil.StripYearSuffix(ledger.Title, ledger.ReleaseYear))
	if key == "" {
		return nil
	}

	exact := m.pool.exact(key, ledger.ReleaseYear, m.policy.YearTolerance)
	if len(exact) > 0 {
		return m.resolveExact(ledger, key, exact)
	}
	return m.matchFuzzy(ledger, key)
}

// resolveExact applies the tie-break chain: prefer the year-exact
// candidate, then the larger runtime (theatrical feature over
// short/special edition), and treat a residual tie as ambiguous.
func (m *Matcher) resolveExact(ledger movie.LedgerRecord, key string, cands []*candidate) *Match {
	if len(cands) > 1 {
		yearExact := filterCandidates(cands, func(c *candidate) bool {
			return c.record.ReleaseYear == ledger.ReleaseYear
		})
		if len(yearExact) > 0 {
			cands = yearExact
		}
	}
	if len(cands) > 1 {
		cands = longestRuntime(cands)
	}
	if len(cands) != 1 {
		m.logger.Debug("exact match ambiguous",
			logging.String("title", ledger.Title),
			logging.Int("year", ledger.ReleaseYear),
			logging.Int("survivors", len(cands)))
		return nil
	}

	winner := cands[0]
	m.pool.claim(winner)
	m.logger.Debug("exact match",
		logging.String("title", ledger.Title),
		logging.Int("year", ledger.ReleaseYear),
		logging.Int64("catalog_id", winner.record.CatalogID))
	return &Match{Catalog: winner.record, Method: movie.MatchMethodExact, Confidence: 1.0}
}

// matchFuzzy scores every unclaimed candidate in the year window and
// accepts the best only above the threshold and clear of the runner-up
// by the margin.
func (m *Matcher) matchFuzzy(ledger movie.LedgerRecord, key string) *Match {
	var best *candidate
	bestScore := -1.0
	secondScore := -1.0

	for _, cand := range m.pool.window(ledger.ReleaseYear, m.policy.YearTolerance) {
		score := textutil.DiceSimilarity(key, cand.key)
		if score > bestScore {
			secondScore = bestScore
			best, bestScore = cand, score
		} else if score > secondScore {
			secondScore = score
		}
	}

	if best == nil || bestScore < m.policy.FuzzyThreshold {
		return nil
	}
	if secondScore >= 0 && bestScore-secondScore < m.policy.FuzzyMargin {
		m.logger.Debug("fuzzy match ambiguous",
			logging.String("title", ledger.Title),
			logging.Float64("best_score", bestScore),
			logging.Float64("second_score", secondScore),
			logging.Float64("margin", m.policy.FuzzyMargin))
		return nil
	}

	m.pool.claim(best)
	m.logger.Debug("fuzzy match",
		logging.String("title", ledger.Title),
		logging.Int64("catalog_id", best.record.CatalogID),
		logging.Float64("score", bestScore))
	return &Match{Catalog: best.record, Method: movie.MatchMethodFuzzy, Confidence: bestScore}
}

func filterCandidates(cands []*candidate, keep func(*candidate) bool) []*candidate {
	var out []*candidate
	for _, cand := range cands {
		if keep(cand) {
			out = append(out, cand)
		}
	}
	return out
}

// longestRuntime returns the candidates sharing the maximum known
// runtime. More than one survivor means the runtime heuristic could not
// break the tie.
func longestRuntime(cands []*candidate) []*candidate {
	maxRuntime := 0
	for _, cand := range cands {
		if cand.record.RuntimeMinutes > maxRuntime {
			maxRuntime = cand.record.RuntimeMinutes
		}
	}
	if maxRuntime == 0 {
		return cands
	}
	return filterCandidates(cands, func(c *candidate) bool {
		return c.record.RuntimeMinutes == maxRuntime
	})
}
