// Package linkage implements deterministic record linkage between the
// box-office ledger and the metadata catalog, and the pipeline that
// turns the fused records into classified output rows.
//
// Matching is exact-then-fuzzy over normalized title keys within a
// release-year tolerance window. Exact ties are broken by preferring a
// year-exact candidate, then the larger runtime; a residual tie is
// ambiguous and treated as unmatched rather than resolved arbitrarily.
// The fuzzy stage accepts the best-scoring candidate only above a
// similarity threshold and only when it clears the runner-up by a
// minimum margin.
//
// A catalog record claimed by one match leaves the candidate pool for
// the remainder of the run. The ledger is processed in a stable order
// (year, then normalized title, then raw title), so matching is greedy
// but reproducible: identical inputs always produce identical output.
package linkage
