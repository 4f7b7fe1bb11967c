// Package movie defines the record types flowing through the fusion
// pipeline: raw ledger and catalog rows, fused records produced by
// linkage, and classified records carrying derived studio and IP
// attributes.
//
// Records are treated as immutable once constructed. Derived fields on
// ClassifiedRecord are pure functions of the fused record and are never
// mutated independently.
package movie
