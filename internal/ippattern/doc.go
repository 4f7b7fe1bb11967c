// Package ippattern derives franchise, sequel, and remake flags from
// noisy movie titles using curated pattern sets.
//
// Detection order is fixed: franchise first (the first-declared
// franchise wins when patterns overlap), then sequel, then remake.
// Sequel and remake are independent booleans, not mutually exclusive
// with franchise membership. Remake detection is tuned for
// English-language fiction features and is skipped for documentaries
// and non-English records, where it produces false positives.
//
// All patterns are written against normalized titles (see
// textutil.Normalize) and compiled once at package init.
package ippattern
