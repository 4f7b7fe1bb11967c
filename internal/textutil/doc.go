// Package textutil provides the title normalization and string
// similarity primitives used by record linkage.
//
// Normalize produces the comparison key both linkage stages operate on:
// lowercased, diacritics folded to base Latin, punctuation stripped,
// whitespace collapsed, and known edition/re-release suffix tags
// removed. It is deterministic, total, and idempotent.
//
// Similarity between keys uses the Sørensen–Dice coefficient over
// character bigrams, which behaves well on short strings like movie
// titles where token-level measures are too coarse.
package textutil
