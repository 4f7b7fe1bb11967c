// Package studio classifies free-text distributor strings into coarse
// studio tiers using a curated alias table.
//
// Matching is case-insensitive substring containment with
// longest-alias-first precedence, so a specific subsidiary label
// ("fox searchlight") wins over a shorter parent fragment ("fox") when
// both could match. Unknown or empty input classifies as TierUnknown,
// never an error.
package studio
