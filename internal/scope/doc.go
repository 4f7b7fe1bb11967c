// Package scope implements the dataset scope filters applied around
// the core pipeline.
//
// A scope is a language allow-list, a studio-tier allow-list, and a
// minimum release year. The core pipeline is scope-agnostic; the CLI
// applies the configured scope to the classified output. Named scopes
// mirror the project's dataset subsets: full, english, major, and
// english_major.
package scope
