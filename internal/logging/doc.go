// Package logging assembles the structured slog loggers used across
// cinefuse.
//
// It centralizes level and format plumbing behind one constructor and
// exposes typed attribute helpers plus a no-op logger for tests and
// wiring code that cannot fail. Prefer these constructors over
// hand-rolled slog setup so every component emits the same shape.
package logging
