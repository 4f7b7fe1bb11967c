// Package catalogstore persists the metadata catalog in SQLite so the
// CLI can import it once and feed it to many fusion runs. The pipeline
// itself never touches the store; it consumes the in-memory records the
// store lists.
package catalogstore
