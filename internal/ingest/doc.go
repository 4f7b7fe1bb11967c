// Package ingest parses the collaborator-produced CSV inputs: ledger
// rows from the box-office source and catalog rows from the metadata
// source. Parsing is header-driven and tolerant of the column name
// variants the upstream exports use.
package ingest
