// Package export serializes classified records into the tabular
// formats downstream analysis consumes.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cinefuse/internal/movie"
)

// csvHeader is the stable column order of the exported table.
var csvHeader = []string{
	"title",
	"release_year",
	"domestic_gross",
	"distributor",
	"studio_tier",
	"catalog_id",
	"original_language",
	"genres",
	"runtime_minutes",
	"match_method",
	"match_confidence",
	"is_franchise",
	"franchise_name",
	"is_sequel",
	"is_remake",
}

// WriteCSV writes the classified table in the stable column order.
// Catalog-derived columns are empty for unmatched records.
func WriteCSV(w io.Writer, records []movie.ClassifiedRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, record := range records {
		if err := writer.Write(csvRow(record)); err != nil {
			return fmt.Errorf("write csv row for %q: %w", record.Ledger.Title, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func csvRow(record movie.ClassifiedRecord) []string {
	row := []string{
		record.Ledger.Title,
		strconv.Itoa(record.Ledger.ReleaseYear),
		strconv.FormatInt(record.Ledger.DomesticGross, 10),
		record.Ledger.Distributor,
		string(record.StudioTier),
	}
	if record.Matched() {
		row = append(row,
			strconv.FormatInt(record.Catalog.CatalogID, 10),
			record.Catalog.OriginalLanguage,
			strings.Join(record.Catalog.Genres, "|"),
			formatOptionalInt(record.Catalog.RuntimeMinutes),
			record.MatchMethod,
			strconv.FormatFloat(record.MatchConfidence, 'f', 4, 64),
		)
	} else {
		row = append(row, "", "", "", "", "", "")
	}
	row = append(row,
		strconv.FormatBool(record.IsFranchise),
		record.FranchiseName,
		strconv.FormatBool(record.IsSequel),
		strconv.FormatBool(record.IsRemake),
	)
	return row
}

func formatOptionalInt(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

// jsonRecord is the flattened JSON shape of one classified record.
type jsonRecord struct {
	Title           string   `json:"title"`
	ReleaseYear     int      `json:"release_year"`
	DomesticGross   int64    `json:"domestic_gross"`
	Distributor     string   `json:"distributor,omitempty"`
	StudioTier      string   `json:"studio_tier"`
	CatalogID       *int64   `json:"catalog_id,omitempty"`
	Language        string   `json:"original_language,omitempty"`
	Genres          []string `json:"genres,omitempty"`
	RuntimeMinutes  int      `json:"runtime_minutes,omitempty"`
	MatchMethod     string   `json:"match_method,omitempty"`
	MatchConfidence float64  `json:"match_confidence,omitempty"`
	IsFranchise     bool     `json:"is_franchise"`
	FranchiseName   string   `json:"franchise_name,omitempty"`
	IsSequel        bool     `json:"is_sequel"`
	IsRemake        bool     `json:"is_remake"`
}

// WriteJSON writes the classified table as a JSON array.
func WriteJSON(w io.Writer, records []movie.ClassifiedRecord) error {
	out := make([]jsonRecord, 0, len(records))
	for _, record := range records {
		row := jsonRecord{
			Title:         record.Ledger.Title,
			ReleaseYear:   record.Ledger.ReleaseYear,
			DomesticGross: record.Ledger.DomesticGross,
			Distributor:   record.Ledger.Distributor,
			StudioTier:    string(record.StudioTier),
			IsFranchise:   record.IsFranchise,
			FranchiseName: record.FranchiseName,
			IsSequel:      record.IsSequel,
			IsRemake:      record.IsRemake,
		}
		if record.Matched() {
			id := record.Catalog.CatalogID
			row.CatalogID = &id
			row.Language = record.Catalog.OriginalLanguage
			row.Genres = record.Catalog.Genres
			row.RuntimeMinutes = record.Catalog.RuntimeMinutes
			row.MatchMethod = record.MatchMethod
			row.MatchConfidence = record.MatchConfidence
		}
		out = append(out, row)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
