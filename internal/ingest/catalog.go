package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cinefuse/internal/movie"
)

// listSeparator splits multi-valued catalog columns (genres,
// production_companies). Pipe is the export default; semicolon appears
// in older dumps.
func splitList(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	sep := "|"
	if !strings.Contains(text, "|") && strings.Contains(text, ";") {
		sep = ";"
	}
	parts := strings.Split(text, sep)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ReadCatalog parses metadata-catalog rows. Required columns:
// catalog_id (or id) and title. Year, language, genres, runtime, and
// production companies are optional per-row.
func ReadCatalog(r io.Reader) ([]movie.CatalogRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	first, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}
	head := readHeader(first)
	if err := head.require("catalog_id", "id"); err != nil {
		return nil, err
	}
	if err := head.require("title"); err != nil {
		return nil, err
	}

	var records []movie.CatalogRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row %d: %w", line, err)
		}

		idText, _ := head.column(row, "catalog_id", "id")
		id, err := strconv.ParseInt(idText, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("catalog row %d: parse id %q: %w", line, idText, err)
		}

		title, _ := head.column(row, "title")
		yearText, _ := head.column(row, "release_year", "year")
		language, _ := head.column(row, "original_language", "language")
		genresText, _ := head.column(row, "genres", "genre_names")
		runtimeText, _ := head.column(row, "runtime_minutes", "runtime")
		companiesText, _ := head.column(row, "production_companies", "companies")

		record := movie.CatalogRecord{
			CatalogID:           id,
			Title:               title,
			OriginalLanguage:    strings.ToLower(language),
			Genres:              splitList(genresText),
			ProductionCompanies: splitList(companiesText),
		}
		if yearText != "" {
			if record.ReleaseYear, err = strconv.Atoi(yearText); err != nil {
				return nil, fmt.Errorf("catalog row %d: parse year %q: %w", line, yearText, err)
			}
		}
		if runtimeText != "" {
			if record.RuntimeMinutes, err = strconv.Atoi(runtimeText); err != nil {
				return nil, fmt.Errorf("catalog row %d: parse runtime %q: %w", line, runtimeText, err)
			}
		}

		records = append(records, record)
	}
	return records, nil
}
