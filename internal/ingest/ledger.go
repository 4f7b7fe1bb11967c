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

// ErrMissingColumn indicates a required CSV column is absent.
var ErrMissingColumn = errors.New("ingest: missing required column")

// header maps lowercased column names to their index, accepting the
// first occurrence of any accepted variant.
type header map[string]int

func readHeader(record []string) header {
	h := make(header, len(record))
	for i, name := range record {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, seen := h[name]; !seen {
			h[name] = i
		}
	}
	return h
}

func (h header) column(record []string, names ...string) (string, bool) {
	for _, name := range names {
		if idx, ok := h[name]; ok && idx < len(record) {
			return strings.TrimSpace(record[idx]), true
		}
	}
	return "", false
}

func (h header) require(names ...string) error {
	for _, name := range names {
		if _, ok := h[name]; ok {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrMissingColumn, names[0])
}

// ReadLedger parses box-office ledger rows. Required columns: title,
// year (or release_year), and a gross column (domestic_gross, gross, or
// revenue_domestic). distributor is optional.
func ReadLedger(r io.Reader) ([]movie.LedgerRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	first, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read ledger header: %w", err)
	}
	head := readHeader(first)
	if err := head.require("title"); err != nil {
		return nil, err
	}
	if err := head.require("release_year", "year"); err != nil {
		return nil, err
	}
	if err := head.require("domestic_gross", "gross", "revenue_domestic"); err != nil {
		return nil, err
	}

	var records []movie.LedgerRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read ledger row %d: %w", line, err)
		}

		title, _ := head.column(row, "title")
		yearText, _ := head.column(row, "release_year", "year")
		grossText, _ := head.column(row, "domestic_gross", "gross", "revenue_domestic")
		distributor, _ := head.column(row, "distributor", "studio")

		year, err := strconv.Atoi(yearText)
		if err != nil {
			return nil, fmt.Errorf("ledger row %d: parse year %q: %w", line, yearText, err)
		}
		gross, err := parseMoney(grossText)
		if err != nil {
			return nil, fmt.Errorf("ledger row %d: parse gross %q: %w", line, grossText, err)
		}

		records = append(records, movie.LedgerRecord{
			Title:         title,
			ReleaseYear:   year,
			DomesticGross: gross,
			Distributor:   distributor,
		})
	}
	return records, nil
}

// parseMoney accepts plain integers and currency-formatted amounts
// ("$758,539,785").
func parseMoney(text string) (int64, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(text)
	if cleaned == "" {
		return 0, nil
	}
	return strconv.ParseInt(cleaned, 10, 64)
}
