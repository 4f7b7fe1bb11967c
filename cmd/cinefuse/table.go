package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"cinefuse/internal/movie"
)

func renderRecordTable(records []movie.ClassifiedRecord) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Title", "Year", "Gross", "Tier", "Match", "Franchise", "Seq", "Rmk"})

	for _, record := range records {
		match := "-"
		if record.Matched() {
			match = record.MatchMethod + " " + strconv.FormatFloat(record.MatchConfidence, 'f', 2, 64)
		}
		franchise := record.FranchiseName
		if franchise == "" {
			franchise = "-"
		}
		tw.AppendRow(table.Row{
			record.Ledger.Title,
			record.Ledger.ReleaseYear,
			formatGross(record.Ledger.DomesticGross),
			string(record.StudioTier),
			match,
			franchise,
			yesNo(record.IsSequel),
			yesNo(record.IsRemake),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	return tw.Render()
}
