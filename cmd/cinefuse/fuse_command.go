package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cinefuse/internal/catalogstore"
	"cinefuse/internal/config"
	"cinefuse/internal/export"
	"cinefuse/internal/ingest"
	"cinefuse/internal/ippattern"
	"cinefuse/internal/linkage"
	"cinefuse/internal/movie"
	"cinefuse/internal/scope"
	"cinefuse/internal/studio"
)

func newFuseCommand(ctx *commandContext) *cobra.Command {
	var ledgerPath string
	var catalogPath string
	var outputPath string
	var format string
	var scopeName string
	var yearStart int
	var tiers []string

	cmd := &cobra.Command{
		Use:   "fuse",
		Short: "Link a box-office ledger against the catalog and classify the result",
		Long: `Fuse reads a box-office ledger CSV, links each row to a catalog record
by normalized title and release year, and derives studio tier and
franchise flags for every row. The catalog comes from the imported
catalog database unless --catalog points at a CSV file.

Examples:
  cinefuse fuse --ledger gross_2023.csv
  cinefuse fuse --ledger gross_2023.csv --catalog catalog.csv --format json
  cinefuse fuse --ledger gross_2023.csv --scope english_major -o fused.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			ledger, err := readLedgerFile(ledgerPath)
			if err != nil {
				return err
			}

			catalog, err := loadCatalog(cmd, cfg, catalogPath)
			if err != nil {
				return err
			}

			classifier, err := studio.NewClassifier()
			if err != nil {
				return fmt.Errorf("build studio classifier: %w", err)
			}

			pipeline, err := linkage.NewPipeline(cfg.Matching.Policy(), classifier, ippattern.NewDetector(), logger)
			if err != nil {
				return fmt.Errorf("build pipeline: %w", err)
			}

			result, err := pipeline.Run(ledger, catalog)
			if err != nil {
				return fmt.Errorf("run pipeline: %w", err)
			}

			records := result.Records
			activeScope, err := resolveScope(cfg, scopeName, yearStart, tiers)
			if err != nil {
				return err
			}
			records = activeScope.Apply(records)

			if err := writeRecords(cmd, records, outputPath, format); err != nil {
				return err
			}

			printRunSummary(cmd.ErrOrStderr(), result.Report, activeScope.Name, len(records))
			return nil
		},
	}

	cmd.Flags().StringVarP(&ledgerPath, "ledger", "l", "", "Box-office ledger CSV (required)")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog CSV; defaults to the imported catalog database")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file; defaults to stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: csv, json, or table")
	cmd.Flags().StringVar(&scopeName, "scope", "", "Dataset scope: full, english, major, or english_major")
	cmd.Flags().IntVar(&yearStart, "year-start", 0, "Drop records released before this year")
	cmd.Flags().StringSliceVar(&tiers, "tiers", nil, "Restrict output to these studio tiers (major, mid-tier, independent, unknown)")
	_ = cmd.MarkFlagRequired("ledger")

	return cmd
}

func readLedgerFile(path string) ([]movie.LedgerRecord, error) {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve ledger path: %w", err)
	}
	file, err := os.Open(expanded)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer file.Close()

	ledger, err := ingest.ReadLedger(file)
	if err != nil {
		return nil, fmt.Errorf("read ledger %s: %w", expanded, err)
	}
	return ledger, nil
}

func loadCatalog(cmd *cobra.Command, cfg *config.Config, catalogPath string) ([]movie.CatalogRecord, error) {
	if strings.TrimSpace(catalogPath) != "" {
		expanded, err := config.ExpandPath(catalogPath)
		if err != nil {
			return nil, fmt.Errorf("resolve catalog path: %w", err)
		}
		file, err := os.Open(expanded)
		if err != nil {
			return nil, fmt.Errorf("open catalog: %w", err)
		}
		defer file.Close()

		catalog, err := ingest.ReadCatalog(file)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", expanded, err)
		}
		return catalog, nil
	}

	store, err := catalogstore.Open(cfg.Paths.CatalogDB)
	if err != nil {
		return nil, fmt.Errorf("open catalog database: %w", err)
	}
	defer store.Close()

	catalog, err := store.List(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("catalog database %s is empty; run `cinefuse catalog import` or pass --catalog", cfg.Paths.CatalogDB)
	}
	return catalog, nil
}

func resolveScope(cfg *config.Config, name string, yearStart int, tiers []string) (scope.Scope, error) {
	if strings.TrimSpace(name) == "" {
		name = cfg.Scope.Name
	}
	if yearStart == 0 {
		yearStart = cfg.Scope.YearStart
	}
	active, err := scope.Named(name, yearStart)
	if err != nil {
		return scope.Scope{}, fmt.Errorf("resolve scope: %w", err)
	}
	if len(tiers) > 0 {
		allowed := make([]movie.StudioTier, 0, len(tiers))
		for _, value := range tiers {
			tier, err := movie.ParseStudioTier(value)
			if err != nil {
				return scope.Scope{}, fmt.Errorf("resolve scope: %w", err)
			}
			allowed = append(allowed, tier)
		}
		active.Tiers = allowed
	}
	return active, nil
}

func writeRecords(cmd *cobra.Command, records []movie.ClassifiedRecord, outputPath, format string) error {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		if outputPath == "" && stdoutIsTerminal() {
			format = "table"
		} else {
			format = "csv"
		}
	}

	var out io.Writer = cmd.OutOrStdout()
	if strings.TrimSpace(outputPath) != "" {
		expanded, err := config.ExpandPath(outputPath)
		if err != nil {
			return fmt.Errorf("resolve output path: %w", err)
		}
		file, err := os.Create(expanded)
		if err != nil {
			return fmt.Errorf("create output %s: %w", expanded, err)
		}
		defer file.Close()
		out = file
	}

	switch format {
	case "csv":
		return export.WriteCSV(out, records)
	case "json":
		return export.WriteJSON(out, records)
	case "table":
		fmt.Fprintln(out, renderRecordTable(records))
		return nil
	default:
		return fmt.Errorf("unknown output format %q (expected csv, json, or table)", format)
	}
}

func printRunSummary(out io.Writer, report linkage.RunReport, scopeName string, exported int) {
	fmt.Fprintf(out, "Run %s: %d ledger rows, %d exact, %d fuzzy, %d unmatched, %d rejected\n",
		report.RunID, report.LedgerTotal, report.MatchedExact, report.MatchedFuzzy,
		report.Unmatched, len(report.Rejected))
	fmt.Fprintf(out, "Scope %s: %d records exported\n", scopeName, exported)
}
