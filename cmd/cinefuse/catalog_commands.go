package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cinefuse/internal/catalogstore"
	"cinefuse/internal/config"
	"cinefuse/internal/ingest"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the local catalog database",
	}

	catalogCmd.AddCommand(newCatalogImportCommand(ctx))
	catalogCmd.AddCommand(newCatalogStatsCommand(ctx))

	return catalogCmd
}

func newCatalogImportCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <catalog.csv>",
		Short: "Import catalog records from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			path, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve catalog path: %w", err)
			}
			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer file.Close()

			records, err := ingest.ReadCatalog(file)
			if err != nil {
				return fmt.Errorf("read catalog %s: %w", path, err)
			}

			store, err := catalogstore.Open(cfg.Paths.CatalogDB)
			if err != nil {
				return fmt.Errorf("open catalog database: %w", err)
			}
			defer store.Close()

			imported, err := store.Import(cmd.Context(), records)
			if err != nil {
				return fmt.Errorf("import catalog: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records into %s\n", imported, cfg.Paths.CatalogDB)
			return nil
		},
	}
	return cmd
}

func newCatalogStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog database statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			store, err := catalogstore.Open(cfg.Paths.CatalogDB)
			if err != nil {
				return fmt.Errorf("open catalog database: %w", err)
			}
			defer store.Close()

			count, err := store.Count(cmd.Context())
			if err != nil {
				return fmt.Errorf("count catalog: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Database: %s\n", cfg.Paths.CatalogDB)
			fmt.Fprintf(out, "Records:  %d\n", count)
			return nil
		},
	}
}
