package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cinefuse/internal/ippattern"
	"cinefuse/internal/studio"
)

func newClassifyCommand() *cobra.Command {
	var distributor string
	var language string
	var genres []string

	cmd := &cobra.Command{
		Use:   "classify <title>",
		Short: "Show studio tier and franchise flags for a single title",
		Long: `Classify runs the studio and franchise detectors against one title
without touching a ledger or the catalog. Useful for checking how a
specific release would be flagged.

Examples:
  cinefuse classify "Spider-Man: No Way Home"
  cinefuse classify "The Lion King" --distributor "Walt Disney" --genres Drama`,
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(args[0])
			if title == "" {
				return fmt.Errorf("title is required")
			}

			detector := ippattern.NewDetector()
			flags := detector.Detect(ippattern.Input{
				Title:            title,
				Genres:           genres,
				OriginalLanguage: language,
			})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Title: %s\n", title)

			if strings.TrimSpace(distributor) != "" {
				classifier, err := studio.NewClassifier()
				if err != nil {
					return fmt.Errorf("build studio classifier: %w", err)
				}
				tier, canonical := classifier.ClassifyCanonical(distributor)
				if canonical != "" {
					fmt.Fprintf(out, "Studio: %s (%s)\n", canonical, tier)
				} else {
					fmt.Fprintf(out, "Studio: %s\n", tier)
				}
			}

			fmt.Fprintf(out, "Franchise: %s\n", orDash(flags.FranchiseName))
			fmt.Fprintf(out, "Sequel: %s\n", yesNo(flags.IsSequel))
			fmt.Fprintf(out, "Remake: %s\n", yesNo(flags.IsRemake))
			return nil
		},
	}

	cmd.Flags().StringVarP(&distributor, "distributor", "d", "", "Distributor name to classify")
	cmd.Flags().StringVar(&language, "language", "", "Original language code (affects remake detection)")
	cmd.Flags().StringSliceVar(&genres, "genres", nil, "Genres (affects remake detection)")

	return cmd
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
