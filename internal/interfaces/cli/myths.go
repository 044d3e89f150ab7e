package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/materna-health/materna/internal/myths"
)

// mythResults adapts search output for the table formatter.
type mythResults struct {
	Classification myths.Classification `json:"classification"`
	Matches        []myths.Match        `json:"matches"`
}

func (r mythResults) TableHeaders() []string {
	return []string{"SCORE", "CATEGORY", "REGION", "MYTH"}
}

func (r mythResults) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Matches))
	for _, m := range r.Matches {
		rows = append(rows, []string{
			fmt.Sprintf("%d", m.Score),
			string(m.Record.Category),
			string(m.Record.Region),
			truncateString(m.Record.Myth, 60),
		})
	}
	return rows
}

func newMythsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "myths <question...>",
		Short: "Answer a pregnancy myth question from the reference dataset",
		Long:  "Myths classifies a free-text question by topic and region, then ranks\nthe matching myth/fact records by keyword overlap.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			class, matches := myths.Search(query, limit)
			results := mythResults{Classification: class, Matches: matches}

			if cliCtx.OutputFormat == "text" {
				return printMythsText(cmd, results)
			}
			return PrintResult(cmd, results)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 3, "maximum number of matches to show (0 for all)")

	return cmd
}

func printMythsText(cmd *cobra.Command, results mythResults) error {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Category: %s, region: %s\n", results.Classification.Category, results.Classification.Region)

	if len(results.Matches) == 0 {
		fmt.Fprintln(w, "No matching records; please ask a health worker.")
		return nil
	}

	for _, m := range results.Matches {
		fmt.Fprintf(w, "\nMyth: %s\nFact: %s\n", m.Record.Myth, m.Record.Fact)
	}
	return nil
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
