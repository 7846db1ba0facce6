package commands

import (
	"github.com/leapstack-labs/datamodel/internal/cli/output"
	"github.com/leapstack-labs/datamodel/pkg/datamodel"
	"github.com/spf13/cobra"
)

// NewTableCommand creates the table command.
func NewTableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Show the size table for every data model",
		Long: `Print the byte sizes of char, short, int, long, long long, and pointer
for every known data model. A size of 0 means the model leaves that
type unspecified (e.g. long long under IP16).

Output adapts to environment:
  - Terminal: styled table
  - Piped/Scripted: markdown
  - Use --output to override: auto, text, markdown, json, csv`,
		Example: `  # Print the full table
  datamodel table

  # Table as JSON
  datamodel table --output json

  # Table as CSV
  datamodel table -o csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTable(cmd)
		},
	}
}

func runTable(cmd *cobra.Command) error {
	r := output.FromContext(cmd.Context())

	models := append(datamodel.Models(), datamodel.Unknown)
	rows := make([]map[string]any, 0, len(models))
	for _, m := range models {
		rows = append(rows, modelRow(m))
	}

	return renderRows(r, modelColumns(), rows)
}
