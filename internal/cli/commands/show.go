package commands

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/datamodel/internal/cli/config"
	"github.com/leapstack-labs/datamodel/internal/cli/output"
	"github.com/leapstack-labs/datamodel/pkg/datamodel"
	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <model>",
		Short: "Show type sizes for one data model",
		Long: `Print the byte sizes of char, short, int, long, long long, and pointer
under a single data model. Model names are case-insensitive.`,
		Example: `  # Sizes under LP64 (64-bit Unix/Linux)
  datamodel show LP64

  # Sizes under Win64's model, as JSON
  datamodel show llp64 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0])
		},
	}
}

func runShow(cmd *cobra.Command, name string) error {
	r := output.FromContext(cmd.Context())

	m, ok := datamodel.ParseModel(name)
	if !ok {
		return fmt.Errorf("unknown data model %q (valid: %s)", name, strings.Join(modelNames(), ", "))
	}

	config.Logger(cmd.Context()).Debug("showing model", "model", m.String())

	if r.EffectiveMode() == output.ModeText {
		styles := r.Styles()
		_, _ = fmt.Fprintf(r.Out(), "%s  %s\n",
			styles.Title.Render(m.String()),
			styles.Subtle.Render(m.Description()))
	}

	return renderRows(r, modelColumns(), []map[string]any{modelRow(m)})
}

func modelNames() []string {
	models := datamodel.Models()
	names := make([]string, len(models))
	for i, m := range models {
		names[i] = m.String()
	}
	return names
}
