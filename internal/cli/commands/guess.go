package commands

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/datamodel/internal/cli/config"
	"github.com/leapstack-labs/datamodel/internal/cli/output"
	"github.com/leapstack-labs/datamodel/pkg/datamodel"
	"github.com/spf13/cobra"
)

// NewGuessCommand creates the guess command.
func NewGuessCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <int> <long> <pointer>",
		Short: "Guess the data model from observed type sizes",
		Long: `Guess the data model from the byte sizes of int, long, and pointer.
Prints "unknown" when no model matches the triple.

SILP64 is never guessed: it has the same int/long/pointer sizes as
ILP64 and the two differ only in the width of short, which this lookup
does not consider. 8 8 8 resolves to ILP64.`,
		Example: `  # 32-bit int, 64-bit long and pointer: LP64
  datamodel guess 4 8 8

  # Win64 sizes: LLP64
  datamodel guess 4 4 8

  # No matching model
  datamodel guess 9 9 9`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGuess(cmd, args)
		},
	}
}

func runGuess(cmd *cobra.Command, args []string) error {
	sizes := make([]int, 3)
	for i, name := range []string{"int", "long", "pointer"} {
		n, err := strconv.Atoi(args[i])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid %s size %q: expected a non-negative byte count", name, args[i])
		}
		sizes[i] = n
	}

	m := datamodel.New(sizes[0], sizes[1], sizes[2])
	config.Logger(cmd.Context()).Debug("guessed model",
		"int", sizes[0], "long", sizes[1], "pointer", sizes[2], "model", m.String())

	r := output.FromContext(cmd.Context())
	if r.EffectiveMode() == output.ModeText {
		styles := r.Styles()
		if m == datamodel.Unknown {
			_, _ = fmt.Fprintf(r.Out(), "%s\n",
				styles.Subtle.Render(fmt.Sprintf("no data model matches int=%d long=%d pointer=%d",
					sizes[0], sizes[1], sizes[2])))
			return nil
		}
		_, _ = fmt.Fprintf(r.Out(), "%s  %s\n",
			styles.Emphasis.Render(m.String()),
			styles.Subtle.Render(m.Description()))
		return renderRows(r, modelColumns(), []map[string]any{modelRow(m)})
	}

	cols := []string{"int", "long", "pointer", "model"}
	row := map[string]any{
		"int":     sizes[0],
		"long":    sizes[1],
		"pointer": sizes[2],
		"model":   m.String(),
	}
	return renderRows(r, cols, []map[string]any{row})
}
