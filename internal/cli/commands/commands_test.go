package commands

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/leapstack-labs/datamodel/internal/cli/config"
	"github.com/leapstack-labs/datamodel/internal/cli/output"
	"github.com/leapstack-labs/datamodel/internal/testutil"
	"github.com/spf13/cobra"
)

// executeCommand runs a subcommand with an injected renderer and test
// logger, returning everything it rendered.
func executeCommand(t *testing.T, cmd *cobra.Command, mode output.Mode, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	r := output.NewRenderer(buf, io.Discard, mode).NoColor(true)

	ctx := output.NewContext(context.Background(), r)
	ctx = config.WithLogger(ctx, testutil.NewTestLogger(t))

	cmd.SetArgs(args)
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	err := cmd.ExecuteContext(ctx)
	return buf.String(), err
}
