package commands

import (
	"testing"

	"github.com/leapstack-labs/datamodel/internal/cli/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		mode    output.Mode
		wantOut []string
	}{
		{
			name:    "LP64 markdown",
			args:    []string{"LP64"},
			mode:    output.ModeMarkdown,
			wantOut: []string{"| LP64 | 1 | 2 | 4 | 8 | 8 | 8 |"},
		},
		{
			name:    "lowercase name",
			args:    []string{"llp64"},
			mode:    output.ModeMarkdown,
			wantOut: []string{"| LLP64 | 1 | 2 | 4 | 4 | 8 | 8 |"},
		},
		{
			name:    "IP16 leaves types unspecified",
			args:    []string{"IP16"},
			mode:    output.ModeCSV,
			wantOut: []string{"IP16,1,0,2,0,0,2"},
		},
		{
			name:    "text mode prints description",
			args:    []string{"LP64"},
			mode:    output.ModeText,
			wantOut: []string{"LP64", "64-bit Unix/Linux"},
		},
		{
			name:    "json",
			args:    []string{"silp64"},
			mode:    output.ModeJSON,
			wantOut: []string{`"model": "SILP64"`, `"short": 8`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, NewShowCommand(), tt.mode, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.wantOut {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestShowCommandUnknownModel(t *testing.T) {
	_, err := executeCommand(t, NewShowCommand(), output.ModeMarkdown, "LP128")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown data model "LP128"`)
	assert.Contains(t, err.Error(), "LP64", "error lists the valid names")
}

func TestShowCommandArgCount(t *testing.T) {
	_, err := executeCommand(t, NewShowCommand(), output.ModeMarkdown)
	assert.Error(t, err)

	_, err = executeCommand(t, NewShowCommand(), output.ModeMarkdown, "LP64", "ILP32")
	assert.Error(t, err)
}
