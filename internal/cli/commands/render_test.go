package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/leapstack-labs/datamodel/internal/cli/output"
	"github.com/leapstack-labs/datamodel/pkg/datamodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelColumns(t *testing.T) {
	assert.Equal(t,
		[]string{"model", "char", "short", "int", "long", "long long", "pointer"},
		modelColumns())
}

func TestModelRow(t *testing.T) {
	row := modelRow(datamodel.LP64)

	assert.Equal(t, "LP64", row["model"])
	assert.Equal(t, 1, row["char"])
	assert.Equal(t, 2, row["short"])
	assert.Equal(t, 4, row["int"])
	assert.Equal(t, 8, row["long"])
	assert.Equal(t, 8, row["long long"])
	assert.Equal(t, 8, row["pointer"])
}

func TestRenderMarkdown(t *testing.T) {
	buf := new(bytes.Buffer)
	err := renderMarkdown(buf, modelColumns(), []map[string]any{modelRow(datamodel.LLP64)})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "| model | char | short | int | long | long long | pointer |", lines[0])
	assert.Equal(t, "| --- | --- | --- | --- | --- | --- | --- |", lines[1])
	assert.Equal(t, "| LLP64 | 1 | 2 | 4 | 4 | 8 | 8 |", lines[2])
}

func TestRenderCSV(t *testing.T) {
	buf := new(bytes.Buffer)
	err := renderCSV(buf, modelColumns(), []map[string]any{modelRow(datamodel.IP16)})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "model,char,short,int,long,long long,pointer", lines[0])
	assert.Equal(t, "IP16,1,0,2,0,0,2", lines[1])
}

func TestRenderJSON(t *testing.T) {
	buf := new(bytes.Buffer)
	err := renderJSON(buf, modelColumns(), []map[string]any{modelRow(datamodel.ILP32)})
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 1)

	assert.Equal(t, "ILP32", rows[0]["model"])
	assert.Equal(t, float64(4), rows[0]["int"])
	assert.Equal(t, float64(8), rows[0]["long_long"], "spaces in column names become underscores")
	assert.NotContains(t, rows[0], "long long")
}

func TestRenderText(t *testing.T) {
	buf := new(bytes.Buffer)
	err := renderText(buf, modelColumns(), []map[string]any{modelRow(datamodel.LP64)})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "LP64")
	assert.Contains(t, out, "MODEL") // go-pretty upper-cases headers
}

func TestRenderRowsModeSwitch(t *testing.T) {
	tests := []struct {
		mode output.Mode
		want string
	}{
		{output.ModeMarkdown, "| model |"},
		{output.ModeCSV, "model,char"},
		{output.ModeJSON, `"model": "LP64"`},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			buf := new(bytes.Buffer)
			r := output.NewRenderer(buf, buf, tt.mode)
			err := renderRows(r, modelColumns(), []map[string]any{modelRow(datamodel.LP64)})
			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestEscapeCSV(t *testing.T) {
	assert.Equal(t, "plain", escapeCSV("plain"))
	assert.Equal(t, `"a,b"`, escapeCSV("a,b"))
	assert.Equal(t, `"say ""hi"""`, escapeCSV(`say "hi"`))
}
