package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Station-Manager/tabular/dataset"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable(t *testing.T) *dataset.DataTable {
	t.Helper()
	tbl := dataset.NewDataTable("contacts")
	for _, c := range []string{"Call", "Name"} {
		_, err := tbl.AddColumn(c)
		require.NoError(t, err)
	}
	for _, rec := range [][]string{{"M0CMC", "Marc, Jr"}, {"7Q5MLV", `say "hi"`}} {
		row := tbl.NewRow()
		require.NoError(t, row.Set("Call", rec[0]))
		require.NoError(t, row.Set("Name", rec[1]))
		require.NoError(t, tbl.AddRow(row))
	}
	return tbl
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, sampleTable(t)))

	out := buf.String()
	assert.Contains(t, out, "CALL")
	assert.Contains(t, out, "M0CMC")
	assert.Contains(t, out, "┌")
	assert.True(t, strings.HasSuffix(out, "(2 rows)\n"))
}

func TestRenderTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, dataset.NewDataTable("empty")))
	assert.Equal(t, "(0 rows)\n", buf.String())
}

func TestRenderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderMarkdown(&buf, sampleTable(t)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, strings.ToLower(lines[0]), "call")
	assert.Contains(t, lines[2], "M0CMC")
}

func TestRenderCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderCSV(&buf, sampleTable(t)))

	want := "Call,Name\nM0CMC,\"Marc, Jr\"\n7Q5MLV,\"say \"\"hi\"\"\"\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, sampleTable(t)))

	var got []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []map[string]string{
		{"Call": "M0CMC", "Name": "Marc, Jr"},
		{"Call": "7Q5MLV", "Name": `say "hi"`},
	}, got)

	out := buf.String()
	assert.Less(t, strings.Index(out, `"Call"`), strings.Index(out, `"Name"`))
}

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		want    string
		wantErr bool
	}{
		{name: "default", format: "", want: "(2 rows)"},
		{name: "table", format: "table", want: "(2 rows)"},
		{name: "markdown alias", format: "markdown", want: "M0CMC"},
		{name: "csv upper case", format: "CSV", want: "Call,Name"},
		{name: "json", format: "json", want: "7Q5MLV"},
		{name: "unknown", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Render(&buf, sampleTable(t), tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.want)
		})
	}

	assert.Error(t, Render(&bytes.Buffer{}, nil, "table"))
}
