package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Station-Manager/tabular/sqlstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contactsJSON = `[
  {"call": "M0CMC", "band": "20m", "freq": 14.32},
  {"call": "7Q5MLV", "band": "40m", "freq": 7.074}
]`

const contactsYAML = `
- call: M0CMC
  band: 20m
- call: 7Q5MLV
  band: 40m
`

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRender_JSONInputAsCSV(t *testing.T) {
	input := writeInput(t, "contacts.json", contactsJSON)

	out, err := run(t, "", "render", "--input", input, "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "band,call,freq\n20m,M0CMC,14.32\n40m,7Q5MLV,7.074\n", out)
}

func TestRender_YAMLInputAsTable(t *testing.T) {
	input := writeInput(t, "contacts.yaml", contactsYAML)

	out, err := run(t, "", "render", "-i", input)
	require.NoError(t, err)
	assert.Contains(t, out, "7Q5MLV")
	assert.Contains(t, out, "(2 rows)")
}

func TestRender_Stdin(t *testing.T) {
	out, err := run(t, `{"call":"M0CMC"}`, "render", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "M0CMC")
}

func TestRender_Errors(t *testing.T) {
	input := writeInput(t, "contacts.json", contactsJSON)

	_, err := run(t, "", "render", "--input", input, "--format", "xml")
	assert.Error(t, err)

	_, err = run(t, "", "render", "--input", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := writeInput(t, "bad.yaml", "- 1\n- 2\n")
	_, err = run(t, "", "render", "--input", bad)
	assert.Error(t, err)
}

func TestStore_SQLite(t *testing.T) {
	input := writeInput(t, "contacts.json", contactsJSON)
	dsn := filepath.Join(t.TempDir(), "log.db")

	out, err := run(t, "", "store", "--input", input, "--dsn", dsn, "--table", "qso")
	require.NoError(t, err)
	assert.Equal(t, "stored 2 rows in qso\n", out)

	store, err := sqlstore.Open(context.Background(), "sqlite", dsn)
	require.NoError(t, err)
	defer store.Close()

	loaded, err := store.Load(context.Background(), "qso")
	require.NoError(t, err)
	assert.Equal(t, []string{"band", "call", "freq"}, loaded.ColumnNames())
	assert.Equal(t, 2, loaded.RowCount())
}

func TestStore_RequiresDSN(t *testing.T) {
	input := writeInput(t, "contacts.json", contactsJSON)

	_, err := run(t, "", "store", "--input", input)
	assert.Error(t, err)
}

func TestTableName(t *testing.T) {
	assert.Equal(t, "given", tableName("given", "x.json"))
	assert.Equal(t, "contacts", tableName("", "/tmp/contacts.yaml"))
	assert.Equal(t, "stdin", tableName("", "-"))
}
