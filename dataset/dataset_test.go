package dataset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFilledTable(t *testing.T) *DataTable {
	t.Helper()
	tbl := NewDataTable("people")
	tbl.EnsureColumn("Name")
	tbl.EnsureColumn("City")
	for _, p := range [][2]string{{"Carol", "Oslo"}, {"Alice", "Boston"}, {"Bob", "Oslo"}} {
		row := tbl.NewRow()
		require.NoError(t, row.Set("Name", p[0]))
		require.NoError(t, row.Set("City", p[1]))
		require.NoError(t, tbl.AddRow(row))
	}
	return tbl
}

func TestDataTable_Columns(t *testing.T) {
	tbl := NewDataTable("t")

	_, err := tbl.AddColumn("A")
	require.NoError(t, err)
	_, err = tbl.AddColumn("A")
	assert.True(t, errors.Is(err, ErrDuplicateColumn))

	b := tbl.EnsureColumn("B")
	again := tbl.EnsureColumn("B")
	assert.Same(t, b, again)
	assert.Equal(t, 1, b.Ordinal())
	assert.Equal(t, []string{"A", "B"}, tbl.ColumnNames())
	assert.True(t, tbl.HasColumn("A"))
	assert.False(t, tbl.HasColumn("C"))
}

func TestDataTable_AddRow(t *testing.T) {
	tbl := NewDataTable("t")
	tbl.EnsureColumn("A")
	other := NewDataTable("o")

	row := tbl.NewRow()
	require.NoError(t, row.Set("A", "x"))
	assert.False(t, row.Attached())
	assert.Equal(t, 0, tbl.RowCount())

	assert.ErrorIs(t, other.AddRow(row), ErrForeignRow)
	require.NoError(t, tbl.AddRow(row))
	assert.ErrorIs(t, tbl.AddRow(row), ErrRowAttached)
	assert.Equal(t, 1, tbl.RowCount())

	got, err := tbl.Row(0)
	require.NoError(t, err)
	assert.Same(t, row, got)
	_, err = tbl.Row(1)
	assert.ErrorIs(t, err, ErrInvalidRow)
}

func TestDataRow_GetSet(t *testing.T) {
	tbl := NewDataTable("t")
	tbl.EnsureColumn("A")
	row := tbl.NewRow()

	assert.ErrorIs(t, row.Set("missing", "x"), ErrColumnNotFound)
	_, err := row.Get("missing")
	assert.ErrorIs(t, err, ErrColumnNotFound)

	require.NoError(t, row.Set("A", "x"))
	v, err := row.Get("A")
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	// Columns added later read as empty text
	tbl.EnsureColumn("B")
	assert.Equal(t, []string{"x", ""}, row.Values())
}

func TestDataRow_ColumnErrors(t *testing.T) {
	tbl := NewDataTable("t")
	tbl.EnsureColumn("A")
	tbl.EnsureColumn("B")
	row := tbl.NewRow()
	assert.False(t, row.HasErrors())

	boom := errors.New("boom")
	row.SetColumnError("B", boom)
	assert.True(t, row.HasErrors())
	assert.Equal(t, boom, row.ColumnError("B"))
	assert.Nil(t, row.ColumnError("A"))
	assert.Equal(t, []string{"B"}, row.ColumnsInError())

	row.SetColumnError("B", nil)
	assert.False(t, row.HasErrors())
}

func TestDataTable_FindWithIndex(t *testing.T) {
	tbl := newFilledTable(t)

	scanned, err := tbl.Find("City", "Oslo")
	require.NoError(t, err)
	assert.Len(t, scanned, 2)

	require.NoError(t, tbl.CreateIndex("City"))
	indexed, err := tbl.Find("City", "Oslo")
	require.NoError(t, err)
	assert.Equal(t, scanned, indexed)

	_, err = tbl.Find("Nope", "x")
	assert.ErrorIs(t, err, ErrColumnNotFound)
	assert.ErrorIs(t, tbl.CreateIndex("Nope"), ErrColumnNotFound)
}

func TestDataTable_BulkLoadRebuildsIndex(t *testing.T) {
	tbl := newFilledTable(t)
	require.NoError(t, tbl.CreateIndex("City"))

	tbl.BeginLoadData()
	assert.True(t, tbl.Loading())
	row := tbl.NewRow()
	require.NoError(t, row.Set("Name", "Dave"))
	require.NoError(t, row.Set("City", "Oslo"))
	require.NoError(t, tbl.AddRow(row))

	// Falls back to a scan while loading
	during, err := tbl.Find("City", "Oslo")
	require.NoError(t, err)
	assert.Len(t, during, 3)

	tbl.EndLoadData()
	assert.False(t, tbl.Loading())
	after, err := tbl.Find("City", "Oslo")
	require.NoError(t, err)
	assert.Len(t, after, 3)
}

func TestDataTable_SetUpdatesIndex(t *testing.T) {
	tbl := newFilledTable(t)
	require.NoError(t, tbl.CreateIndex("City"))

	first, err := tbl.Row(0)
	require.NoError(t, err)
	require.NoError(t, first.Set("City", "Boston"))

	boston, err := tbl.Find("City", "Boston")
	require.NoError(t, err)
	assert.Len(t, boston, 2)
}

func TestDataTable_Clear(t *testing.T) {
	tbl := newFilledTable(t)
	rows := tbl.Rows()
	tbl.Clear()
	assert.Equal(t, 0, tbl.RowCount())
	assert.Equal(t, []string{"Name", "City"}, tbl.ColumnNames())
	assert.False(t, rows[0].Attached())
}

func TestDataSet_Tables(t *testing.T) {
	ds := NewDataSet("set")
	a := NewDataTable("a")
	b := NewDataTable("b")

	require.NoError(t, ds.AddTable(a))
	require.NoError(t, ds.AddTable(b))
	assert.ErrorIs(t, ds.AddTable(NewDataTable("a")), ErrDuplicateTable)
	assert.ErrorIs(t, ds.AddTable(nil), ErrNilTable)
	assert.Equal(t, []string{"a", "b"}, ds.TableNames())

	got, ok := ds.Table("b")
	require.True(t, ok)
	assert.Same(t, b, got)

	assert.True(t, ds.RemoveTable("a"))
	assert.False(t, ds.RemoveTable("a"))
	assert.Equal(t, []string{"b"}, ds.TableNames())
	assert.Len(t, ds.Tables(), 1)
}
