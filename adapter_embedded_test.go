package tabular

import (
	"errors"
	"testing"

	"github.com/Station-Manager/tabular/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type address struct {
	Street string
	City   string
}

// Test basic pointer-to-struct embedded field
func TestFill_PointerEmbeddedStruct(t *testing.T) {
	type person struct {
		Name string
		*address
	}

	table := dataset.NewDataTable("people")
	err := New().Fill(table, []person{{Name: "Alice", address: &address{Street: "123 Main St", City: "Boston"}}})
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Street", "City"}, table.ColumnNames())
	assert.Equal(t, [][]string{{"Alice", "123 Main St", "Boston"}}, cells(t, table))
}

// Test nil pointer-to-struct embedded field
func TestFill_NilPointerEmbeddedStruct(t *testing.T) {
	type person struct {
		Name string
		*address
	}

	table := dataset.NewDataTable("people")
	require.NoError(t, New().Fill(table, []person{{Name: "Bob"}}))

	row, err := table.Row(0)
	require.NoError(t, err)
	name, _ := row.Get("Name")
	assert.Equal(t, "Bob", name)

	var fe *FieldError
	require.True(t, errors.As(row.ColumnError("Street"), &fe))
	assert.Equal(t, ExtractionFailure, fe.Kind)
	assert.Equal(t, []string{"Street", "City"}, row.ColumnsInError())
}

// Test that a shallower field shadows a promoted one
func TestFill_ShadowedEmbeddedField(t *testing.T) {
	type inner struct {
		ID   int
		Code string
	}
	type outer struct {
		inner
		Code string
	}

	table := dataset.NewDataTable("outer")
	require.NoError(t, New().Fill(table, []outer{{inner: inner{ID: 1, Code: "deep"}, Code: "top"}}))

	assert.Equal(t, []string{"ID", "Code"}, table.ColumnNames())
	assert.Equal(t, [][]string{{"1", "top"}}, cells(t, table))
}

// Test that a self-referencing embedded pointer does not recurse forever
func TestFill_CyclicEmbedding(t *testing.T) {
	type node struct {
		Label string
		*node
	}

	cols := New().DiscoverColumns(node{Label: "root"})
	assert.Equal(t, []string{"Label"}, cols)
}

func TestFill_UnexportedFieldsSkipped(t *testing.T) {
	type mixed struct {
		Public  string
		private string
	}

	cols := New().DiscoverColumns([]mixed{{Public: "a", private: "b"}})
	assert.Equal(t, []string{"Public"}, cols)
}
