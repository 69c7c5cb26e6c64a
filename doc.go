// Package tabular fills in-memory data tables from arbitrary Go values.
//
// The Adapter inspects a source, decides the column set, and appends one row
// per source element to a dataset.DataTable.
//
// Basic Usage
//
//	adapter := tabular.New()
//	table := dataset.NewDataTable("Contacts")
//	err := adapter.Fill(table, contacts)
//
// # Column Discovery
//
// Discovery follows these rules in order:
//  1. A ListSource is replaced by its list
//  2. A View (or a *dataset.DataTable, through its default view) contributes its column names
//  3. A slice or array is judged by its first element: primitive values give a
//     single "Value" column, strings a single "Text" column, other values are scanned
//  4. Any other value is scanned: PropertySource names first, then exported
//     struct fields in declaration order, or the sorted keys of a string-keyed map
//
// An empty sequence has no columns and a fill of it writes nothing.
// Duplicate names are kept unless WithDedupColumns is set.
//
// # Cell Errors
//
// A cell that cannot be read does not abort the fill. Its text is the
// *FieldError message and the error is recorded on the row:
//
//	row.ColumnError("Name") // *tabular.FieldError
//
// # Converters
//
// Register converters for specific member names:
//
//	adapter.RegisterConverter("Freq", converters.FrequencyText)
//
// Value converters for null.* types, time.Time and JSON columns are registered by default.
//
// # Ignoring Fields
//
// Fields can be excluded from discovery using struct tags:
//
//	type User struct {
//	    Name     string
//	    Password string `adapter:"ignore"`
//	    Token    string `adapter:"-"`
//	}
//
// # Embedded Structs
//
// Embedded struct fields (including pointer-to-struct) are flattened and treated
// as if they were defined directly in the parent struct. A nil embedded pointer
// makes its fields fail extraction.
//
// # Thread Safety
//
// The Adapter is safe for concurrent use as long as each goroutine fills its own
// table. Internals use a copy-on-write converter registry and cached metadata.
package tabular
