package tabular

import "github.com/Station-Manager/tabular/dataset"

// Column names used for sequences of scalars and strings.
const (
	ValueColumn = "Value"
	TextColumn  = "Text"
)

// ListSource is implemented by wrappers whose rows live in an underlying
// list. The adapter unwraps the list before discovery and materialization.
type ListSource interface {
	List() any
}

// PropertySource is implemented by objects that publish named, readable
// properties. Properties are discovered before struct fields and are read
// through ReadProperty, so implementations may refuse a read.
type PropertySource interface {
	PropertyNames() []string
	ReadProperty(name string) (any, error)
}

// PropertyLookup is an optional companion to PropertySource that answers
// whether a property exists without listing every name.
type PropertyLookup interface {
	HasProperty(name string) bool
}

// View is a tabular source that already has named columns, such as a
// *dataset.DataView.
type View = dataset.View

// RowView is a single row of a View.
type RowView = dataset.RowView
