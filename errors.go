package tabular

import "fmt"

// ErrorKind classifies why a cell could not be extracted.
type ErrorKind int

const (
	// MissingMember means the name resolves to neither a readable property nor a field.
	MissingMember ErrorKind = iota + 1
	// ExtractionFailure means a resolved member could not be read or converted.
	ExtractionFailure
	// AbsentViewColumn means a view row has no column of that name.
	AbsentViewColumn
)

func (k ErrorKind) String() string {
	switch k {
	case MissingMember:
		return "MissingMember"
	case ExtractionFailure:
		return "ExtractionFailure"
	case AbsentViewColumn:
		return "AbsentViewColumn"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// FieldError is the failure to extract one cell. Fill renders its message as
// the cell text and records it as the row's column error.
type FieldError struct {
	Kind  ErrorKind
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	switch e.Kind {
	case MissingMember:
		return fmt.Sprintf("no such value exists: %s", e.Field)
	case AbsentViewColumn:
		if e.Err != nil {
			return fmt.Sprintf("no such column in view: %s: %v", e.Field, e.Err)
		}
		return fmt.Sprintf("no such column in view: %s", e.Field)
	default:
		if e.Err != nil {
			return fmt.Sprintf("error reading value %s: %v", e.Field, e.Err)
		}
		return fmt.Sprintf("error reading value %s", e.Field)
	}
}

func (e *FieldError) Unwrap() error { return e.Err }

func missingMember(field string) error {
	return &FieldError{Kind: MissingMember, Field: field}
}

func extractionFailure(field string, err error) error {
	return &FieldError{Kind: ExtractionFailure, Field: field, Err: err}
}
