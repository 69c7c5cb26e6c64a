package common

import (
	"time"

	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
)

// TimeToText returns a converter rendering time.Time and null.Time values
// with layout. The zero time and NULL become nil.
func TimeToText(layout string) func(any) (any, error) {
	return func(src any) (any, error) {
		const op errors.Op = "converters.common.TimeToText"

		var t time.Time
		switch v := src.(type) {
		case time.Time:
			t = v
		case null.Time:
			if !v.Valid {
				return nil, nil
			}
			t = v.Time
		default:
			return nil, errors.New(op).Errorf("Given parameter not a time.Time or null.Time, got %T", src)
		}
		if t.IsZero() {
			return nil, nil
		}
		return t.Format(layout), nil
	}
}
