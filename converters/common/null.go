package common

import (
	"database/sql/driver"

	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
)

// NullToValue unwraps a nullable model value. Invalid (NULL) values become nil
// so the caller renders its configured null text.
func NullToValue(src any) (any, error) {
	const op errors.Op = "converters.common.NullToValue"

	switch v := src.(type) {
	case null.String:
		if !v.Valid {
			return nil, nil
		}
		return v.String, nil
	case null.Bool:
		if !v.Valid {
			return nil, nil
		}
		return v.Bool, nil
	case null.Int:
		if !v.Valid {
			return nil, nil
		}
		return v.Int, nil
	case null.Int64:
		if !v.Valid {
			return nil, nil
		}
		return v.Int64, nil
	case null.Float64:
		if !v.Valid {
			return nil, nil
		}
		return v.Float64, nil
	case null.Time:
		if !v.Valid {
			return nil, nil
		}
		return v.Time, nil
	case driver.Valuer:
		// remaining null.* types all implement driver.Valuer
		val, err := v.Value()
		if err != nil {
			return nil, errors.New(op).Err(err)
		}
		return val, nil
	}
	return nil, errors.New(op).Errorf("Given parameter not a nullable value, got %T", src)
}
