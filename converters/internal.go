package converters

import (
	"math"
	"time"

	"github.com/Station-Manager/errors"
	"github.com/goccy/go-json"
)

// CheckString asserts src is a non-empty string.
func CheckString(op errors.Op, src any) (string, error) {
	srcVal, ok := src.(string)
	if !ok {
		return "", errors.New(op).Errorf("Given parameter not a string, got %T", src)
	}
	if srcVal == "" {
		return "", errors.New(op).Msg(ErrMsgParamEmpty)
	}
	return srcVal, nil
}

// CheckInt64 accepts any integer kind, integral json.Number values, and
// float64 values without a fractional part.
func CheckInt64(op errors.Op, src any) (int64, error) {
	switch v := src.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case uint:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return -1, errors.New(op).Errorf("Given parameter overflows int64: %d", v)
		}
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return -1, errors.New(op).Err(err).Msg("Given parameter not an integer")
		}
		return i, nil
	case float64:
		if v != math.Trunc(v) {
			return -1, errors.New(op).Errorf("Given parameter has a fractional part: %v", v)
		}
		return int64(v), nil
	}
	return -1, errors.New(op).Errorf("Given parameter not an integer, got %T", src)
}

// CheckTime asserts src is a time.Time.
func CheckTime(op errors.Op, src any) (time.Time, error) {
	srcVal, ok := src.(time.Time)
	if !ok {
		return time.Time{}, errors.New(op).Errorf("Given parameter not a time.Time, got %T", src)
	}
	return srcVal, nil
}
