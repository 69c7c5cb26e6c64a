package converters

import (
	"time"

	"github.com/Station-Manager/errors"
)

// DateText renders a date as YYYY-MM-DD. The source is either a time.Time or
// a string in YYYYMMDD or YYYY-MM-DD format.
func DateText(src any) (any, error) {
	const op errors.Op = "converters.DateText"
	if t, ok := src.(time.Time); ok {
		return t.Format(time.DateOnly), nil
	}
	srcVal, err := CheckString(op, src)
	if err != nil {
		return "", errors.New(op).Err(err)
	}

	var retVal time.Time
	switch len(srcVal) {
	case 8:
		retVal, err = time.Parse("20060102", srcVal)
	case 10:
		if srcVal[4] != '-' || srcVal[7] != '-' {
			return "", errors.New(op).Msg(ErrMsgBadDateFormat)
		}
		retVal, err = time.Parse(time.DateOnly, srcVal)
	default:
		return "", errors.New(op).Msg(ErrMsgBadDateFormat)
	}
	if err != nil {
		return "", errors.New(op).Err(err).Msg(ErrMsgBadDateFormat)
	}
	return retVal.Format(time.DateOnly), nil
}

// TimeText renders a time of day as HH:MM. The source is either a time.Time
// or a string in HHMM or HH:MM format.
func TimeText(src any) (any, error) {
	const op errors.Op = "converters.TimeText"
	if t, ok := src.(time.Time); ok {
		return t.Format("15:04"), nil
	}
	srcVal, err := CheckString(op, src)
	if err != nil {
		return "", errors.New(op).Err(err)
	}

	var retVal time.Time
	switch {
	case len(srcVal) == 5 && srcVal[2] == ':':
		retVal, err = time.Parse("15:04", srcVal)
	case len(srcVal) == 4:
		retVal, err = time.Parse("1504", srcVal)
	default:
		return "", errors.New(op).Msg(ErrMsgBadTimeFormat)
	}
	if err != nil {
		return "", errors.New(op).Err(err).Msg(ErrMsgBadTimeFormat)
	}
	return retVal.Format("15:04"), nil
}
