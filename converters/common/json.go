package common

import (
	"bytes"

	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/goccy/go-json"
)

// JSONToText renders a JSON column value (null.JSON, sqlboiler types.JSON or
// json.RawMessage) as compact JSON text. NULL and empty documents become nil.
func JSONToText(src any) (any, error) {
	const op errors.Op = "converters.common.JSONToText"

	var raw []byte
	switch v := src.(type) {
	case null.JSON:
		if !v.Valid {
			return nil, nil
		}
		raw = v.JSON
	case boilertypes.JSON:
		raw = v
	case json.RawMessage:
		raw = v
	default:
		return nil, errors.New(op).Errorf("Given parameter not a JSON value, got %T", src)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return buf.String(), nil
}
