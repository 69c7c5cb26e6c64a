package business

import "errors"

var (
	ErrNotAuthorized   = errors.New("not authorized")
	ErrUnknownProperty = errors.New("unknown property")
	ErrTypeMismatch    = errors.New("property type mismatch")
)
