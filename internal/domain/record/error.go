package record

import (
	"errors"
)

var (
	ErrDecode       = errors.New("malformed json payload")
	ErrFieldMissing = errors.New("field is missing")
	ErrFieldType    = errors.New("field has unexpected type")
)
