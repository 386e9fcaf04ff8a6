package card

import (
	"gopkg.in/src-d/go-errors.v1"
)

// ErrDecode is returned when an embedded profile record cannot be decoded.
// The container itself is valid when this error is returned.
var ErrDecode = errors.NewKind("embedded profile is corrupted")

// ErrEncode is returned when a profile cannot be serialized.
var ErrEncode = errors.NewKind("cannot encode profile")
