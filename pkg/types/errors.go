// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// ErrMissingTimestamp is returned for a log document without a timestamp field.
var ErrMissingTimestamp = errors.New("log entry has no timestamp")

// ErrNotObject is returned when a search response body is not a JSON object.
var ErrNotObject = errors.New("body is not a JSON object")

// TimestampError reports a log document whose timestamp cannot be read as an instant.
type TimestampError struct {
	Value any
	Err   error
}

func (e *TimestampError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid timestamp %v: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("invalid timestamp of type %T", e.Value)
}

func (e *TimestampError) Unwrap() error { return e.Err }
