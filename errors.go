package zoned

import "errors"

var (
	// ErrUnknownZone is returned when a zone specifier does not resolve.
	ErrUnknownZone = errors.New("unknown time zone")
	// ErrInvalidDateTime is returned when a field combination is not a valid calendar point.
	ErrInvalidDateTime = errors.New("invalid date-time")
	// ErrOutOfRange is returned when arithmetic leaves the supported year range.
	ErrOutOfRange = errors.New("date-time out of range")
)
