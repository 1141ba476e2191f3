package config

import "errors"

var (
	// ErrUnknownAttribute is returned when a requested attribute name was never registered.
	ErrUnknownAttribute = errors.New("unknown configuration attribute")
)
