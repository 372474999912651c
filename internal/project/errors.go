package project

import "errors"

var (
	// Input errors
	ErrMissingField       = errors.New("required field is missing")
	ErrUnsupportedFormat  = errors.New("unsupported config format")
	ErrInvalidBasePackage = errors.New("invalid base package")
)
