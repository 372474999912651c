package appconfig

import "errors"

var (
	ErrUnsupportedFormat   = errors.New("unsupported config format")
	ErrUnsupportedDatabase = errors.New("unsupported database type")
)
