package buildfile

import "errors"

var (
	ErrUnsupportedBuildTool = errors.New("unsupported build tool")
	ErrUnsupportedDatabase  = errors.New("unsupported database type")
)
