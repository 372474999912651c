package commands

import "errors"

var ErrMissingInput = errors.New("missing required input")
