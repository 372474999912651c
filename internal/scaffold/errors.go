package scaffold

import "errors"

var ErrProjectExists = errors.New("project directory already exists")
