package raster

import "errors"

var ErrInvalidSize = errors.New("raster: surface dimensions must be positive")
