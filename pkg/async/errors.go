package async

import "errors"

var (
	ErrTimeout = errors.New("async: deadline elapsed waiting for future completion")
	ErrPanic   = errors.New("async: panic recovered in future")
)
