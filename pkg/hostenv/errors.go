package hostenv

import "errors"

// ErrUnavailable is returned by environment readers for attributes the
// host does not expose. Providers map it to the sentinel value.
var ErrUnavailable = errors.New("hostenv: attribute not exposed by this environment")
