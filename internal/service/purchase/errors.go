package purchase

import "errors"

// ErrUnavailable is returned together with an "unavailable" result when the
// sale could not be recorded. The caller may retry.
var ErrUnavailable = errors.New("ticket sales unavailable")
