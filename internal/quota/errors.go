package quota

import "errors"

// ErrLimitReached indicates the shared daily quota is exhausted.
var ErrLimitReached = errors.New("daily limit reached")
