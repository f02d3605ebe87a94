package interval

import "errors"

// ErrEmptyInterval indicates a 1-D interval was constructed with
// start > end, which New rejects rather than silently normalizing.
var ErrEmptyInterval = errors.New("interval: start is after end")
