package levelmap

import "errors"

// ErrMalformedMap is the sentinel wrapped with detail whenever a level
// fails validation: an unsupported character, a missing keeper, or a
// box/goal count mismatch. See spec.md §7.
var ErrMalformedMap = errors.New("levelmap: malformed map")
